package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alexgaoth/boba-bi/pkg/analysis"
	"github.com/alexgaoth/boba-bi/pkg/config"
	"github.com/alexgaoth/boba-bi/pkg/models"
	"github.com/alexgaoth/boba-bi/pkg/pipeline"
	"github.com/alexgaoth/boba-bi/pkg/report"
)

// Handler contains dependencies for the route handlers.
type Handler struct {
	DB           *gorm.DB
	Cfg          config.Config
	Orchestrator *pipeline.Orchestrator
	Transactions pipeline.TransactionSource
	Employees    pipeline.EmployeeSource
}

// Schedule runs the scheduling pipeline for the owner's query and returns the
// full result bundle.
func (h *Handler) Schedule(c *gin.Context) {
	query := h.bindQuery(c)

	result, err := h.Orchestrator.Run(c.Request.Context(), query)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, pipeline.ErrDataUnavailable) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.RecordUsage(c, result)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      result,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// ScheduleCSV runs the pipeline and streams the roster as a CSV download.
func (h *Handler) ScheduleCSV(c *gin.Context) {
	query := h.bindQuery(c)

	result, err := h.Orchestrator.Run(c.Request.Context(), query)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, pipeline.ErrDataUnavailable) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.RecordUsage(c, result)

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not render CSV"})
		return
	}

	filename := "boba_bi_schedule_" + time.Now().Format("20060102_150405") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// ListEmployees returns the staffing pool.
func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.Employees.FetchAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    employees,
		"count":   len(employees),
	})
}

// TrafficAnalysis returns the demand estimate over a trailing window
// (?days=N, default the configured window).
func (h *Handler) TrafficAnalysis(c *gin.Context) {
	days := h.Cfg.WindowDays
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "days must be a positive integer"})
			return
		}
		days = n
	}

	since := time.Now().AddDate(0, 0, -days)
	transactions, err := h.Transactions.Fetch(c.Request.Context(), since, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	agg := analysis.NewAggregator(h.Cfg.Shifts, nil)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        agg.Aggregate(transactions, days),
		"period_days": days,
	})
}

// Stats returns headline system statistics.
func (h *Handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	transactions, err := h.Transactions.Fetch(ctx, time.Time{}, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	employees, err := h.Employees.FetchAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_transactions": len(transactions),
			"total_employees":    len(employees),
			"shifts_per_week":    len(h.Cfg.Shifts) * 7,
			"location":           h.Cfg.Location,
		},
	})
}

// ValidateData reports whether the sources hold enough data for a run:
// a non-empty employee pool and at least one transaction in the window.
func (h *Handler) ValidateData(c *gin.Context) {
	ctx := c.Request.Context()

	employees, err := h.Employees.FetchAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"valid": false, "error": err.Error()})
		return
	}
	if len(employees) == 0 {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": "employee pool is empty"})
		return
	}

	since := time.Now().AddDate(0, 0, -h.Cfg.WindowDays)
	transactions, err := h.Transactions.Fetch(ctx, since, 1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"valid": false, "error": err.Error()})
		return
	}
	if len(transactions) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": fmt.Sprintf("no transactions in the last %d days", h.Cfg.WindowDays),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"employee_count": len(employees),
			"window_days":    h.Cfg.WindowDays,
		},
	})
}

func (h *Handler) bindQuery(c *gin.Context) string {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		return "Generate optimal schedule for next week"
	}
	return req.Query
}
