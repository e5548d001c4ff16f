package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexgaoth/boba-bi/pkg/models"
)

// WriteCSV renders a schedule result as the owner-facing CSV report: a title
// block, one row per roster entry, and the commentary appended as insights.
func WriteCSV(w io.Writer, result *models.ScheduleResult) error {
	writer := csv.NewWriter(w)

	rows := [][]string{
		{"Boba BI - Weekly Staff Schedule"},
		{"Generated: " + time.Now().Format("2006-01-02 15:04")},
		{},
		{"Date", "Day", "Shift", "Time", "Predicted Orders/Hr", "Staff Needed", "Staff Assigned", "Employees"},
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	for _, entry := range result.Schedule {
		record := []string{
			entry.Date,
			entry.Day,
			title(entry.Shift),
			entry.ShiftTime,
			fmt.Sprintf("%.1f", entry.PredictedOrdersPerHour),
			fmt.Sprintf("%d", entry.StaffNeeded),
			fmt.Sprintf("%d", entry.StaffAssigned),
			strings.Join(entry.Employees, ", "),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	if err := writer.Write([]string{}); err != nil {
		return err
	}
	if err := writer.Write([]string{"INSIGHTS"}); err != nil {
		return err
	}
	if err := writer.Write([]string{"Traffic Analysis:", truncate(result.TrafficAnalysis, 200)}); err != nil {
		return err
	}
	if err := writer.Write([]string{"Weather Impact:", truncate(result.WeatherAnalysis, 200)}); err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}

// WriteTable renders a fixed-width schedule table for terminal output.
func WriteTable(w io.Writer, result *models.ScheduleResult) {
	line := strings.Repeat("=", 120)
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "%58s\n", "WEEKLY STAFF SCHEDULE")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "%-12s %-10s %-8s %-12s %-12s %-8s %s\n",
		"Date", "Day", "Shift", "Time", "Orders/Hr", "Staff", "Employees")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for _, entry := range result.Schedule {
		staff := fmt.Sprintf("%d/%d", entry.StaffAssigned, entry.StaffNeeded)
		employees := strings.Join(entry.Employees, ", ")
		if employees == "" {
			employees = "UNDERSTAFFED"
		}
		fmt.Fprintf(w, "%-12s %-10s %-8s %-12s %-12.1f %-8s %s\n",
			entry.Date, entry.Day, title(entry.Shift), entry.ShiftTime,
			entry.PredictedOrdersPerHour, staff, employees)
	}
	fmt.Fprintln(w, line)
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
