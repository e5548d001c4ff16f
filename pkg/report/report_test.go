package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexgaoth/boba-bi/pkg/models"
)

func sampleResult() *models.ScheduleResult {
	return &models.ScheduleResult{
		Query:           "plan next week",
		TrafficAnalysis: "Mondays are quiet.",
		WeatherAnalysis: "Rain expected Wednesday.",
		Schedule: models.Roster{
			{
				Date: "2025-09-01", Day: "Monday", Shift: "morning", ShiftTime: "08:00-16:00",
				StaffNeeded: 2, StaffAssigned: 2, Employees: []string{"Alex Chen", "Jordan Patel"},
				PredictedOrdersPerHour: 24.5,
			},
			{
				Date: "2025-09-01", Day: "Monday", Shift: "evening", ShiftTime: "16:00-00:00",
				StaffNeeded: 3, StaffAssigned: 0, Employees: nil,
				PredictedOrdersPerHour: 41.0,
			},
		},
		Dates: []string{"2025-09-01"},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResult()))

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	// The csv reader skips the blank separator lines.
	assert.Equal(t, "Boba BI - Weekly Staff Schedule", records[0][0])
	assert.Equal(t, "Date", records[2][0])

	row := records[3]
	assert.Equal(t, "2025-09-01", row[0])
	assert.Equal(t, "Morning", row[2])
	assert.Equal(t, "24.5", row[4])
	assert.Equal(t, "Alex Chen, Jordan Patel", row[7])

	tail := records[len(records)-2:]
	assert.Equal(t, "Traffic Analysis:", tail[0][0])
	assert.Equal(t, "Mondays are quiet.", tail[0][1])
	assert.Equal(t, "Rain expected Wednesday.", tail[1][1])
}

func TestWriteCSV_TruncatesLongCommentary(t *testing.T) {
	result := sampleResult()
	result.TrafficAnalysis = strings.Repeat("x", 500)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, result))

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Len(t, records[len(records)-2][1], 200)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, sampleResult())

	out := buf.String()
	assert.Contains(t, out, "WEEKLY STAFF SCHEDULE")
	assert.Contains(t, out, "Alex Chen, Jordan Patel")
	assert.Contains(t, out, "2/2")
	assert.Contains(t, out, "UNDERSTAFFED", "empty assignments are called out")
}
