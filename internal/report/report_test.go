package report_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/DevHanzala/TMS-PORTAL/internal/report"

	"github.com/stretchr/testify/assert"
)

func buildReport(dataLines ...string) string {
	lines := make([]string, 0, 7+len(dataLines))
	for i := 1; i <= 7; i++ {
		lines = append(lines, fmt.Sprintf("Device Meta %d,value", i))
	}
	lines = append(lines, dataLines...)
	return strings.Join(lines, "\n")
}

func sentinelRow(employeeID string) string {
	return "User ID," + employeeID + ",Name,Some Employee"
}

func dailyRow(date, day, checkIn, checkOut string) string {
	return fmt.Sprintf("%s,%s,,,%s,,%s", date, day, checkIn, checkOut)
}

func totalsRow(duration string) string {
	fields := make([]string, 15)
	fields[0] = "Total"
	fields[14] = duration
	return strings.Join(fields, ",")
}

func TestParse_DropsHeaderAndBlankLines(t *testing.T) {
	raw := buildReport(
		sentinelRow("1001"),
		"",
		dailyRow("01/02/2024", "Thu.", "9:05", "18:02"),
	)

	rows := report.Parse(raw)

	assert.Len(t, rows, 2)
	assert.True(t, rows[0].IsSectionMarker())
	assert.Equal(t, "01/02/2024", rows[1].Field(report.ColDate))
}

func TestParse_ShortReportYieldsEmptyDataRegion(t *testing.T) {
	for n := 0; n <= 7; n++ {
		lines := make([]string, n)
		for i := range lines {
			lines[i] = fmt.Sprintf("line %d", i)
		}
		rows := report.Parse(strings.Join(lines, "\n"))
		assert.Empty(t, rows, "report with %d lines must yield no data rows", n)
	}
}

func TestParse_HandlesCRLF(t *testing.T) {
	raw := strings.ReplaceAll(buildReport(sentinelRow("7")), "\n", "\r\n")

	rows := report.Parse(raw)

	assert.Len(t, rows, 1)
	assert.Equal(t, "User ID", rows[0].Field(0))
}

func TestLocateSection_FindsSpanUpToNextMarker(t *testing.T) {
	raw := buildReport(
		sentinelRow("1001"),
		dailyRow("01/02/2024", "Thu.", "9:05", "18:02"),
		totalsRow("8:57"),
		sentinelRow("1002"),
		dailyRow("01/02/2024", "Thu.", "", ""),
	)
	rows := report.Parse(raw)

	section, found := report.LocateSection(rows, "1001")

	assert.True(t, found)
	assert.Equal(t, "1001", section.EmployeeID)
	assert.Len(t, section.Rows, 3)
	assert.True(t, section.Rows[0].IsSectionMarker())

	second, found := report.LocateSection(rows, "1002")
	assert.True(t, found)
	assert.Len(t, second.Rows, 2)
}

func TestLocateSection_LastSectionRunsToEnd(t *testing.T) {
	raw := buildReport(
		sentinelRow("1001"),
		dailyRow("01/02/2024", "Thu.", "9:05", "18:02"),
		dailyRow("02/02/2024", "Fri.", "9:10", "18:05"),
	)
	rows := report.Parse(raw)

	section, found := report.LocateSection(rows, "1001")

	assert.True(t, found)
	assert.Len(t, section.Rows, 3)
}

func TestLocateSection_NotFoundIsNotAnError(t *testing.T) {
	rows := report.Parse(buildReport(sentinelRow("1001")))

	_, found := report.LocateSection(rows, "9999")

	assert.False(t, found)
}

func TestLocateSection_Idempotent(t *testing.T) {
	raw := buildReport(
		sentinelRow("1001"),
		dailyRow("01/02/2024", "Thu.", "9:05", "18:02"),
		sentinelRow("1002"),
	)
	rows := report.Parse(raw)

	first, foundFirst := report.LocateSection(rows, "1001")
	second, foundSecond := report.LocateSection(rows, "1001")

	assert.True(t, foundFirst)
	assert.True(t, foundSecond)
	assert.Equal(t, first, second)
}

func TestTotalWorkedHours(t *testing.T) {
	raw := buildReport(
		sentinelRow("1001"),
		totalsRow("176:30"),
	)
	rows := report.Parse(raw)
	section, _ := report.LocateSection(rows, "1001")

	assert.InDelta(t, 176.5, section.TotalWorkedHours(), 1e-9)
}

func TestTotalWorkedHours_MissingTotalsRowIsZero(t *testing.T) {
	raw := buildReport(
		sentinelRow("1001"),
		dailyRow("01/02/2024", "Thu.", "9:05", "18:02"),
	)
	rows := report.Parse(raw)
	section, _ := report.LocateSection(rows, "1001")

	assert.Zero(t, section.TotalWorkedHours())
}

func TestTotalWorkedHours_ZeroDuration(t *testing.T) {
	raw := buildReport(
		sentinelRow("1001"),
		totalsRow("0:00"),
	)
	rows := report.Parse(raw)
	section, _ := report.LocateSection(rows, "1001")

	assert.Zero(t, section.TotalWorkedHours())
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"9:00", 540, true},
		{"9:30", 570, true},
		{"17:30", 1050, true},
		{"176:30", 10590, true},
		{" 9:45 ", 585, true},
		{"", 0, false},
		{"0:00", 0, false},
		{"9", 0, false},
		{"9:3a", 0, false},
		{"9:75", 0, false},
	}

	for _, tc := range cases {
		minutes, ok := report.ParseClock(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.minutes, minutes, "input %q", tc.in)
	}
}

func TestDailyRecordFrom(t *testing.T) {
	rows := report.Parse(buildReport(
		sentinelRow("1001"),
		dailyRow("01/02/2024", "Thu.", "9:05", "18:02"),
		"garbage,,,x",
		dailyRow("notadate", "Thu.", "9:05", "18:02"),
		dailyRow("02/02/2024", "", "9:05", "18:02"),
		totalsRow("8:57"),
	))

	_, ok, reason := report.DailyRecordFrom(rows[0])
	assert.False(t, ok)
	assert.Equal(t, "marker row", reason)

	rec, ok, _ := report.DailyRecordFrom(rows[1])
	assert.True(t, ok)
	assert.Equal(t, "01/02/2024", rec.DateText)
	assert.Equal(t, "Thu.", rec.DayOfWeek)
	assert.Equal(t, "9:05", rec.CheckIn)
	assert.Equal(t, "18:02", rec.CheckOut)

	_, ok, reason = report.DailyRecordFrom(rows[2])
	assert.False(t, ok)
	assert.Equal(t, "short row", reason)

	_, ok, reason = report.DailyRecordFrom(rows[3])
	assert.False(t, ok)
	assert.Equal(t, "unparseable date", reason)

	_, ok, reason = report.DailyRecordFrom(rows[4])
	assert.False(t, ok)
	assert.Equal(t, "missing day of week", reason)

	_, ok, reason = report.DailyRecordFrom(rows[5])
	assert.False(t, ok)
	assert.Equal(t, "marker row", reason)
}
