package payroll_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DevHanzala/TMS-PORTAL/internal/payroll"
	"github.com/DevHanzala/TMS-PORTAL/internal/report"

	"github.com/stretchr/testify/assert"
)

// buildSection parses a minimal single-employee report and returns the
// located section, so the tests exercise the same row shapes the
// device actually emits.
func buildSection(t *testing.T, employeeID string, dataLines ...string) report.Section {
	t.Helper()

	lines := make([]string, 0, 8+len(dataLines))
	for i := 1; i <= 7; i++ {
		lines = append(lines, fmt.Sprintf("Device Meta %d,value", i))
	}
	lines = append(lines, "User ID,"+employeeID+",Name,Some Employee")
	lines = append(lines, dataLines...)

	rows := report.Parse(strings.Join(lines, "\n"))
	section, found := report.LocateSection(rows, employeeID)
	assert.True(t, found)
	return section
}

func dayLine(date, day, checkIn, checkOut string) string {
	return fmt.Sprintf("%s,%s,,,%s,,%s", date, day, checkIn, checkOut)
}

func totalLine(duration string) string {
	fields := make([]string, 15)
	fields[0] = "Total"
	fields[14] = duration
	return strings.Join(fields, ",")
}

func febConfig(officialLeaves int, saturdayOff ...string) payroll.Config {
	cfg := payroll.Config{
		Year:               2024,
		Month:              time.February,
		OfficialLeaveDays:  officialLeaves,
		AllowedHoursPerDay: 8,
	}
	if len(saturdayOff) > 0 {
		cfg.SaturdayOffEmployeeIDs = map[string]struct{}{}
		for _, id := range saturdayOff {
			cfg.SaturdayOffEmployeeIDs[id] = struct{}{}
		}
	}
	return cfg
}

func TestClassifyAttendance_AbsentDays(t *testing.T) {
	section := buildSection(t, "1001",
		dayLine("01/02/2024", "Thu.", "", ""),
		dayLine("02/02/2024", "Fri.", "0:00", "0:00"),
		dayLine("05/02/2024", "Mon.", "9:05", "18:02"),
	)

	tally := payroll.ClassifyAttendance(section, febConfig(0))

	assert.Equal(t, 2, tally.AbsentCount)
	assert.Equal(t, []string{"01/02/2024", "02/02/2024"}, tally.AbsentDates)
	assert.Zero(t, tally.LateCount)
	assert.Zero(t, tally.EarlyCount)
}

func TestClassifyAttendance_LateButNotEarly(t *testing.T) {
	section := buildSection(t, "1001",
		dayLine("01/02/2024", "Thu.", "9:45", "18:10"),
	)

	tally := payroll.ClassifyAttendance(section, febConfig(0))

	assert.Equal(t, 1, tally.LateCount)
	assert.Equal(t, []string{"01/02/2024"}, tally.LateDates)
	assert.Zero(t, tally.EarlyCount)
	assert.Zero(t, tally.AbsentCount)
}

func TestClassifyAttendance_LateAndEarlySameDay(t *testing.T) {
	section := buildSection(t, "1001",
		dayLine("01/02/2024", "Thu.", "9:45", "17:00"),
	)

	tally := payroll.ClassifyAttendance(section, febConfig(0))

	assert.Equal(t, 1, tally.LateCount)
	assert.Equal(t, 1, tally.EarlyCount)
}

func TestClassifyAttendance_ThresholdsAreExclusive(t *testing.T) {
	// Exactly 9:30 in and 17:30 out is on time on both ends.
	section := buildSection(t, "1001",
		dayLine("01/02/2024", "Thu.", "9:30", "17:30"),
	)

	tally := payroll.ClassifyAttendance(section, febConfig(0))

	assert.Zero(t, tally.LateCount)
	assert.Zero(t, tally.EarlyCount)
	assert.Zero(t, tally.AbsentCount)
}

func TestClassifyAttendance_SundayNeverCounts(t *testing.T) {
	section := buildSection(t, "1001",
		dayLine("04/02/2024", "Sun.", "", ""),
		dayLine("11/02/2024", "Sun.", "10:00", "16:00"),
	)

	tally := payroll.ClassifyAttendance(section, febConfig(0))

	assert.Zero(t, tally.AbsentCount)
	assert.Zero(t, tally.LateCount)
	assert.Zero(t, tally.EarlyCount)
}

func TestClassifyAttendance_SaturdayDependsOnConfig(t *testing.T) {
	lines := []string{dayLine("03/02/2024", "Sat.", "", "")}

	off := payroll.ClassifyAttendance(buildSection(t, "1001", lines...), febConfig(0, "1001"))
	assert.Zero(t, off.AbsentCount)

	working := payroll.ClassifyAttendance(buildSection(t, "1002", lines...), febConfig(0, "1001"))
	assert.Equal(t, 1, working.AbsentCount)
}

func TestClassifyAttendance_HalfDayIsSkippedNotCounted(t *testing.T) {
	section := buildSection(t, "1001",
		dayLine("01/02/2024", "Thu.", "9:05", ""),
		dayLine("02/02/2024", "Fri.", "", "18:02"),
	)

	tally := payroll.ClassifyAttendance(section, febConfig(0))

	assert.Zero(t, tally.AbsentCount)
	assert.Zero(t, tally.LateCount)
	assert.Zero(t, tally.EarlyCount)
	assert.Len(t, tally.Skipped, 2)
	assert.Contains(t, tally.Skipped[0].Reason, "half day record on 01/02/2024")
	assert.Contains(t, tally.Skipped[1].Reason, "half day record on 02/02/2024")
}

func TestClassifyAttendance_UnparseableClockIsSkipped(t *testing.T) {
	section := buildSection(t, "1001",
		dayLine("01/02/2024", "Thu.", "9:xx", "18:02"),
	)

	tally := payroll.ClassifyAttendance(section, febConfig(0))

	assert.Zero(t, tally.AbsentCount)
	assert.Len(t, tally.Skipped, 1)
	assert.Equal(t, "unparseable clock", tally.Skipped[0].Reason)
}

func TestClassifyAttendance_MalformedRowsAreDiagnosed(t *testing.T) {
	section := buildSection(t, "1001",
		"garbage,,,x",
		dayLine("01/02/2024", "Thu.", "9:05", "18:02"),
		totalLine("8:57"),
	)

	tally := payroll.ClassifyAttendance(section, febConfig(0))

	// The marker and Total rows vanish silently; the short row is
	// diagnosed.
	assert.Len(t, tally.Skipped, 1)
	assert.Equal(t, "short row", tally.Skipped[0].Reason)
}
