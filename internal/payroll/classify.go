package payroll

import (
	"fmt"

	"github.com/DevHanzala/TMS-PORTAL/internal/report"
)

// Shift thresholds are fixed business rules of the portal, not tied to
// an employee's configured shift times. Check-in after 9:30 counts as
// late, check-out before 17:30 counts as early leave.
const (
	lateThresholdMinutes       = 9*60 + 30
	earlyLeaveThresholdMinutes = 17*60 + 30
)

const (
	daySunday   = "Sun."
	daySaturday = "Sat."
)

// DayTally is the per-employee classification result for one report
// section. Late and early are independent: the same day can be both
// late-in and early-out.
type DayTally struct {
	LateCount   int      `json:"late_count"`
	EarlyCount  int      `json:"early_count"`
	AbsentCount int      `json:"absent_count"`
	LateDates   []string `json:"late_dates,omitempty"`
	EarlyDates  []string `json:"early_dates,omitempty"`
	AbsentDates []string `json:"absent_dates,omitempty"`

	// Skipped records every row that was not classified and why, so a
	// run can be audited instead of rows vanishing silently.
	Skipped []report.Diagnostic `json:"skipped,omitempty"`
}

// ClassifyAttendance walks an employee's section and tallies absent,
// late, and early-leave days.
//
// Rules, in order: Sundays are a universal day off; Saturdays are off
// for employees in the saturday-off set; a day with neither check-in
// nor check-out is absent; a day with both is evaluated against the
// late and early thresholds. A day with exactly one of the two present
// is left unclassified — the device regularly emits such half rows and
// the portal has never counted them toward anything.
func ClassifyAttendance(section report.Section, cfg Config) DayTally {
	var tally DayTally
	saturdayOff := cfg.SaturdayOff(section.EmployeeID)

	for _, row := range section.Rows {
		rec, ok, reason := report.DailyRecordFrom(row)
		if !ok {
			if reason != "marker row" {
				tally.Skipped = append(tally.Skipped, report.Diagnostic{Row: row.Index, Reason: reason})
			}
			continue
		}

		if rec.DayOfWeek == daySunday {
			continue
		}
		if rec.DayOfWeek == daySaturday && saturdayOff {
			continue
		}

		inEmpty := rec.CheckIn == "" || rec.CheckIn == "0:00"
		outEmpty := rec.CheckOut == "" || rec.CheckOut == "0:00"

		switch {
		case inEmpty && outEmpty:
			tally.AbsentCount++
			tally.AbsentDates = append(tally.AbsentDates, rec.DateText)

		case !inEmpty && !outEmpty:
			inMinutes, inOK := report.ParseClock(rec.CheckIn)
			outMinutes, outOK := report.ParseClock(rec.CheckOut)
			if !inOK || !outOK {
				tally.Skipped = append(tally.Skipped, report.Diagnostic{Row: row.Index, Reason: "unparseable clock"})
				continue
			}

			if inMinutes > lateThresholdMinutes {
				tally.LateCount++
				tally.LateDates = append(tally.LateDates, rec.DateText)
			}
			if outMinutes < earlyLeaveThresholdMinutes {
				tally.EarlyCount++
				tally.EarlyDates = append(tally.EarlyDates, rec.DateText)
			}

		default:
			tally.Skipped = append(tally.Skipped, report.Diagnostic{
				Row:    row.Index,
				Reason: fmt.Sprintf("half day record on %s, not classified", rec.DateText),
			})
		}
	}

	return tally
}
