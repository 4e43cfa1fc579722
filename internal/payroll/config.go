package payroll

import (
	"time"

	payrollerrors "github.com/DevHanzala/TMS-PORTAL/internal/payroll/errors"
)

// Config carries the settings of one payroll generation run. It is
// supplied by the caller per run; the calculator itself keeps no state.
type Config struct {
	// Year and Month select the calendar month the run covers.
	Year  int
	Month time.Month

	// SaturdayOffEmployeeIDs lists employees for whom Saturday is a
	// non-working day.
	SaturdayOffEmployeeIDs map[string]struct{}

	// OfficialLeaveDays is the count of sanctioned leave days that
	// absorb absences before any penalty applies. Applied uniformly.
	OfficialLeaveDays int

	// AllowedHoursPerDay caps the payable hours of a working day.
	AllowedHoursPerDay float64
}

// SaturdayOff reports whether Saturday is an off day for the employee.
func (c Config) SaturdayOff(employeeID string) bool {
	_, ok := c.SaturdayOffEmployeeIDs[employeeID]
	return ok
}

// Validate checks the batch-level preconditions. A missing month is the
// one error that must block the whole run, because working-day counts
// are undefined without it.
func (c Config) Validate() error {
	if c.Year == 0 || c.Month < time.January || c.Month > time.December {
		return payrollerrors.ErrNoMonthSelected
	}
	if c.AllowedHoursPerDay <= 0 {
		return payrollerrors.ErrInvalidAllowedHours
	}
	return nil
}
