package payroll

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/DevHanzala/TMS-PORTAL/internal/report"
)

// Grace constants are fixed business rules: two unexcused absences
// beyond official leave are forgiven, and three lates are forgiven
// before allowance days are docked one-for-one.
const (
	absenceGraceDays = 2
	lateGraceDays    = 3
)

// PayProfile is the slice of an employee record the calculator needs.
// SalaryCap is kept raw because the roster stores placeholders like
// "N/A" for employees without an agreed salary.
type PayProfile struct {
	EmployeeID string
	FullName   string
	SalaryCap  string
	InTime     string
	OutTime    string
}

// Statement is one employee's computed payroll for one run. It is
// immutable once produced and carries the raw date lists and section
// rows for audit and display.
type Statement struct {
	EmployeeID string
	FullName   string

	WorkingDays         int
	TotalWorkedHours    float64
	AllowedTotalHours   float64
	ExcessHours         float64
	HourlyWage          float64
	DailyAllowanceRate  float64
	EffectiveAbsences   int
	AdjustedWorkingDays int
	AllowanceDays       int
	HourlyComponent     float64
	AllowanceComponent  float64
	GrossSalary         float64
	SalaryCap           float64

	Tally       DayTally
	SectionRows []report.Row
}

// IneligibleError reports why an employee was excluded from a run.
// It is a per-employee diagnostic, never a batch failure.
type IneligibleError struct {
	EmployeeID string
	Reasons    []string
}

func (e *IneligibleError) Error() string {
	return fmt.Sprintf("employee %s ineligible for payroll: %s", e.EmployeeID, strings.Join(e.Reasons, "; "))
}

// Exclusion is the serializable form of an IneligibleError.
type Exclusion struct {
	EmployeeID string   `json:"employee_id"`
	Reasons    []string `json:"reasons"`
}

// eligibility returns the reasons an employee cannot be processed: a
// missing or non-positive salary cap, or missing shift times. Shift
// times gate eligibility only; the lateness math uses the fixed
// thresholds, not the employee's own shift.
func eligibility(p PayProfile) (float64, []string) {
	var reasons []string

	capText := strings.TrimSpace(p.SalaryCap)
	salaryCap, err := strconv.ParseFloat(capText, 64)
	if capText == "" || err != nil || salaryCap <= 0 {
		reasons = append(reasons, "missing or invalid salary cap")
	}

	if strings.TrimSpace(p.InTime) == "" {
		reasons = append(reasons, "missing shift in-time")
	}
	if strings.TrimSpace(p.OutTime) == "" {
		reasons = append(reasons, "missing shift out-time")
	}

	return salaryCap, reasons
}

// Compute derives one employee's payroll statement from their report
// section and the run configuration. An employee with no section is
// passed an empty one: zero hours worked and zero classified days.
//
// Half the salary cap is attributed to hours actually worked and half
// to a per-day attendance allowance; the cap is a hard ceiling on the
// gross regardless of the computed components.
func Compute(p PayProfile, section report.Section, cfg Config) (Statement, error) {
	if err := cfg.Validate(); err != nil {
		return Statement{}, err
	}

	salaryCap, reasons := eligibility(p)
	if len(reasons) > 0 {
		return Statement{}, &IneligibleError{EmployeeID: p.EmployeeID, Reasons: reasons}
	}

	tally := ClassifyAttendance(section, cfg)

	saturdayOff := cfg.SaturdayOff(p.EmployeeID)
	workingDays := WorkingDays(cfg.Year, cfg.Month, saturdayOff)

	totalWorked := section.TotalWorkedHours()
	allowedTotal := cfg.AllowedHoursPerDay * float64(workingDays)

	// Excess hours are recorded but never paid.
	excess := totalWorked - allowedTotal
	if excess < 0 {
		excess = 0
	}
	if totalWorked > allowedTotal {
		totalWorked = allowedTotal
	}

	hourlyWage := salaryCap / (float64(workingDays) * cfg.AllowedHoursPerDay) / 2
	dailyAllowanceRate := salaryCap / float64(workingDays) / 2

	// Official leaves absorb absences first, then the grace window.
	effectiveAbsences := tally.AbsentCount - cfg.OfficialLeaveDays
	if effectiveAbsences < 0 {
		effectiveAbsences = 0
	}

	penalizedAbsences := effectiveAbsences - absenceGraceDays
	if penalizedAbsences < 0 {
		penalizedAbsences = 0
	}
	adjustedWorkingDays := workingDays - penalizedAbsences + cfg.OfficialLeaveDays

	penalizedLates := tally.LateCount - lateGraceDays
	if penalizedLates < 0 {
		penalizedLates = 0
	}
	allowanceDays := adjustedWorkingDays - penalizedLates
	if allowanceDays < 0 {
		allowanceDays = 0
	}

	hourlyComponent := totalWorked * hourlyWage
	allowanceComponent := float64(allowanceDays) * dailyAllowanceRate

	gross := hourlyComponent + allowanceComponent
	if gross > salaryCap {
		gross = salaryCap
	}

	return Statement{
		EmployeeID:          p.EmployeeID,
		FullName:            p.FullName,
		WorkingDays:         workingDays,
		TotalWorkedHours:    totalWorked,
		AllowedTotalHours:   allowedTotal,
		ExcessHours:         excess,
		HourlyWage:          hourlyWage,
		DailyAllowanceRate:  dailyAllowanceRate,
		EffectiveAbsences:   effectiveAbsences,
		AdjustedWorkingDays: adjustedWorkingDays,
		AllowanceDays:       allowanceDays,
		HourlyComponent:     hourlyComponent,
		AllowanceComponent:  allowanceComponent,
		GrossSalary:         gross,
		SalaryCap:           salaryCap,
		Tally:               tally,
		SectionRows:         section.Rows,
	}, nil
}

// GenerateAll runs Compute for every employee in the roster against one
// parsed report. Ineligible employees land in the exclusions list; one
// employee's data never aborts the batch. The only blocking error is an
// invalid configuration, checked before any per-employee work.
func GenerateAll(roster []PayProfile, rows []report.Row, cfg Config) (map[string]Statement, []Exclusion, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	statements := make(map[string]Statement, len(roster))
	var exclusions []Exclusion

	for _, p := range roster {
		section, found := LocateEmployeeSection(rows, p.EmployeeID)
		if !found {
			// No attendance data: compute against an empty section.
			section = report.Section{EmployeeID: p.EmployeeID}
		}

		stmt, err := Compute(p, section, cfg)
		if err != nil {
			var ineligible *IneligibleError
			if errors.As(err, &ineligible) {
				exclusions = append(exclusions, Exclusion{
					EmployeeID: ineligible.EmployeeID,
					Reasons:    ineligible.Reasons,
				})
				continue
			}
			return nil, nil, err
		}

		statements[p.EmployeeID] = stmt
	}

	return statements, exclusions, nil
}

// LocateEmployeeSection is a thin alias over report.LocateSection so
// callers of the calculator need only this package.
func LocateEmployeeSection(rows []report.Row, employeeID string) (report.Section, bool) {
	return report.LocateSection(rows, employeeID)
}
