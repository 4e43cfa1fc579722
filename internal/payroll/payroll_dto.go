package payroll

import (
	"strconv"

	"github.com/DevHanzala/TMS-PORTAL/internal/report"
)

type GeneratePayrollRequest struct {
	FileID                 string   `json:"file_id" binding:"required,uuid"`
	Month                  string   `json:"month" binding:"required"` // YYYY-MM
	SaturdayOffEmployeeIDs []string `json:"saturday_off_employee_ids"`
	OfficialLeaveDays      int      `json:"official_leave_days" binding:"min=0"`
	AllowedHoursPerDay     float64  `json:"allowed_hours_per_day" binding:"required,gt=0"`
}

// StatementResponse renders a statement for the UI. Monetary and hour
// figures are formatted with exactly two decimals.
type StatementResponse struct {
	EmployeeID          string              `json:"employee_id"`
	FullName            string              `json:"full_name,omitempty"`
	WorkingDays         int                 `json:"working_days"`
	TotalWorkedHours    string              `json:"total_worked_hours"`
	AllowedTotalHours   string              `json:"allowed_total_hours"`
	ExcessHours         string              `json:"excess_hours"`
	HourlyWage          string              `json:"hourly_wage"`
	DailyAllowanceRate  string              `json:"daily_allowance_rate"`
	LateCount           int                 `json:"late_count"`
	EarlyCount          int                 `json:"early_count"`
	AbsentCount         int                 `json:"absent_count"`
	EffectiveAbsences   int                 `json:"effective_absences"`
	AdjustedWorkingDays int                 `json:"adjusted_working_days"`
	AllowanceDays       int                 `json:"allowance_days"`
	HourlySalary        string              `json:"hourly_salary"`
	DailyAllowanceTotal string              `json:"daily_allowance_total"`
	GrossSalary         string              `json:"gross_salary"`
	SalaryCap           string              `json:"salary_cap"`
	LateDates           []string            `json:"late_dates,omitempty"`
	EarlyDates          []string            `json:"early_dates,omitempty"`
	AbsentDates         []string            `json:"absent_dates,omitempty"`
	SkippedRows         []report.Diagnostic `json:"skipped_rows,omitempty"`
	SectionRows         []report.Row        `json:"section_rows,omitempty"`
}

type ExclusionResponse struct {
	EmployeeID string   `json:"employee_id"`
	Reasons    []string `json:"reasons"`
}

type GeneratePayrollResponse struct {
	FileID      string                       `json:"file_id"`
	Month       string                       `json:"month"`
	Statements  map[string]StatementResponse `json:"statements"`
	Exclusions  []ExclusionResponse          `json:"exclusions"`
	GeneratedAt string                       `json:"generated_at"`
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func mapStatementToResponse(s Statement) StatementResponse {
	return StatementResponse{
		EmployeeID:          s.EmployeeID,
		FullName:            s.FullName,
		WorkingDays:         s.WorkingDays,
		TotalWorkedHours:    money(s.TotalWorkedHours),
		AllowedTotalHours:   money(s.AllowedTotalHours),
		ExcessHours:         money(s.ExcessHours),
		HourlyWage:          money(s.HourlyWage),
		DailyAllowanceRate:  money(s.DailyAllowanceRate),
		LateCount:           s.Tally.LateCount,
		EarlyCount:          s.Tally.EarlyCount,
		AbsentCount:         s.Tally.AbsentCount,
		EffectiveAbsences:   s.EffectiveAbsences,
		AdjustedWorkingDays: s.AdjustedWorkingDays,
		AllowanceDays:       s.AllowanceDays,
		HourlySalary:        money(s.HourlyComponent),
		DailyAllowanceTotal: money(s.AllowanceComponent),
		GrossSalary:         money(s.GrossSalary),
		SalaryCap:           money(s.SalaryCap),
		LateDates:           s.Tally.LateDates,
		EarlyDates:          s.Tally.EarlyDates,
		AbsentDates:         s.Tally.AbsentDates,
		SkippedRows:         s.Tally.Skipped,
		SectionRows:         s.SectionRows,
	}
}
