// Package report parses the raw attendance export produced by the
// biometric device. The export is a human-formatted report: a fixed
// 7-row header, then comma-separated rows grouped into per-employee
// sections opened by a "User ID" marker row.
package report

import (
	"strings"
	"time"
)

// headerRows is the fixed size of the report-level header. Everything
// before this is device metadata and carries no attendance data.
const headerRows = 7

// Column contract of a data row. The device emits fixed positions, so
// these indices are part of the format, not an implementation detail.
const (
	ColDate       = 0
	ColDayOfWeek  = 1
	ColCheckIn    = 4
	ColCheckOut   = 6
	ColTotalHours = 14
)

const (
	// SectionMarker opens an employee section; the employee id sits in
	// the next field of the same row.
	SectionMarker = "User ID"

	// TotalsMarker identifies the aggregate row inside a section.
	TotalsMarker = "Total"
)

// dateLayout matches the DD/MM/YYYY dates emitted by the device.
const dateLayout = "02/01/2006"

// Row is one comma-separated line of the data region. Index refers to
// the position within the data region (after the header was dropped),
// so diagnostics stay addressable.
type Row struct {
	Index  int      `json:"index"`
	Fields []string `json:"fields"`
}

// Field returns the trimmed field at position i, or "" when the row is
// too short.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return strings.TrimSpace(r.Fields[i])
}

// IsSectionMarker reports whether the row opens an employee section.
func (r Row) IsSectionMarker() bool {
	return r.Field(0) == SectionMarker
}

// IsTotalsRow reports whether the row carries the section aggregate.
func (r Row) IsTotalsRow() bool {
	return r.Field(0) == TotalsMarker
}

// Diagnostic records why a row was skipped instead of dropping it
// silently, so a payroll run stays auditable.
type Diagnostic struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Parse splits the raw export into the data region. Blank lines are
// dropped, fields are split on commas with no quoting support (commas
// inside a field are a known limitation of the device format), and the
// fixed header is discarded. An export of seven lines or fewer yields
// an empty data region.
func Parse(raw string) []Row {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) <= headerRows {
		return nil
	}
	lines = lines[headerRows:]

	rows := make([]Row, len(lines))
	for i, line := range lines {
		rows[i] = Row{Index: i, Fields: strings.Split(line, ",")}
	}
	return rows
}

// Section is one employee's contiguous block of rows, from its marker
// row up to (but excluding) the next marker row.
type Section struct {
	EmployeeID string `json:"employee_id"`
	Rows       []Row  `json:"rows"`
}

// LocateSection finds the section belonging to employeeID. The second
// return value is false when the report carries no data for that
// employee; callers must treat that as "no attendance", not an error.
func LocateSection(rows []Row, employeeID string) (Section, bool) {
	start := -1
	for i, row := range rows {
		if row.IsSectionMarker() && row.Field(1) == employeeID {
			start = i
			break
		}
	}
	if start < 0 {
		return Section{}, false
	}

	end := len(rows)
	for i := start + 1; i < len(rows); i++ {
		if rows[i].IsSectionMarker() {
			end = i
			break
		}
	}

	return Section{EmployeeID: employeeID, Rows: rows[start:end]}, true
}

// TotalWorkedHours converts the section's Total row into decimal hours.
// A missing Total row, a short row, or an empty/"0:00" duration all
// yield zero.
func (s Section) TotalWorkedHours() float64 {
	for _, row := range s.Rows {
		if !row.IsTotalsRow() {
			continue
		}
		minutes, ok := ParseClock(row.Field(ColTotalHours))
		if !ok {
			return 0
		}
		return float64(minutes) / 60
	}
	return 0
}

// DailyRecord is one classified-ready day extracted from a section row.
type DailyRecord struct {
	Date      time.Time
	DateText  string
	DayOfWeek string
	CheckIn   string
	CheckOut  string
}

// DailyRecordFrom extracts a daily record from a section row. It
// returns false with a reason when the row is not a dated day: marker
// and totals rows, rows shorter than the column contract, rows with an
// unparseable date, or rows missing the day-of-week token.
func DailyRecordFrom(row Row) (DailyRecord, bool, string) {
	if row.IsSectionMarker() || row.IsTotalsRow() {
		return DailyRecord{}, false, "marker row"
	}
	if len(row.Fields) <= ColCheckOut {
		return DailyRecord{}, false, "short row"
	}

	dateText := row.Field(ColDate)
	date, err := time.Parse(dateLayout, dateText)
	if err != nil {
		return DailyRecord{}, false, "unparseable date"
	}

	day := row.Field(ColDayOfWeek)
	if day == "" {
		return DailyRecord{}, false, "missing day of week"
	}

	return DailyRecord{
		Date:      date,
		DateText:  dateText,
		DayOfWeek: day,
		CheckIn:   row.Field(ColCheckIn),
		CheckOut:  row.Field(ColCheckOut),
	}, true, ""
}

// ParseClock converts an "H:MM" duration or time-of-day into minutes.
// An empty string or the literal "0:00" means "not present" and
// reports false, as does anything that is not two numeric parts.
func ParseClock(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if v == "" || v == "0:00" {
		return 0, false
	}

	parts := strings.Split(v, ":")
	if len(parts) != 2 {
		return 0, false
	}

	hours, ok := parseDigits(parts[0])
	if !ok {
		return 0, false
	}
	minutes, ok := parseDigits(parts[1])
	if !ok || minutes > 59 {
		return 0, false
	}

	return hours*60 + minutes, true
}

func parseDigits(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
