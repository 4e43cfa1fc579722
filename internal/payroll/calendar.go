package payroll

import "time"

// WorkingDays counts the working days of a calendar month. Sundays are
// never working days; Saturdays only count when the employee does not
// have Saturdays off. Month lengths and leap years follow the
// Gregorian calendar as implemented by the time package.
func WorkingDays(year int, month time.Month, saturdayOff bool) int {
	count := 0
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Sunday:
		case time.Saturday:
			if !saturdayOff {
				count++
			}
		default:
			count++
		}
	}
	return count
}
