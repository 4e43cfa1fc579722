package payroll_test

import (
	"testing"
	"time"

	"github.com/DevHanzala/TMS-PORTAL/internal/payroll"

	"github.com/stretchr/testify/assert"
)

func TestWorkingDays_February2024(t *testing.T) {
	// Leap February: 29 days, 4 Sundays.
	assert.Equal(t, 25, payroll.WorkingDays(2024, time.February, false))

	// 4 Saturdays on top of the Sundays.
	assert.Equal(t, 21, payroll.WorkingDays(2024, time.February, true))
}

func TestWorkingDays_February2023(t *testing.T) {
	// Non-leap February: 28 days, 4 Sundays.
	assert.Equal(t, 24, payroll.WorkingDays(2023, time.February, false))
}

func TestWorkingDays_SaturdayOffDifferenceEqualsSaturdayCount(t *testing.T) {
	for _, year := range []int{2023, 2024, 2025} {
		for m := time.January; m <= time.December; m++ {
			saturdays := 0
			for d := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC); d.Month() == m; d = d.AddDate(0, 0, 1) {
				if d.Weekday() == time.Saturday {
					saturdays++
				}
			}

			include := payroll.WorkingDays(year, m, false)
			exclude := payroll.WorkingDays(year, m, true)

			assert.Equal(t, saturdays, include-exclude, "%d-%02d", year, int(m))
			assert.LessOrEqual(t, exclude, include)
		}
	}
}
