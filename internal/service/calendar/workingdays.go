package calendar

import (
	"math"
	"time"

	"github.com/zentra-hr/payroll-backend-go/internal/domain/calendar"
)

// WorkingDays computes the paid working-day breakdown for one month.
// Sundays are always off; dates on the holiday list are off; Saturdays are
// off, half units, or full units per company policy. Two half Saturdays make
// one working day, so WorkingDays moves in 0.5 steps.
func WorkingDays(year, month int, holidays []calendar.Holiday, saturdayEnabled bool, saturdayType calendar.SaturdayType) (calendar.Breakdown, error) {
	if month < 1 || month > 12 || year < 1900 || year > 2200 {
		return calendar.Breakdown{}, calendar.ErrInvalidPeriod
	}

	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	totalDays := firstOfMonth.AddDate(0, 1, -1).Day()

	holidayDates := make(map[string]struct{})
	for _, h := range holidays {
		d, err := time.Parse("2006-01-02", h.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && int(d.Month()) == month {
			holidayDates[h.Date] = struct{}{}
		}
	}

	var fullDays, halfDays, sundays int
	for day := 1; day <= totalDays; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		weekday := date.Weekday()

		if weekday == time.Sunday {
			sundays++
			continue
		}
		if _, ok := holidayDates[date.Format("2006-01-02")]; ok {
			continue
		}
		if weekday == time.Saturday {
			if !saturdayEnabled {
				continue
			}
			if saturdayType == calendar.SaturdayTypeHalf {
				halfDays++
				continue
			}
		}
		fullDays++
	}

	workingDays := float64(fullDays) + 0.5*float64(halfDays)

	return calendar.Breakdown{
		TotalDays:    totalDays,
		WorkingDays:  math.Round(workingDays*10) / 10,
		FullDays:     fullDays,
		HalfDays:     halfDays,
		HolidayCount: len(holidayDates),
		SundayCount:  sundays,
	}, nil
}
