package attendance

import (
	"time"

	"github.com/zentra-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/clock"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/validator"
)

// Shift is the expected working window the aggregator rates records against.
type Shift struct {
	// StartMinutes is the office start time in minutes since midnight.
	StartMinutes int
	// MinutesPerDay is the expected shift length.
	MinutesPerDay int
}

// Summary is the reduced view of one employee's attendance for one month.
type Summary struct {
	PresentDays     int
	LeaveDays       int
	HalfDays        int
	AllowedLeaves   int
	AllowedHalfDays int
	// TotalMinutes is worked time: completed punches, the growing open
	// record for today, and paid authorized absences.
	TotalMinutes int
	// TodayMinutes is the subset of TotalMinutes attributable to today's
	// date, used for same-day earned wages.
	TodayMinutes int
	LateMinutes  int
}

// Aggregate reduces raw attendance records for targetMonth ("YYYY-MM") to a
// Summary, evaluated at evalInstant.
//
// Rules:
//   - completed records contribute check_out - check_in minutes;
//   - an open record dated today accrues evalInstant - check_in, but only
//     when targetMonth is the month containing evalInstant; a past month
//     never earns partial time for a record nobody closed;
//   - allowed_leave / allowed_half_day are paid as a full / half expected
//     shift without punches;
//   - late minutes are computed only for non-fixed-salary employees, from
//     present records whose check-in falls after the shift start; early
//     arrival is never credited;
//   - records with unparseable timestamps are skipped, never fatal.
func Aggregate(records []attendance.Record, shift Shift, evalInstant time.Time, targetMonth string, fixedSalary bool) Summary {
	var sum Summary

	isCurrentMonth := targetMonth == clock.MonthKey(evalInstant)
	today := clock.DateKey(evalInstant)
	loc := evalInstant.Location()

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			sum.PresentDays++
		case attendance.StatusLeave:
			sum.LeaveDays++
		case attendance.StatusHalfDay:
			sum.HalfDays++
		case attendance.StatusAllowedLeave:
			sum.AllowedLeaves++
		case attendance.StatusAllowedHalfDay:
			sum.AllowedHalfDays++
		}

		if rec.CheckIn == nil || *rec.CheckIn == "" {
			continue
		}
		checkIn, ok := validator.ParsePunch(*rec.CheckIn, loc)
		if !ok {
			continue
		}

		if !rec.Open() {
			checkOut, ok := validator.ParsePunch(*rec.CheckOut, loc)
			if !ok {
				continue
			}
			minutes := int(checkOut.Sub(checkIn).Minutes())
			if minutes < 0 {
				continue
			}
			sum.TotalMinutes += minutes
			if rec.Date == today {
				sum.TodayMinutes += minutes
			}
		} else if isCurrentMonth && rec.Date == today {
			minutes := int(evalInstant.Sub(checkIn).Minutes())
			if minutes < 0 {
				minutes = 0
			}
			sum.TotalMinutes += minutes
			sum.TodayMinutes += minutes
		}

		if !fixedSalary && rec.Status == attendance.StatusPresent {
			arrival := checkIn.Hour()*60 + checkIn.Minute()
			if late := arrival - shift.StartMinutes; late > 0 {
				sum.LateMinutes += late
			}
		}
	}

	// Authorized absences are paid as if worked.
	sum.TotalMinutes += sum.AllowedLeaves * shift.MinutesPerDay
	sum.TotalMinutes += sum.AllowedHalfDays * shift.MinutesPerDay / 2

	return sum
}
