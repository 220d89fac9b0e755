package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zentra-hr/payroll-backend-go/internal/domain/calendar"
)

// April 2024: 30 days, Sundays on 7/14/21/28, Saturdays on 6/13/20/27.
func TestWorkingDaysApril2024(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name            string
		holidays        []calendar.Holiday
		saturdayEnabled bool
		saturdayType    calendar.SaturdayType
		want            float64
		wantHalfDays    int
	}{
		{
			name:            "saturdays full",
			saturdayEnabled: true,
			saturdayType:    calendar.SaturdayTypeFull,
			want:            26,
		},
		{
			name:            "saturdays half",
			saturdayEnabled: true,
			saturdayType:    calendar.SaturdayTypeHalf,
			want:            24,
			wantHalfDays:    4,
		},
		{
			name:            "saturdays off",
			saturdayEnabled: false,
			saturdayType:    calendar.SaturdayTypeFull,
			want:            22,
		},
		{
			name: "weekday holiday removes one day",
			holidays: []calendar.Holiday{
				{Date: "2024-04-10", Name: "Eid"},
			},
			saturdayEnabled: true,
			saturdayType:    calendar.SaturdayTypeFull,
			want:            25,
		},
		{
			name: "holiday on sunday changes nothing",
			holidays: []calendar.Holiday{
				{Date: "2024-04-07", Name: "Some Day"},
			},
			saturdayEnabled: true,
			saturdayType:    calendar.SaturdayTypeFull,
			want:            26,
		},
		{
			name: "holiday outside month ignored",
			holidays: []calendar.Holiday{
				{Date: "2024-05-01", Name: "Labour Day"},
			},
			saturdayEnabled: true,
			saturdayType:    calendar.SaturdayTypeFull,
			want:            26,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := WorkingDays(2024, 4, tc.holidays, tc.saturdayEnabled, tc.saturdayType)
			require.NoError(t, err)

			assert.Equal(t, tc.want, got.WorkingDays)
			assert.Equal(t, 30, got.TotalDays)
			assert.Equal(t, 4, got.SundayCount)
			assert.Equal(t, tc.wantHalfDays, got.HalfDays)
		})
	}
}

// Identity: fullDays + 0.5*halfDays always equals WorkingDays, and counted
// days never exceed the month length.
func TestWorkingDaysIdentity(t *testing.T) {
	t.Parallel()

	for month := 1; month <= 12; month++ {
		got, err := WorkingDays(2024, month, nil, true, calendar.SaturdayTypeHalf)
		require.NoError(t, err)

		assert.Equal(t, float64(got.FullDays)+0.5*float64(got.HalfDays), got.WorkingDays, "month %d", month)
		assert.LessOrEqual(t, got.FullDays+got.HalfDays+got.SundayCount, got.TotalDays, "month %d", month)
	}
}

func TestWorkingDaysInvalidPeriod(t *testing.T) {
	t.Parallel()

	for _, c := range []struct{ year, month int }{
		{2024, 0},
		{2024, 13},
		{1800, 6},
		{2300, 6},
	} {
		_, err := WorkingDays(c.year, c.month, nil, true, calendar.SaturdayTypeFull)
		assert.ErrorIs(t, err, calendar.ErrInvalidPeriod, "year=%d month=%d", c.year, c.month)
	}
}

func TestWorkingDaysFebruaryLeapYear(t *testing.T) {
	t.Parallel()

	leap, err := WorkingDays(2024, 2, nil, false, calendar.SaturdayTypeFull)
	require.NoError(t, err)
	assert.Equal(t, 29, leap.TotalDays)

	nonLeap, err := WorkingDays(2023, 2, nil, false, calendar.SaturdayTypeFull)
	require.NoError(t, err)
	assert.Equal(t, 28, nonLeap.TotalDays)
}
