package calendar

import "time"

// SaturdayType enum
type SaturdayType string

const (
	SaturdayTypeFull SaturdayType = "full"
	SaturdayTypeHalf SaturdayType = "half"
)

// Defaults applied when a company has no stored settings. Payroll still
// computes, just against this baseline.
const (
	DefaultStartTime = "09:00"
	DefaultEndTime   = "17:00"
)

// Holiday rows are stored as a jsonb array on the settings record.
type Holiday struct {
	// Date is "YYYY-MM-DD".
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Settings is the per-company working calendar: holiday list, Saturday
// policy, and the office shift that defines expected minutes per day.
type Settings struct {
	ID              string
	CompanyID       string
	Holidays        []Holiday
	SaturdayEnabled bool
	SaturdayType    SaturdayType
	StartTime       string
	EndTime         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultSettings returns the documented fallback calendar for companies that
// never configured one: 8-hour 09:00-17:00 shift, Saturdays full working days.
func DefaultSettings(companyID string) Settings {
	return Settings{
		CompanyID:       companyID,
		Holidays:        []Holiday{},
		SaturdayEnabled: true,
		SaturdayType:    SaturdayTypeFull,
		StartTime:       DefaultStartTime,
		EndTime:         DefaultEndTime,
	}
}

// WorkingHoursPerDay derives the expected shift length in hours, falling back
// to 8 when the stored times do not parse.
func (s Settings) WorkingHoursPerDay() float64 {
	start, err1 := time.Parse("15:04", s.StartTime)
	end, err2 := time.Parse("15:04", s.EndTime)
	if err1 != nil || err2 != nil || !end.After(start) {
		return 8
	}
	return end.Sub(start).Hours()
}

// Breakdown is the Calendar Engine output for one month.
type Breakdown struct {
	TotalDays    int     `json:"total_days"`
	WorkingDays  float64 `json:"working_days"`
	FullDays     int     `json:"full_days"`
	HalfDays     int     `json:"half_days"`
	HolidayCount int     `json:"holidays"`
	SundayCount  int     `json:"sundays"`
}
