package attendance

import "time"

// Status enum
type Status string

const (
	StatusPresent        Status = "present"
	StatusLeave          Status = "leave"
	StatusHalfDay        Status = "half_day"
	StatusAllowedLeave   Status = "allowed_leave"
	StatusAllowedHalfDay Status = "allowed_half_day"
	StatusAbsent         Status = "absent"
)

// MaxRecordsPerDay bounds how many punches one employee may have on a single
// date; multiple records support split shifts.
const MaxRecordsPerDay = 10

// Record is a raw attendance punch as imported from devices or entered
// manually. CheckIn/CheckOut are local wall-clock timestamps in RFC3339-ish
// "2006-01-02T15:04:05" form; CheckOut nil means the record is still open.
// Device-imported data is noisy, so consumers must tolerate unparseable
// timestamps by skipping the record.
type Record struct {
	ID         string
	CompanyID  string
	EmployeeID string
	// Date is the attendance day, "YYYY-MM-DD".
	Date     string
	CheckIn  *string
	CheckOut *string
	Status   Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open reports whether the record has a check-in but no check-out yet.
func (r Record) Open() bool {
	return r.CheckIn != nil && *r.CheckIn != "" && (r.CheckOut == nil || *r.CheckOut == "")
}
