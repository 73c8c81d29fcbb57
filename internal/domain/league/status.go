package league

import "time"

// Status is the lifecycle phase of a league, always derived from the
// clock and the date range, never stored.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// DeriveStatus classifies now against [start, end]. Both boundaries are
// inclusive: a league is active the instant it starts and stays active
// through the final instant of its end date.
func DeriveStatus(now, start, end time.Time) Status {
	if now.Before(start) {
		return StatusUpcoming
	}
	if now.After(end) {
		return StatusCompleted
	}
	return StatusActive
}

// StatusAt reports the league's lifecycle phase at the given instant.
func (l League) StatusAt(now time.Time) Status {
	return DeriveStatus(now, l.StartDate, l.EndDate)
}
