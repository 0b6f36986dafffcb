package shared

import "time"

// DateLayout is the ISO date-only format used across all domain records.
const DateLayout = "2006-01-02"

// Clock supplies the current business date. Engines take a Clock so tests
// can pin dates.
type Clock interface {
	Today() string
}

// SystemClock returns dates from the wall clock in UTC.
type SystemClock struct{}

// Today formats the current UTC day as an ISO date.
func (SystemClock) Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// FixedClock always returns the same date. Test helper.
type FixedClock string

// Today returns the pinned date.
func (c FixedClock) Today() string {
	return string(c)
}
