package domain

import (
	"fmt"
	"time"
)

// DateRange is a closed interval over event timestamps. A range with either
// bound missing matches nothing: an incomplete selection yields zero rollups
// rather than an unfiltered one. This mirrors how range selection has always
// behaved for consumers and is deliberate, not a missing default.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// NewDateRange builds a complete range from two instants.
func NewDateRange(from, to time.Time) DateRange {
	return DateRange{From: &from, To: &to}
}

// Complete reports whether both bounds are present.
func (r DateRange) Complete() bool {
	return r.From != nil && r.To != nil
}

// Contains reports whether t falls inside the closed interval [From, To].
// An incomplete range contains nothing.
func (r DateRange) Contains(t time.Time) bool {
	if !r.Complete() {
		return false
	}
	return !t.Before(*r.From) && !t.After(*r.To)
}

// Key returns a stable identifier for the range, used to key memoized
// rollups. Both bounds are rendered in epoch milliseconds.
func (r DateRange) Key() string {
	if !r.Complete() {
		return "incomplete"
	}
	return fmt.Sprintf("%d-%d", r.From.UnixMilli(), r.To.UnixMilli())
}
