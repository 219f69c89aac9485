package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contribution identifies which rollup bucket an event's amount feeds.
type Contribution int

const (
	// ContributionTotal marks an amount that grows a category's total.
	ContributionTotal Contribution = iota
	// ContributionPaid marks an amount already settled against a category's total.
	ContributionPaid
)

// String returns the bucket name.
func (c Contribution) String() string {
	switch c {
	case ContributionTotal:
		return "total"
	case ContributionPaid:
		return "paid"
	default:
		return "unknown"
	}
}

// LedgerEvent is the atomic unit the rollup engine operates on: one dated
// monetary amount extracted from a snapshot, tagged with the category it
// belongs to and the bucket it feeds. Events are ephemeral; they are
// recomputed from the snapshot on every aggregation and never stored.
type LedgerEvent struct {
	Category     Category
	Contribution Contribution
	Amount       decimal.Decimal
	Timestamp    time.Time
	// HasTimestamp is false when the source record carried no parseable
	// instant. Such events never pass a range filter.
	HasTimestamp bool
}
