package engine

import (
	"github.com/shopspring/decimal"

	"github.com/millbooks/millbooks/internal/domain"
)

// Aggregate filters events to the closed date range and rolls them up per
// category, per domain, and into the net revenue figure. Events without a
// valid instant are excluded: a rollup needs a definite point in time to
// reason about. Summation order does not affect the result, so the random
// iteration order upstream extraction inherits from the snapshot maps is
// harmless.
func Aggregate(events []domain.LedgerEvent, r domain.DateRange) domain.Report {
	type bucket struct {
		total decimal.Decimal
		paid  decimal.Decimal
	}

	buckets := make(map[domain.Category]*bucket)
	for _, ev := range events {
		if !ev.HasTimestamp || !r.Contains(ev.Timestamp) {
			continue
		}

		b := buckets[ev.Category]
		if b == nil {
			b = &bucket{}
			buckets[ev.Category] = b
		}

		switch ev.Contribution {
		case domain.ContributionTotal:
			b.total = b.total.Add(ev.Amount)
		case domain.ContributionPaid:
			b.paid = b.paid.Add(ev.Amount)
		}
	}

	report := domain.Report{
		Categories: make(map[domain.Category]domain.Rollup),
		Domains: map[domain.Domain]domain.Rollup{
			domain.DomainSales:   {},
			domain.DomainExpense: {},
		},
	}

	for _, desc := range domain.Descriptors() {
		node := domain.Rollup{}
		if b := buckets[desc.Name]; b != nil {
			node = domain.NewRollup(b.total, b.paid)
		}
		report.Categories[desc.Name] = node
		report.Domains[desc.Domain] = report.Domains[desc.Domain].Add(node)
	}

	report.Revenue = report.Domains[domain.DomainSales].Sub(report.Domains[domain.DomainExpense])

	return report
}
