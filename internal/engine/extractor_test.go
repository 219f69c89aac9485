package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/millbooks/millbooks/internal/domain"
)

var extractorNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func millis(t time.Time) float64 {
	return float64(t.UnixMilli())
}

func TestExtract_FlatCollectionWithEmbeddedPaid(t *testing.T) {
	snap := domain.Snapshot{
		"boxOrders": {
			"buyer-1": domain.Record{
				"name": "first buyer",
				"orders": map[string]any{
					"order-1": map[string]any{
						"date":        millis(extractorNow),
						"total":       1000.0,
						"initialPaid": 250.0,
					},
				},
			},
		},
	}

	desc, ok := domain.DescriptorFor(domain.CategoryBoxOrders)
	require.True(t, ok)

	events := Extract(snap, desc)

	// One order record with an embedded paid field decomposes into two
	// events sharing the same instant.
	require.Len(t, events, 2)

	var total, paid decimal.Decimal
	for _, ev := range events {
		require.Equal(t, domain.CategoryBoxOrders, ev.Category)
		require.True(t, ev.HasTimestamp)
		require.True(t, ev.Timestamp.Equal(extractorNow))

		switch ev.Contribution {
		case domain.ContributionTotal:
			total = total.Add(ev.Amount)
		case domain.ContributionPaid:
			paid = paid.Add(ev.Amount)
		}
	}

	require.True(t, total.Equal(decimal.NewFromInt(1000)))
	require.True(t, paid.Equal(decimal.NewFromInt(250)))
}

func TestExtract_MissingSlicesYieldNothing(t *testing.T) {
	desc, ok := domain.DescriptorFor(domain.CategoryWorkers)
	require.True(t, ok)

	tests := []struct {
		name string
		snap domain.Snapshot
	}{
		{name: "empty snapshot", snap: domain.Snapshot{}},
		{name: "nil snapshot", snap: nil},
		{name: "category absent", snap: domain.Snapshot{"boxOrders": {}}},
		{
			name: "record without collections",
			snap: domain.Snapshot{"workers": {"w1": domain.Record{"name": "solo"}}},
		},
		{
			name: "collection is not a map",
			snap: domain.Snapshot{"workers": {"w1": domain.Record{"attendance": "oops"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Empty(t, Extract(tt.snap, desc))
		})
	}
}

func TestExtract_MalformedAmountsCoerceToZero(t *testing.T) {
	snap := domain.Snapshot{
		"workers": {
			"w1": domain.Record{
				"attendance": map[string]any{
					"a1": map[string]any{"date": millis(extractorNow), "earned": "garbage"},
					"a2": map[string]any{"date": millis(extractorNow)},
				},
			},
		},
	}

	desc, _ := domain.DescriptorFor(domain.CategoryWorkers)
	events := Extract(snap, desc)

	require.Len(t, events, 2)
	for _, ev := range events {
		require.True(t, ev.Amount.IsZero())
	}
}

func TestExtract_UnparseableTimestampMarksEvent(t *testing.T) {
	snap := domain.Snapshot{
		"workers": {
			"w1": domain.Record{
				"attendance": map[string]any{
					"a1": map[string]any{"earned": 300.0},
					"a2": map[string]any{"date": "not a date", "earned": 200.0},
				},
			},
		},
	}

	desc, _ := domain.DescriptorFor(domain.CategoryWorkers)
	events := Extract(snap, desc)

	require.Len(t, events, 2)
	for _, ev := range events {
		require.False(t, ev.HasTimestamp)
	}
}

func TestExtract_GroupedShapeKeepsPaymentsWithTheirGroup(t *testing.T) {
	snap := domain.Snapshot{
		"logsBought": {
			"supplier-1": domain.Record{
				"logCalculations": map[string]any{
					"group-1": map[string]any{
						"calculations": map[string]any{
							"c1": map[string]any{"date": millis(extractorNow), "buyedPrice": 500.0, "payedPrice": 200.0},
							"c2": map[string]any{"date": millis(extractorNow), "buyedPrice": 300.0, "payedPrice": 0.0},
						},
						"payments": map[string]any{
							"p1": map[string]any{"date": millis(extractorNow), "amount": 100.0},
						},
					},
					"group-2": map[string]any{
						"payments": map[string]any{
							"p2": map[string]any{"date": millis(extractorNow), "amount": 50.0},
						},
					},
				},
			},
		},
	}

	desc, _ := domain.DescriptorFor(domain.CategoryLogsBought)
	events := Extract(snap, desc)

	// Two calculations decompose into four events; each group's payments
	// appear exactly once, no matter how many calculations the group holds.
	require.Len(t, events, 6)

	var total, paid decimal.Decimal
	for _, ev := range events {
		switch ev.Contribution {
		case domain.ContributionTotal:
			total = total.Add(ev.Amount)
		case domain.ContributionPaid:
			paid = paid.Add(ev.Amount)
		}
	}

	require.True(t, total.Equal(decimal.NewFromInt(800)), "total = %s", total)
	// 200 + 0 payedPrice, 100 from group-1's payments, 50 from group-2's:
	// the 100 is counted once, not once per calculation entry.
	require.True(t, paid.Equal(decimal.NewFromInt(350)), "paid = %s", paid)
}

func TestExtractAll_CoversEveryCategory(t *testing.T) {
	snap := domain.Snapshot{}
	for _, desc := range domain.Descriptors() {
		collection := desc.Shape[0].Collection
		rec := domain.Record{
			collection: map[string]any{
				"e1": map[string]any{"date": millis(extractorNow)},
			},
		}
		if group := desc.Shape[0].Group; group != "" {
			rec = domain.Record{
				group: map[string]any{
					"g1": map[string]any{
						collection: map[string]any{
							"e1": map[string]any{"date": millis(extractorNow)},
						},
					},
				},
			}
		}
		snap[string(desc.Name)] = map[string]domain.Record{"r1": rec}
	}

	events := ExtractAll(snap)

	seen := make(map[domain.Category]bool)
	for _, ev := range events {
		seen[ev.Category] = true
	}

	for _, desc := range domain.Descriptors() {
		require.True(t, seen[desc.Name], "no events extracted for %s", desc.Name)
	}
}
