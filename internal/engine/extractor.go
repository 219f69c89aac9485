// Package engine holds the ledger rollup engine: a category extractor that
// flattens the heterogeneous snapshot tree into dated monetary events, and an
// aggregator that filters and sums those events into per-category, per-domain
// and revenue rollups. Both halves are pure functions of their inputs and are
// safe to run concurrently against the same snapshot.
package engine

import (
	"github.com/millbooks/millbooks/internal/domain"
)

// Extract walks one category's slice of the snapshot and flattens it into
// ledger events per the descriptor's shape rules. A record that carries both
// a total-amount and a paid-amount field yields one event per field, sharing
// the same instant. Missing categories, records, or sub-collections simply
// contribute nothing; extraction never fails.
func Extract(snap domain.Snapshot, desc domain.CategoryDescriptor) []domain.LedgerEvent {
	records := snap.Category(desc.Name)
	if len(records) == 0 {
		return nil
	}

	var events []domain.LedgerEvent
	for _, rec := range records {
		for _, rule := range desc.Shape {
			if rule.Group == "" {
				events = appendRuleEvents(events, desc.Name, rule, rec)
				continue
			}

			// Grouped shapes nest entries and payments inside intermediate
			// calculation-group records. Each group is visited exactly once,
			// so a group's payments are counted once regardless of how many
			// calculation entries the group holds, and are never attributed
			// to a sibling group.
			for _, group := range childRecords(rec, rule.Group) {
				events = appendRuleEvents(events, desc.Name, rule, group)
			}
		}
	}

	return events
}

// ExtractAll runs Extract over the full descriptor table and concatenates
// the results.
func ExtractAll(snap domain.Snapshot) []domain.LedgerEvent {
	var events []domain.LedgerEvent
	for _, desc := range domain.Descriptors() {
		events = append(events, Extract(snap, desc)...)
	}
	return events
}

func appendRuleEvents(events []domain.LedgerEvent, category domain.Category, rule domain.ShapeRule, owner map[string]any) []domain.LedgerEvent {
	for _, child := range childRecords(owner, rule.Collection) {
		ts, ok := parseInstant(child[rule.TimeField])
		for _, f := range rule.Fields {
			events = append(events, domain.LedgerEvent{
				Category:     category,
				Contribution: f.Contribution,
				Amount:       coerceAmount(child[f.Field]),
				Timestamp:    ts,
				HasTimestamp: ok,
			})
		}
	}
	return events
}

// childRecords returns the child field-maps of a named sub-collection.
// Anything that is not a map of maps is treated as an absent collection.
func childRecords(owner map[string]any, name string) []map[string]any {
	raw, ok := owner[name].(map[string]any)
	if !ok {
		return nil
	}

	children := make([]map[string]any, 0, len(raw))
	for _, v := range raw {
		if child, ok := v.(map[string]any); ok {
			children = append(children, child)
		}
	}
	return children
}
