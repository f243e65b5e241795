// Package query derives filtered views and aggregate counts from a store
// snapshot. It never mutates the snapshot it is given.
package query

import (
	"strings"

	"github.com/princechakusa/Card-management-system/internal/model"
)

// Criteria selects a subset of cards. Empty fields match everything; the
// non-empty fields are ANDed together. Search is a trimmed, case-insensitive
// substring match over a card's number, type, holder, and resolved unit name.
type Criteria struct {
	UnitID string
	Type   string
	Status string
	Search string
}

// Row is a card flattened for presentation: the card fields plus the
// resolved unit name. An unresolved unit id yields an empty name.
type Row struct {
	model.Card
	Unit string `json:"unit"`
}

// Stats are counts over the entire card set, unaffected by filters.
type Stats struct {
	Total     int `json:"total"`
	Assigned  int `json:"assigned"`
	Available int `json:"available"`
	Missing   int `json:"missing"`
}

// UnitAggregate carries per-unit assigned/missing counts.
type UnitAggregate struct {
	Unit          model.Unit `json:"unit"`
	AssignedCount int        `json:"assignedCount"`
	MissingCount  int        `json:"missingCount"`
}

// Result is everything a presentation layer needs for one render pass.
type Result struct {
	Stats          Stats           `json:"stats"`
	Rows           []Row           `json:"rows"`
	UnitAggregates []UnitAggregate `json:"unit_aggregates"`
}

// Cards returns the cards matching the criteria, in snapshot order.
func Cards(snap model.Snapshot, c Criteria) []Row {
	names := unitNames(snap)
	q := strings.ToLower(strings.TrimSpace(c.Search))

	rows := make([]Row, 0, len(snap.Cards))
	for _, card := range snap.Cards {
		if c.UnitID != "" && card.UnitID != c.UnitID {
			continue
		}
		if c.Type != "" && card.Type != c.Type {
			continue
		}
		if c.Status != "" && string(card.Status) != c.Status {
			continue
		}
		unitName := names[card.UnitID]
		if q != "" && !matches(card, unitName, q) {
			continue
		}
		rows = append(rows, Row{Card: card, Unit: unitName})
	}
	return rows
}

func matches(card model.Card, unitName, q string) bool {
	return strings.Contains(strings.ToLower(card.Number), q) ||
		strings.Contains(strings.ToLower(card.Type), q) ||
		strings.Contains(strings.ToLower(card.AssignedTo), q) ||
		strings.Contains(strings.ToLower(unitName), q)
}

// ComputeStats counts every card in the snapshot by status.
func ComputeStats(snap model.Snapshot) Stats {
	s := Stats{Total: len(snap.Cards)}
	for _, card := range snap.Cards {
		switch card.Status {
		case model.StatusAssigned:
			s.Assigned++
		case model.StatusAvailable:
			s.Available++
		case model.StatusMissing:
			s.Missing++
		}
	}
	return s
}

// UnitAggregates returns assigned/missing counts per unit, in unit order.
func UnitAggregates(snap model.Snapshot) []UnitAggregate {
	aggs := make([]UnitAggregate, 0, len(snap.Apartments))
	for _, unit := range snap.Apartments {
		agg := UnitAggregate{Unit: unit}
		for _, card := range snap.Cards {
			if card.UnitID != unit.ID {
				continue
			}
			switch card.Status {
			case model.StatusAssigned:
				agg.AssignedCount++
			case model.StatusMissing:
				agg.MissingCount++
			}
		}
		aggs = append(aggs, agg)
	}
	return aggs
}

// Render computes everything one view refresh needs: global stats, the
// filtered rows, and the per-unit aggregates.
func Render(snap model.Snapshot, c Criteria) Result {
	return Result{
		Stats:          ComputeStats(snap),
		Rows:           Cards(snap, c),
		UnitAggregates: UnitAggregates(snap),
	}
}

func unitNames(snap model.Snapshot) map[string]string {
	names := make(map[string]string, len(snap.Apartments))
	for _, u := range snap.Apartments {
		names[u.ID] = u.Name
	}
	return names
}
