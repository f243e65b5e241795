package model

import "time"

// Status is the lifecycle state of a card.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusAssigned  Status = "Assigned"
	StatusMissing   Status = "Missing"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusMissing:
		return true
	}
	return false
}

// HistoryEntry is an immutable audit record of a status-affecting action.
// When marshals as an RFC 3339 timestamp.
type HistoryEntry struct {
	When   time.Time `json:"when"`
	Action string    `json:"action"`
	Note   string    `json:"note"`
}

// Card represents a physical access/parking/utility card tracked through
// its lifecycle. UnitID references a Unit but is not enforced as a foreign
// key; units are never deleted so dangling references cannot occur in
// practice.
type Card struct {
	ID         string         `json:"id"`
	UnitID     string         `json:"unitId"`
	Type       string         `json:"type"`
	Number     string         `json:"number"`
	Status     Status         `json:"status"`
	AssignedTo string         `json:"assignedTo"`
	History    []HistoryEntry `json:"history"`
}

// Clone returns a deep copy of the card; the history slice is never shared.
func (c Card) Clone() Card {
	dup := c
	dup.History = make([]HistoryEntry, len(c.History))
	copy(dup.History, c.History)
	return dup
}
