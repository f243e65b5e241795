package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/princechakusa/Card-management-system/internal/model"
)

// Store owns the in-memory unit and card collections. It is the single
// source of truth; the query engine and exporter read snapshots of it, and
// the persistence adapter serializes them. Mutations do not persist by
// themselves — flushing the snapshot to the durable slot is the caller's
// responsibility.
//
// A Store is safe for concurrent use. Every mutation is atomic from the
// caller's perspective.
type Store struct {
	mu   sync.RWMutex
	data model.Snapshot
	now  func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{now: time.Now}
}

// WithClock overrides the history timestamp source. Intended for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Replace installs a loaded or seeded snapshot wholesale.
func (s *Store) Replace(snap model.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = snap.Clone()
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// AddUnit creates a new apartment unit. The name must be non-empty after
// trimming. Units are never mutated or deleted once added.
func (s *Store) AddUnit(name string) (model.Unit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Unit{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	unit := model.Unit{ID: newID("u"), Name: name}
	s.data.Apartments = append(s.data.Apartments, unit)
	return unit, nil
}

// AddCard creates a new card under a unit. The unit id is not verified to
// reference an existing unit. The initial history entry records the status
// the card was created with.
func (s *Store) AddCard(unitID, cardType, number string, status model.Status) (model.Card, error) {
	if strings.TrimSpace(unitID) == "" {
		return model.Card{}, &ValidationError{Field: "unitId", Reason: "must not be empty"}
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return model.Card{}, &ValidationError{Field: "number", Reason: "must not be empty"}
	}
	if !status.Valid() {
		return model.Card{}, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", status)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card := model.Card{
		ID:         newID("c"),
		UnitID:     unitID,
		Type:       cardType,
		Number:     number,
		Status:     status,
		AssignedTo: "",
		History: []model.HistoryEntry{{
			When:   s.now(),
			Action: "Created",
			Note:   fmt.Sprintf("Status %s", status),
		}},
	}
	s.data.Cards = append(s.data.Cards, card)
	return card.Clone(), nil
}

// AssignCard hands a card to a tenant, marking it Assigned or Missing.
func (s *Store) AssignCard(cardID, tenant string, status model.Status) (model.Card, error) {
	tenant = strings.TrimSpace(tenant)
	if tenant == "" {
		return model.Card{}, &ValidationError{Field: "assignedTo", Reason: "must not be empty"}
	}
	if status != model.StatusAssigned && status != model.StatusMissing {
		return model.Card{}, &ValidationError{Field: "status", Reason: fmt.Sprintf("must be %s or %s", model.StatusAssigned, model.StatusMissing)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card := s.find(cardID)
	if card == nil {
		return model.Card{}, &NotFoundError{Kind: "card", ID: cardID}
	}

	card.AssignedTo = tenant
	card.Status = status
	card.History = append(card.History, model.HistoryEntry{
		When:   s.now(),
		Action: "Assigned",
		Note:   fmt.Sprintf("Assigned to %s", tenant),
	})
	return card.Clone(), nil
}

// ReturnCard marks a card Available and clears its holder. The transition is
// unconditional: returning an already-Available card still appends a history
// entry recording the (unchanged) prior status.
func (s *Store) ReturnCard(cardID string) (model.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card := s.find(cardID)
	if card == nil {
		return model.Card{}, &NotFoundError{Kind: "card", ID: cardID}
	}

	previous := card.Status
	card.Status = model.StatusAvailable
	card.AssignedTo = ""
	card.History = append(card.History, model.HistoryEntry{
		When:   s.now(),
		Action: "Returned",
		Note:   fmt.Sprintf("Previous %s", previous),
	})
	return card.Clone(), nil
}

// DeleteCard removes a card and its entire history. Deleting an unknown id
// is a no-op.
func (s *Store) DeleteCard(cardID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.data.Cards {
		if c.ID == cardID {
			s.data.Cards = append(s.data.Cards[:i], s.data.Cards[i+1:]...)
			return
		}
	}
}

// Card returns a copy of the card with the given id.
func (s *Store) Card(cardID string) (model.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.data.Cards {
		if c.ID == cardID {
			return c.Clone(), nil
		}
	}
	return model.Card{}, &NotFoundError{Kind: "card", ID: cardID}
}

// Units returns a copy of the unit list in insertion order.
func (s *Store) Units() []model.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	units := make([]model.Unit, len(s.data.Apartments))
	copy(units, s.data.Apartments)
	return units
}

func (s *Store) find(cardID string) *model.Card {
	for i := range s.data.Cards {
		if s.data.Cards[i].ID == cardID {
			return &s.data.Cards[i]
		}
	}
	return nil
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
