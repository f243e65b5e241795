package model

// Snapshot is the full serialized shape of the store: every unit and every
// card, in insertion order. It is the unit of persistence — the whole
// snapshot is written to the durable slot as one JSON blob.
type Snapshot struct {
	Apartments []Unit `json:"apartments"`
	Cards      []Card `json:"cards"`
}

// Clone returns a deep copy; mutating the copy never affects the original.
func (s Snapshot) Clone() Snapshot {
	dup := Snapshot{
		Apartments: make([]Unit, len(s.Apartments)),
		Cards:      make([]Card, 0, len(s.Cards)),
	}
	copy(dup.Apartments, s.Apartments)
	for _, c := range s.Cards {
		dup.Cards = append(dup.Cards, c.Clone())
	}
	return dup
}

// Empty reports whether both collections are empty. Sample seeding runs only
// on an empty snapshot.
func (s Snapshot) Empty() bool {
	return len(s.Apartments) == 0 && len(s.Cards) == 0
}
