// Package persist serializes the store to and from its durable slot: a
// single keyed row holding the whole snapshot as one JSON blob.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/princechakusa/Card-management-system/internal/model"
)

// SlotKey names the durable slot. Versioned so a future format change can
// use a fresh key instead of migrating in place.
const SlotKey = "cardMgmtData_v1"

// Adapter loads and saves store snapshots.
type Adapter interface {
	// Load reads the slot. The second result reports recovery: true when
	// the slot was absent or unparseable and a fresh default snapshot was
	// installed in its place. Parse failures are logged and recovered, never
	// returned; only infrastructure failures produce a non-nil error.
	Load(ctx context.Context) (model.Snapshot, bool, error)

	// Save overwrites the slot with the full snapshot. Last write wins.
	Save(ctx context.Context, snap model.Snapshot) error
}

type gormAdapter struct {
	db  *gorm.DB
	key string
}

// NewGormAdapter creates a slot adapter backed by the given database.
func NewGormAdapter(db *gorm.DB) Adapter {
	return &gormAdapter{db: db, key: SlotKey}
}

func (a *gormAdapter) Load(ctx context.Context) (model.Snapshot, bool, error) {
	var slot model.Slot
	err := a.db.WithContext(ctx).First(&slot, "key = ?", a.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		snap := model.Snapshot{Apartments: []model.Unit{}, Cards: []model.Card{}}
		if err := a.Save(ctx, snap); err != nil {
			return model.Snapshot{}, false, err
		}
		return snap, true, nil
	}
	if err != nil {
		return model.Snapshot{}, false, err
	}

	var snap model.Snapshot
	if err := json.Unmarshal([]byte(slot.Value), &snap); err != nil {
		// Corrupt slot: discard and start fresh rather than fail startup.
		log.Printf("slot %q is unreadable, resetting to defaults: %v", a.key, err)
		snap = model.Snapshot{Apartments: []model.Unit{}, Cards: []model.Card{}}
		if err := a.Save(ctx, snap); err != nil {
			return model.Snapshot{}, false, err
		}
		return snap, true, nil
	}
	return snap, false, nil
}

func (a *gormAdapter) Save(ctx context.Context, snap model.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	slot := model.Slot{Key: a.key, Value: string(blob)}
	return a.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
}
