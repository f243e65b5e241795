package model

import "time"

// Slot is the durable key-value row holding a serialized Snapshot. The store
// persists as a single keyed JSON blob, last-write-wins.
type Slot struct {
	Key       string    `gorm:"primaryKey;size:128"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
