// Package seed provides the sample data installed into an empty store on
// first startup.
package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/princechakusa/Card-management-system/internal/model"
)

// Snapshot builds the sample set: two units and three cards with
// pre-populated history. All timestamps use now.
func Snapshot(now time.Time) model.Snapshot {
	u1 := newID("u")
	u2 := newID("u")

	return model.Snapshot{
		Apartments: []model.Unit{
			{ID: u1, Name: "103 Studio - Azizi Rivera"},
			{ID: u2, Name: "402A - Marina View"},
		},
		Cards: []model.Card{
			{
				ID:         newID("c"),
				UnitID:     u1,
				Type:       "Access Card",
				Number:     "A-001",
				Status:     model.StatusAssigned,
				AssignedTo: "John Doe",
				History: []model.HistoryEntry{
					{When: now, Action: "Created", Note: "Initial sample"},
					{When: now, Action: "Assigned", Note: "Assigned to John Doe"},
				},
			},
			{
				ID:     newID("c"),
				UnitID: u1,
				Type:   "Parking Card",
				Number: "P-101",
				Status: model.StatusAvailable,
				History: []model.HistoryEntry{
					{When: now, Action: "Created", Note: "Initial sample"},
				},
			},
			{
				ID:     newID("c"),
				UnitID: u2,
				Type:   "Utility Card",
				Number: "U-200",
				Status: model.StatusMissing,
				History: []model.HistoryEntry{
					{When: now, Action: "Created", Note: "Initial sample"},
					{When: now, Action: "Marked Missing", Note: "Not returned"},
				},
			},
		},
	}
}

func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
