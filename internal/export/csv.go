// Package export renders the card set as CSV for download.
package export

import (
	"strconv"
	"strings"

	"github.com/princechakusa/Card-management-system/internal/model"
)

// Filename is the download name the view layer should use.
const Filename = "card-management-export.csv"

// ContentType is the MIME type for the exported file.
const ContentType = "text/csv;charset=utf-8;"

var header = []string{"unit", "unitId", "type", "number", "status", "assignedTo", "historyCount"}

// CSV renders every card as one row, in snapshot order. The header row is
// plain; every data cell is double-quoted with embedded quotes doubled.
// encoding/csv quotes only cells that need it, so the rows are built by
// hand: the export format quotes every cell unconditionally.
func CSV(snap model.Snapshot) string {
	names := make(map[string]string, len(snap.Apartments))
	for _, u := range snap.Apartments {
		names[u.ID] = u.Name
	}

	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	for _, c := range snap.Cards {
		cells := []string{
			names[c.UnitID],
			c.UnitID,
			c.Type,
			c.Number,
			string(c.Status),
			c.AssignedTo,
			strconv.Itoa(len(c.History)),
		}
		b.WriteByte('\n')
		for i, cell := range cells {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String()
}
