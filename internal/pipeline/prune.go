package pipeline

import (
	"fmt"

	"property-data-pipeline/internal/model"
)

// PruneColumns drops the fixed delete-list columns from the table. Names
// absent from the table are ignored; absence is a valid outcome.
func PruneColumns(t *model.WorkingTable, names []string) (*model.WorkingTable, string, error) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		if t.HasColumn(name) {
			drop[name] = true
		}
	}

	if len(drop) > 0 {
		kept := make([]string, 0, len(t.Columns)-len(drop))
		for _, col := range t.Columns {
			if !drop[col] {
				kept = append(kept, col)
			}
		}
		t.Columns = kept
		for _, row := range t.Rows {
			for name := range drop {
				delete(row, name)
			}
		}
	}

	return t, fmt.Sprintf("deleted %d columns", len(drop)), nil
}
