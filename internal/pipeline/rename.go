package pipeline

import (
	"fmt"

	"property-data-pipeline/internal/model"
)

// RenameHeaders applies the fixed old→new header map. Entries whose old
// name is absent are ignored. A rename whose target name already exists
// and is not itself being renamed away is rejected; overwriting would
// silently drop a data column.
func RenameHeaders(t *model.WorkingTable, renames map[string]string) (*model.WorkingTable, string, error) {
	applied := make(map[string]string, len(renames))
	for old, new := range renames {
		if t.HasColumn(old) {
			applied[old] = new
		}
	}

	targets := make(map[string]bool, len(applied))
	for old, new := range applied {
		if targets[new] {
			return nil, "", fmt.Errorf("rename collision: two columns map to %q", new)
		}
		targets[new] = true
		if t.HasColumn(new) {
			if _, renamedAway := applied[new]; !renamedAway {
				return nil, "", fmt.Errorf("rename collision: column %q already exists (renaming %q)", new, old)
			}
		}
	}

	for i, col := range t.Columns {
		if new, ok := applied[col]; ok {
			t.Columns[i] = new
		}
	}
	// Detach all renamed values before reattaching so a chain like A→B,
	// B→C cannot clobber B's value mid-rename.
	for _, row := range t.Rows {
		moved := make(map[string]interface{}, len(applied))
		for old, new := range applied {
			if v, ok := row[old]; ok {
				moved[new] = v
				delete(row, old)
			}
		}
		for new, v := range moved {
			row[new] = v
		}
	}

	return t, fmt.Sprintf("renamed %d column headers", len(applied)), nil
}
