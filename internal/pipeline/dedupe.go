package pipeline

import (
	"fmt"

	"property-data-pipeline/internal/model"
)

// DeduplicateRows keeps the first row seen for each distinct value of the
// grouping key and drops later rows sharing that value. Missing key values
// form their own group, so the first missing-valued row wins too. If the
// key column is absent the table passes through unchanged.
func DeduplicateRows(t *model.WorkingTable, key string) (*model.WorkingTable, string, error) {
	if !t.HasColumn(key) {
		return t, fmt.Sprintf("%s column not found, skipping deduplication", key), nil
	}

	seen := make(map[interface{}]bool, len(t.Rows))
	kept := t.Rows[:0]
	removed := 0
	for _, row := range t.Rows {
		v := row[key]
		if seen[v] {
			removed++
			continue
		}
		seen[v] = true
		kept = append(kept, row)
	}
	t.Rows = kept

	return t, fmt.Sprintf("removed %d duplicates based on %s", removed, key), nil
}
