package pipeline

import (
	"fmt"
	"strings"

	"property-data-pipeline/internal/model"
	"property-data-pipeline/pkg/utils"
)

// FilterCompanies removes rows whose owner-name field contains any of the
// organization-indicator keywords, case-insensitively. Missing owner names
// coerce to the empty string and never match. If the owner-name column is
// absent the table passes through unchanged.
func FilterCompanies(t *model.WorkingTable, ownerColumn string, keywords []string) (*model.WorkingTable, string, error) {
	if !t.HasColumn(ownerColumn) {
		return t, fmt.Sprintf("%s column not found, skipping company filter", ownerColumn), nil
	}

	kept := t.Rows[:0]
	removed := 0
	for _, row := range t.Rows {
		owner := strings.ToLower(utils.CoerceString(row[ownerColumn]))
		if matchesAny(owner, keywords) {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	t.Rows = kept

	return t, fmt.Sprintf("removed %d company records", removed), nil
}

func matchesAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
