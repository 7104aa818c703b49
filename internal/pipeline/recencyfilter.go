package pipeline

import (
	"fmt"
	"time"

	"property-data-pipeline/internal/model"
)

// dateLayouts are tried in order when parsing transfer dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"01-02-2006",
	time.RFC3339,
}

// FilterRecent removes rows whose transfer date falls within the trailing
// window from now. The cutoff is years × 365 days, not calendar-aware.
// Rows whose date is missing or unparseable are always retained. If the
// date column is absent the table passes through unchanged, and a fault
// processing the column downgrades to a warning instead of aborting.
func FilterRecent(t *model.WorkingTable, dateColumn string, years int, now time.Time) (*model.WorkingTable, string, error) {
	if !t.HasColumn(dateColumn) {
		return t, fmt.Sprintf("%s column not found, skipping recency filter", dateColumn), nil
	}

	removed, err := filterByCutoff(t, dateColumn, years, now)
	if err != nil {
		return t, fmt.Sprintf("warning: could not process dates in %s column: %v", dateColumn, err), nil
	}

	return t, fmt.Sprintf("removed %d recent transactions", removed), nil
}

func filterByCutoff(t *model.WorkingTable, dateColumn string, years int, now time.Time) (int, error) {
	if years <= 0 {
		return 0, fmt.Errorf("invalid recency window: %d years", years)
	}
	cutoff := now.Add(-time.Duration(years) * 365 * 24 * time.Hour)

	kept := t.Rows[:0]
	removed := 0
	for _, row := range t.Rows {
		ts, ok := parseDate(row[dateColumn])
		if ok && !ts.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	t.Rows = kept
	return removed, nil
}

func parseDate(v interface{}) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
