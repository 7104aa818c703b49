package pipeline

import (
	"fmt"
	"strings"
	"unicode"

	"property-data-pipeline/internal/model"
)

// NormalizeText rewrites every text column in place: region/state columns
// are upper-cased, all other text columns get title case. A column is
// classified once by name and the same policy applies to every value in
// it. Missing values pass through untouched.
func NormalizeText(t *model.WorkingTable, stateColumns []string) (*model.WorkingTable, string, error) {
	states := make(map[string]bool, len(stateColumns))
	for _, name := range stateColumns {
		states[name] = true
	}

	upperCols, titleCols := 0, 0
	for _, col := range t.Columns {
		if !t.IsTextColumn(col) {
			continue
		}
		if states[col] {
			upperCols++
		} else {
			titleCols++
		}
		for _, row := range t.Rows {
			s, ok := row[col].(string)
			if !ok {
				continue
			}
			if states[col] {
				row[col] = strings.ToUpper(s)
			} else {
				row[col] = titleCase(s)
			}
		}
	}

	return t, fmt.Sprintf("title-cased %d columns, upper-cased %d state columns", titleCols, upperCols), nil
}

// titleCase capitalizes the first letter of each whitespace-delimited word
// and lower-cases the rest. Applying it twice yields the same result.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	wordStart := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			wordStart = true
			b.WriteRune(r)
		case wordStart:
			b.WriteRune(unicode.ToUpper(r))
			wordStart = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
