package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-data-pipeline/internal/model"
)

func TestSynthesizeColumnsAlternatesByRowIndex(t *testing.T) {
	table := newTable([]string{"ID"},
		model.Row{"ID": 1}, model.Row{"ID": 2}, model.Row{"ID": 3}, model.Row{"ID": 4},
	)

	table, _, err := SynthesizeColumns(table, model.RunConfig{CodeA: "ABC123", CodeB: "XYZ789"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "Mail_CallRail", "Lead_Type", "Mail_Type"}, table.Columns)
	for i, row := range table.Rows {
		want := "ABC123"
		if i%2 == 1 {
			want = "XYZ789"
		}
		assert.Equal(t, want, row["Mail_CallRail"], "row %d", i)
		assert.Equal(t, "Basic", row["Lead_Type"])
		assert.Equal(t, "Neutral Postcard", row["Mail_Type"])
	}
}

func TestSynthesizeThenDedupKeepsAssignedCodes(t *testing.T) {
	// Alternation is fixed at synthesis time; removing rows afterwards
	// must not renumber the surviving rows.
	table := newTable([]string{"AGGR_GROUP"},
		model.Row{"AGGR_GROUP": "g1"},
		model.Row{"AGGR_GROUP": "g1"},
		model.Row{"AGGR_GROUP": "g2"},
	)

	table, _, err := SynthesizeColumns(table, model.RunConfig{CodeA: "A", CodeB: "B"})
	require.NoError(t, err)
	table, _, err = DeduplicateRows(table, "AGGR_GROUP")
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "A", table.Rows[0]["Mail_CallRail"])
	assert.Equal(t, "A", table.Rows[1]["Mail_CallRail"], "row kept its pre-dedup code")
}
