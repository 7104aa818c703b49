package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-data-pipeline/internal/model"
)

func TestPruneColumnsDropsKnownColumns(t *testing.T) {
	table := newTable([]string{"ID", "PROP_CITY", "OWNER_TYPE", "NAME"},
		model.Row{"ID": 1, "PROP_CITY": "Austin", "OWNER_TYPE": "person", "NAME": "alice"},
	)

	table, note, err := PruneColumns(table, []string{"PROP_CITY", "OWNER_TYPE", "NOT_THERE"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "NAME"}, table.Columns)
	assert.NotContains(t, table.Rows[0], "PROP_CITY")
	assert.NotContains(t, table.Rows[0], "OWNER_TYPE")
	assert.Equal(t, "deleted 2 columns", note)
}

func TestPruneColumnsAllAbsent(t *testing.T) {
	table := newTable([]string{"ID"}, model.Row{"ID": 1})

	table, note, err := PruneColumns(table, []string{"X", "Y"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ID"}, table.Columns)
	assert.Equal(t, "deleted 0 columns", note)
}
