package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-data-pipeline/internal/model"
)

func TestNormalizeTextTitleAndStateColumns(t *testing.T) {
	table := newTable([]string{"OWNER_NAME_1", "OWNER_STATE", "PRICE"},
		model.Row{"OWNER_NAME_1": "john SMITH", "OWNER_STATE": "tx", "PRICE": 100},
		model.Row{"OWNER_NAME_1": nil, "OWNER_STATE": "Ca", "PRICE": 200},
	)

	table, note, err := NormalizeText(table, []string{"OWNER_STATE"})
	require.NoError(t, err)

	assert.Equal(t, "John Smith", table.Rows[0]["OWNER_NAME_1"])
	assert.Equal(t, "TX", table.Rows[0]["OWNER_STATE"])
	assert.Nil(t, table.Rows[1]["OWNER_NAME_1"], "missing values stay missing")
	assert.Equal(t, "CA", table.Rows[1]["OWNER_STATE"])
	assert.Equal(t, 100, table.Rows[0]["PRICE"], "numeric columns untouched")
	assert.Equal(t, "title-cased 1 columns, upper-cased 1 state columns", note)
}

func TestNormalizeTextIdempotent(t *testing.T) {
	table := newTable([]string{"NAME", "OWNER_STATE"},
		model.Row{"NAME": "mary-jane o'brien", "OWNER_STATE": "ny"},
	)

	table, _, err := NormalizeText(table, []string{"OWNER_STATE"})
	require.NoError(t, err)
	first := table.Rows[0]["NAME"]

	table, _, err = NormalizeText(table, []string{"OWNER_STATE"})
	require.NoError(t, err)

	assert.Equal(t, first, table.Rows[0]["NAME"])
	assert.Equal(t, "NY", table.Rows[0]["OWNER_STATE"])
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"john smith":    "John Smith",
		"JOHN SMITH":    "John Smith",
		"  two  spaces": "  Two  Spaces",
		"a\tb":          "A\tB",
		"":              "",
		"123 main st":   "123 Main St",
	}
	for in, want := range cases {
		assert.Equal(t, want, titleCase(in), "titleCase(%q)", in)
	}
}
