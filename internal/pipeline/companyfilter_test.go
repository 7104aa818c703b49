package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-data-pipeline/internal/model"
)

func companyKeywords() []string {
	return model.DefaultContract().CompanyKeywords
}

func TestFilterCompaniesRemovesOrganizations(t *testing.T) {
	table := newTable([]string{"OWNER_NAME_1"},
		model.Row{"OWNER_NAME_1": "Smith Family LLC"},
		model.Row{"OWNER_NAME_1": "Smith Family"},
		model.Row{"OWNER_NAME_1": "Acme Corp"},
		model.Row{"OWNER_NAME_1": "Jones Partnership Holdings"},
		model.Row{"OWNER_NAME_1": "Mary Jones"},
	)

	table, note, err := FilterCompanies(table, "OWNER_NAME_1", companyKeywords())
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Smith Family", table.Rows[0]["OWNER_NAME_1"])
	assert.Equal(t, "Mary Jones", table.Rows[1]["OWNER_NAME_1"])
	assert.Equal(t, "removed 3 company records", note)
}

func TestFilterCompaniesCaseInsensitive(t *testing.T) {
	table := newTable([]string{"OWNER_NAME_1"},
		model.Row{"OWNER_NAME_1": "smith family llc"},
		model.Row{"OWNER_NAME_1": "SMITH FAMILY LLC"},
		model.Row{"OWNER_NAME_1": "Smith Family Llc"},
	)

	table, _, err := FilterCompanies(table, "OWNER_NAME_1", companyKeywords())
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}

func TestFilterCompaniesKeywordNeedsLeadingSpace(t *testing.T) {
	// "Wallace" contains "llc" as raw substring but not " llc".
	table := newTable([]string{"OWNER_NAME_1"},
		model.Row{"OWNER_NAME_1": "Wallace Family Trust"},
	)

	table, _, err := FilterCompanies(table, "OWNER_NAME_1", companyKeywords())
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestFilterCompaniesMissingOwnerNeverMatches(t *testing.T) {
	table := newTable([]string{"OWNER_NAME_1"},
		model.Row{"OWNER_NAME_1": nil},
	)

	table, note, err := FilterCompanies(table, "OWNER_NAME_1", companyKeywords())
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
	assert.Equal(t, "removed 0 company records", note)
}

func TestFilterCompaniesColumnAbsent(t *testing.T) {
	table := newTable([]string{"NAME"}, model.Row{"NAME": "Acme Corp"})

	table, note, err := FilterCompanies(table, "OWNER_NAME_1", companyKeywords())
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
	assert.Contains(t, note, "skipping company filter")
}
