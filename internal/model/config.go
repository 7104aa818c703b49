package model

import "fmt"

// RunConfig holds the two Mail_CallRail codes supplied before processing
// begins. Immutable for the duration of a run.
type RunConfig struct {
	CodeA string `json:"code_a"`
	CodeB string `json:"code_b"`
}

// Validate checks that both codes were supplied.
func (c RunConfig) Validate() error {
	if c.CodeA == "" || c.CodeB == "" {
		return fmt.Errorf("both Mail_CallRail codes are required")
	}
	return nil
}

// Contract is the fixed column-level configuration the pipeline operates
// under. The values must match the upstream mail-house integration exactly;
// they are loaded once and injected read-only into each step.
type Contract struct {
	ColumnsToDelete []string
	ColumnRenames   map[string]string
	CompanyKeywords []string
	StateColumns    []string
	GroupKeyColumn  string
	OwnerNameColumn string
	DateColumn      string
	RecencyYears    int
}

// Synthesized column names and constant values.
const (
	AlternatingCodeColumn = "Mail_CallRail"
	LeadTypeColumn        = "Lead_Type"
	MailTypeColumn        = "Mail_Type"
	LeadTypeValue         = "Basic"
	MailTypeValue         = "Neutral Postcard"
)

// DefaultContract returns the fixed processing contract.
func DefaultContract() Contract {
	return Contract{
		ColumnsToDelete: []string{
			"OWNER_NAME_STD", "OWNER_TYPE", "OWNER_OCCUPIED", "ASSR_LINK_APN1",
			"PROP_ADDRESS", "PROP_CITY", "PROP_STATE", "PROP_ZIP",
			"LAND_SQFT", "UNITS_NUMBER", "CENSUS_BLOCK_GROUP", "_SIMPLIFIED",
		},
		ColumnRenames: map[string]string{
			"OWNER_NAME_1":  "NAME",
			"OWNER_1_FIRST": "FIRST NAME",
			"OWNER_1_LAST":  "LAST NAME",
			"OWNER_ADDRESS": "ADDRESS",
			"OWNER_CITY":    "CITY",
			"OWNER_STATE":   "address_1_state",
			"OWNER_ZIP":     "ZIP/POSTAL CODE",
			"SITE_STATE":    "custom.State",
		},
		// Leading spaces reduce false positives on word fragments.
		CompanyKeywords: []string{
			" llc", " corp", " ltd", " assoc", " company", " lp", "partnership", " inc",
		},
		StateColumns: []string{
			"PROP_STATE", "SITE_STATE", "OWNER_STATE", "address_1_state", "custom.State",
		},
		GroupKeyColumn:  "AGGR_GROUP",
		OwnerNameColumn: "OWNER_NAME_1",
		DateColumn:      "DATE_TRANSFER",
		RecencyYears:    10,
	}
}
