package pipeline

import (
	"fmt"

	"property-data-pipeline/internal/model"
)

// SynthesizeColumns appends the three derived columns to every row:
// Mail_CallRail alternating between the two run codes by row position,
// then the constant Lead_Type and Mail_Type columns. Alternation is fixed
// at this point; steps that later remove rows do not re-alternate.
func SynthesizeColumns(t *model.WorkingTable, cfg model.RunConfig) (*model.WorkingTable, string, error) {
	t.AddColumn(model.AlternatingCodeColumn, func(i int) interface{} {
		if i%2 == 0 {
			return cfg.CodeA
		}
		return cfg.CodeB
	})
	t.AddColumn(model.LeadTypeColumn, func(int) interface{} { return model.LeadTypeValue })
	t.AddColumn(model.MailTypeColumn, func(int) interface{} { return model.MailTypeValue })

	note := fmt.Sprintf("added 3 columns (%s, %s, %s)",
		model.AlternatingCodeColumn, model.LeadTypeColumn, model.MailTypeColumn)
	return t, note, nil
}
