package pipeline

import (
	"fmt"
	"time"

	"property-data-pipeline/internal/model"
)

// Step names, in execution order.
const (
	StepMerge           = "merge"
	StepDeleteColumns   = "delete_columns"
	StepAddColumns      = "add_columns"
	StepDeduplicate     = "deduplicate"
	StepCapitalize      = "capitalize"
	StepFilterCompanies = "filter_companies"
	StepFilterRecent    = "filter_recent"
	StepRenameHeaders   = "rename_headers"
	StepFinalize        = "finalize"
)

// Orchestrator runs the fixed nine-step transformation over one working
// table. A single orchestrator drives exactly one run; the table is owned
// by the run from merge through finalize.
type Orchestrator struct {
	Config   model.RunConfig
	Contract model.Contract
	Now      func() time.Time
}

// New creates an orchestrator for one run with the default contract.
func New(cfg model.RunConfig) *Orchestrator {
	return &Orchestrator{
		Config:   cfg,
		Contract: model.DefaultContract(),
		Now:      time.Now,
	}
}

// Run executes the pipeline over the given inputs. It either returns a
// complete result or an error naming the failing step; there is no
// partial output.
func (o *Orchestrator) Run(inputs []Input) (*model.RunResult, error) {
	if err := o.Config.Validate(); err != nil {
		return nil, err
	}

	start := o.Now()
	fmt.Printf("🚀 Starting pipeline over %d file(s)\n", len(inputs))

	table, err := LoadTables(inputs)
	if err != nil {
		return nil, fmt.Errorf("step %s: %w", StepMerge, err)
	}

	metrics := []model.StepMetric{{
		Step:          StepMerge,
		RowsBefore:    0,
		RowsAfter:     len(table.Rows),
		ColumnsBefore: 0,
		ColumnsAfter:  len(table.Columns),
		Note:          fmt.Sprintf("merged %d files", len(inputs)),
	}}
	fmt.Printf("✅ Step 1: Merged %d files → %d total rows\n", len(inputs), len(table.Rows))

	c := o.Contract
	steps := []struct {
		name  string
		apply func(*model.WorkingTable) (*model.WorkingTable, string, error)
	}{
		{StepDeleteColumns, func(t *model.WorkingTable) (*model.WorkingTable, string, error) {
			return PruneColumns(t, c.ColumnsToDelete)
		}},
		{StepAddColumns, func(t *model.WorkingTable) (*model.WorkingTable, string, error) {
			return SynthesizeColumns(t, o.Config)
		}},
		{StepDeduplicate, func(t *model.WorkingTable) (*model.WorkingTable, string, error) {
			return DeduplicateRows(t, c.GroupKeyColumn)
		}},
		{StepCapitalize, func(t *model.WorkingTable) (*model.WorkingTable, string, error) {
			return NormalizeText(t, c.StateColumns)
		}},
		{StepFilterCompanies, func(t *model.WorkingTable) (*model.WorkingTable, string, error) {
			return FilterCompanies(t, c.OwnerNameColumn, c.CompanyKeywords)
		}},
		{StepFilterRecent, func(t *model.WorkingTable) (*model.WorkingTable, string, error) {
			return FilterRecent(t, c.DateColumn, c.RecencyYears, o.Now())
		}},
		{StepRenameHeaders, func(t *model.WorkingTable) (*model.WorkingTable, string, error) {
			return RenameHeaders(t, c.ColumnRenames)
		}},
	}

	for i, step := range steps {
		rowsBefore, colsBefore := len(table.Rows), len(table.Columns)
		next, note, err := step.apply(table)
		if err != nil {
			return nil, fmt.Errorf("step %s: %w", step.name, err)
		}
		table = next
		metrics = append(metrics, model.StepMetric{
			Step:          step.name,
			RowsBefore:    rowsBefore,
			RowsAfter:     len(table.Rows),
			ColumnsBefore: colsBefore,
			ColumnsAfter:  len(table.Columns),
			Note:          note,
		})
		fmt.Printf("✅ Step %d: %s → %d rows, %d columns (%s)\n",
			i+2, step.name, len(table.Rows), len(table.Columns), note)
	}

	metrics = append(metrics, model.StepMetric{
		Step:          StepFinalize,
		RowsBefore:    len(table.Rows),
		RowsAfter:     len(table.Rows),
		ColumnsBefore: len(table.Columns),
		ColumnsAfter:  len(table.Columns),
		Note: fmt.Sprintf("%s alternates between '%s' and '%s'",
			model.AlternatingCodeColumn, o.Config.CodeA, o.Config.CodeB),
	})

	fmt.Printf("🏁 Pipeline completed in %v: %d rows, %d columns\n",
		o.Now().Sub(start), len(table.Rows), len(table.Columns))

	return &model.RunResult{Table: table, Metrics: metrics}, nil
}
