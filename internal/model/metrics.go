package model

// StepMetric records what a single pipeline step did to the working table.
// Metrics are collected in step order and are read-only once produced.
type StepMetric struct {
	Step          string `json:"step"`
	RowsBefore    int    `json:"rows_before"`
	RowsAfter     int    `json:"rows_after"`
	ColumnsBefore int    `json:"columns_before"`
	ColumnsAfter  int    `json:"columns_after"`
	Note          string `json:"note,omitempty"`
}

// RunResult is what the orchestrator hands back to the presentation shell:
// the final table and the ordered per-step metrics.
type RunResult struct {
	Table   *WorkingTable `json:"-"`
	Metrics []StepMetric  `json:"metrics"`
}
