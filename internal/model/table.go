package model

// Row maps a column name to a cell value. Cell values are one of string,
// int, float64, or nil for a missing value (see utils.ParseValue).
type Row map[string]interface{}

// WorkingTable is the single in-memory dataset a pipeline run transforms.
// Columns keeps the serialization order; every row shares the same column
// set between pipeline steps. A table is owned by exactly one run.
type WorkingTable struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// NewWorkingTable creates an empty table with the given column order.
func NewWorkingTable(columns []string) *WorkingTable {
	return &WorkingTable{Columns: columns, Rows: make([]Row, 0)}
}

// HasColumn reports whether the table contains a column with the given name.
func (t *WorkingTable) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// AddColumn appends a new column and sets its value on every row.
// Values are produced from the row's zero-based position.
func (t *WorkingTable) AddColumn(name string, value func(i int) interface{}) {
	t.Columns = append(t.Columns, name)
	for i, row := range t.Rows {
		row[name] = value(i)
	}
}

// IsTextColumn reports whether a column holds text values, which is the
// case when at least one non-missing cell is a string. Purely numeric
// columns are not text columns.
func (t *WorkingTable) IsTextColumn(name string) bool {
	for _, row := range t.Rows {
		if _, ok := row[name].(string); ok {
			return true
		}
	}
	return false
}
