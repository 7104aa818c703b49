package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"property-data-pipeline/internal/model"
	"property-data-pipeline/pkg/utils"
)

// WriteCSV serializes the table as UTF-8 comma-separated output with a
// header row. Missing values become empty cells. Returns the number of
// data rows written.
func WriteCSV(w io.Writer, t *model.WorkingTable) (int, error) {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.Columns); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	written := 0
	row := make([]string, len(t.Columns))
	for _, rec := range t.Rows {
		for i, col := range t.Columns {
			row[i] = utils.CoerceString(rec[col])
		}
		if err := writer.Write(row); err != nil {
			return written, fmt.Errorf("failed to write row: %w", err)
		}
		written++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return written, fmt.Errorf("failed to flush output: %w", err)
	}
	return written, nil
}

// DefaultOutputName suggests an output file name stamped with the
// processing time.
func DefaultOutputName(now time.Time) string {
	return fmt.Sprintf("processed_property_data_%s.csv", now.Format("20060102_150405"))
}

// EnsureCSVName falls back to the suggested name when the caller supplies
// none and enforces the .csv extension on overrides.
func EnsureCSVName(name string, now time.Time) string {
	if name == "" {
		return DefaultOutputName(now)
	}
	if !strings.HasSuffix(name, ".csv") {
		name += ".csv"
	}
	return name
}
