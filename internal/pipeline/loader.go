package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"property-data-pipeline/internal/model"
	"property-data-pipeline/pkg/utils"
)

// Input is one uploaded tabular file. The name's extension selects the
// parser: .xlsx goes through excelize, everything else is read as CSV.
type Input struct {
	Name   string
	Reader io.Reader
}

// LoadTables parses each input and concatenates the rows into one working
// table, preserving row order across files. The column set is the one
// implied by the first file; schemas are not reconciled across files.
func LoadTables(inputs []Input) (*model.WorkingTable, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("at least one input file is required")
	}

	var table *model.WorkingTable
	for _, in := range inputs {
		headers, records, err := parseInput(in)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", in.Name, err)
		}
		if table == nil {
			table = model.NewWorkingTable(headers)
		}

		// Match this file's headers to the table's columns by name;
		// columns outside the first file's set are discarded.
		pos := make(map[string]int, len(headers))
		for i, h := range headers {
			pos[h] = i
		}
		for _, rec := range records {
			row := make(model.Row, len(table.Columns))
			for _, col := range table.Columns {
				if i, ok := pos[col]; ok && i < len(rec) {
					row[col] = utils.ParseValue(rec[i])
				} else {
					row[col] = nil
				}
			}
			table.Rows = append(table.Rows, row)
		}
		fmt.Printf("📄 Loaded %d rows from %s\n", len(records), in.Name)
	}

	return table, nil
}

func parseInput(in Input) ([]string, [][]string, error) {
	if strings.EqualFold(filepath.Ext(in.Name), ".xlsx") {
		return parseXLSX(in.Reader)
	}
	return parseCSV(in.Reader)
}

func parseCSV(r io.Reader) ([]string, [][]string, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true

	headers, err := csvReader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range headers {
		// Clean header names: trim whitespace and remove quotes
		headers[i] = strings.ReplaceAll(strings.TrimSpace(h), `"`, "")
	}

	var records [][]string
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("CSV read error: %w", err)
		}
		records = append(records, record)
	}
	return headers, records, nil
}

func parseXLSX(r io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet %s has no header row", sheet)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return headers, rows[1:], nil
}
