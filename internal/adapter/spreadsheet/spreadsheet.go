// Package spreadsheet reads and writes xlsx workbooks.
package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of xlsx workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ErrEmptyWorkbook is returned when a workbook has no sheets or no header row.
var ErrEmptyWorkbook = errors.New("workbook has no data")

// Column describes one output column.
type Column struct {
	Header string
	Width  float64
}

// Table is a single-sheet workbook to write.
type Table struct {
	Sheet   string
	Columns []Column
	Rows    [][]any
}

// Write renders t as an xlsx workbook. The header row is bold.
func Write(t Table) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, col := range t.Columns {
		if err := setCell(f, sheet, i+1, 1, col.Header); err != nil {
			return nil, err
		}
		if col.Width > 0 {
			name, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, fmt.Errorf("column name: %w", err)
			}
			if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
				return nil, fmt.Errorf("set column width: %w", err)
			}
		}
	}

	if len(t.Columns) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, fmt.Errorf("create header style: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(t.Columns), 1)
		if err != nil {
			return nil, fmt.Errorf("header range: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return nil, fmt.Errorf("style header: %w", err)
		}
	}

	for r, row := range t.Rows {
		for c, v := range row {
			if err := setCell(f, sheet, c+1, r+2, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}

// ReadRecords reads the first sheet of an xlsx workbook. The first row is the
// header; each following non-blank row becomes a map keyed by the lowercased,
// trimmed header. Missing trailing cells read as "".
func ReadRecords(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		blank := true
		for i, h := range header {
			if h == "" {
				continue
			}
			var v string
			if i < len(row) {
				v = strings.TrimSpace(row[i])
			}
			if v != "" {
				blank = false
			}
			rec[h] = v
		}
		if !blank {
			records = append(records, rec)
		}
	}
	return records, nil
}
