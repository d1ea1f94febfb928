// Package spreadsheet converts entity collections to and from single-sheet
// xlsx workbooks for bulk interchange. Column headers are in the business's
// working language; import tolerates a small alias set per column.
package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"biocat/internal/domain"
)

// column maps a canonical header to the aliases accepted on import.
type column struct {
	header  string
	aliases []string
}

func (c column) matches(header string) bool {
	header = strings.TrimSpace(header)
	if header == c.header {
		return true
	}
	for _, alias := range c.aliases {
		if header == alias {
			return true
		}
	}
	return false
}

// resolveHeader maps each column to its index in the header row, resolved once
// per import. Missing columns stay at -1 and read as empty.
func resolveHeader(headerRow []string, columns []column) []int {
	indexes := make([]int, len(columns))
	for i := range indexes {
		indexes[i] = -1
	}
	for cellIdx, cell := range headerRow {
		for colIdx, col := range columns {
			if indexes[colIdx] == -1 && col.matches(cell) {
				indexes[colIdx] = cellIdx
			}
		}
	}
	return indexes
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// intCell coerces a cell to a non-negative integer; non-numeric or missing reads as 0.
func intCell(row []string, idx int) int {
	raw := cellAt(row, idx)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0
	}
	return int(f)
}

// floatCell coerces a cell to a non-negative decimal; non-numeric or missing reads as 0.
func floatCell(row []string, idx int) float64 {
	raw := cellAt(row, idx)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// firstSheetRows opens a workbook and returns the rows of its first sheet.
// Any read failure surfaces as domain.ErrImportParse.
func firstSheetRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrImportParse)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportParse, err)
	}
	return rows, nil
}

// newWorkbook creates a single-sheet workbook with the given header row.
func newWorkbook(sheet string, headers []string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}
	return nil
}
