// Package rowio reads and writes the xlsx files the matching engine
// consumes and produces, translating between excelize's cell-grid view of
// a worksheet and the internal/row representation the rest of the engine
// operates on.
package rowio

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ignite/acctmatch/internal/row"
)

var bracketRow = regexp.MustCompile(`\[.*\]`)

// ReadExcel loads the first worksheet of path into a row.Set, lower-casing
// and trimming header names. It additionally detects and cleans raw
// Salesforce report exports: when the first column header is blank or
// starts with "Unnamed" (as in "Unnamed: 0"), the leading column is
// dropped along with any data row whose first cell matches a bracketed
// section marker like "[Account]".
func ReadExcel(path string) (row.Set, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("rowio: open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("rowio: %s has no worksheets", path)
	}
	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("rowio: read %s: %w", path, err)
	}
	if len(grid) == 0 {
		return row.Set{}, nil
	}

	header := grid[0]
	dataRows := grid[1:]

	if len(header) > 0 && isUnnamed(header[0]) {
		var kept [][]string
		for _, r := range dataRows {
			first := ""
			if len(r) > 0 {
				first = r[0]
			}
			if bracketRow.MatchString(first) {
				continue
			}
			kept = append(kept, r)
		}
		dataRows = kept
		header = header[1:]
		for i, r := range dataRows {
			if len(r) > 0 {
				dataRows[i] = r[1:]
			}
		}
	}

	cleaned := make([]string, len(header))
	for i, h := range header {
		cleaned[i] = strings.ToLower(strings.TrimSpace(h))
	}

	set := make(row.Set, 0, len(dataRows))
	for _, r := range dataRows {
		out := make(row.Row, len(cleaned))
		for i, col := range cleaned {
			if col == "" {
				continue
			}
			var val string
			if i < len(r) {
				val = r[i]
			}
			out[col] = cellFrom(val)
		}
		set = append(set, out)
	}
	return set, nil
}

func isUnnamed(header string) bool {
	h := strings.ToLower(strings.TrimSpace(header))
	return h == "" || strings.HasPrefix(h, "unnamed")
}

func cellFrom(val string) row.Cell {
	trimmed := strings.TrimSpace(val)
	if trimmed == "" {
		return row.Empty
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return row.Num(f)
	}
	return row.Str(trimmed)
}

// WriteExcel saves rows to path as a single-sheet workbook, creating the
// destination directory if needed. The header row is the union of every
// row's keys, ordered by the first row in which each key appears; keys
// first seen in the same row are sorted by name, so the column order is
// the same on every run. The order of the original input file's columns
// is not kept.
func WriteExcel(path string, rows []row.Row) error {
	header := deriveHeader(rows)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetList()[0]

	for i, col := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("rowio: header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("rowio: write header: %w", err)
		}
	}

	for r, record := range rows {
		for c, col := range header {
			cellRef, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("rowio: data cell: %w", err)
			}
			value := record.Get(col)
			if value.IsAbsent() {
				continue
			}
			var err2 error
			switch value.Kind() {
			case row.Number:
				err2 = f.SetCellValue(sheet, cellRef, value.Num())
			default:
				err2 = f.SetCellValue(sheet, cellRef, value.String())
			}
			if err2 != nil {
				return fmt.Errorf("rowio: write cell: %w", err2)
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("rowio: create output dir: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("rowio: save %s: %w", path, err)
	}
	return nil
}

func deriveHeader(rows []row.Row) []string {
	var header []string
	seen := make(map[string]bool)
	for _, r := range rows {
		var fresh []string
		for col := range r {
			if !seen[col] {
				seen[col] = true
				fresh = append(fresh, col)
			}
		}
		sort.Strings(fresh)
		header = append(header, fresh...)
	}
	return header
}
