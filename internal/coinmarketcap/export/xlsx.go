package export

import (
	"fmt"
	"io"

	"cryptotable/internal/coinmarketcap/table"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// XLSX writes a single-sheet workbook: header row, then one row per table row.
type XLSX struct {
	Sheet string
}

func (x XLSX) Export(path string, t table.Table) error {
	return writeAtomic(path, func(w io.Writer) error {
		return x.write(w, t)
	})
}

func (x XLSX) write(w io.Writer, t table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := x.Sheet
	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	header := make([]any, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, r := range t {
		if err := setRow(f, sheet, i+2, r.Cells()); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// setRow writes values from column A; nil values leave the cell empty.
func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		switch val := v.(type) {
		case float64:
			err = f.SetCellFloat(sheet, cell, val, -1, 64)
		default:
			err = f.SetCellValue(sheet, cell, val)
		}
		if err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
