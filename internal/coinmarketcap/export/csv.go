package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"cryptotable/internal/coinmarketcap/table"
)

// CSV writes the same header and rows as XLSX as comma separated text.
type CSV struct{}

func (CSV) Export(path string, t table.Table) error {
	return writeAtomic(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(table.Columns); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		for _, r := range t {
			if err := cw.Write(csvRecord(r.Cells())); err != nil {
				return fmt.Errorf("write row %s: %w", r.Symbol, err)
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

func csvRecord(cells []any) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		switch v := c.(type) {
		case nil:
		case float64:
			out[i] = strconv.FormatFloat(v, 'f', -1, 64)
		case string:
			out[i] = v
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}
