package table

import "strings"

// Columns is the exported header row, in order.
var Columns = []string{"Name", "Symbol", "Price", "Market Cap", "Volume(24h)", "Supply %"}

// NotApplicable is rendered when the total supply is zero or unknown.
const NotApplicable = "N/A"

// Supply is the circulating/total supply percentage of a row.
type Supply struct {
	Percent    float64
	Applicable bool // false renders as NotApplicable
}

// Row is one line of the exported table. Nil pointers are empty cells.
type Row struct {
	Name        string
	Symbol      string
	Price       *float64
	MarketCap   *string // abbreviated, e.g. "1.28T"
	Volume      *float64
	Supply      *Supply
	Placeholder bool // requested symbol absent from the API response
}

// Cells returns the row values in Columns order; empty cells are nil.
func (r Row) Cells() []any {
	cells := make([]any, 0, len(Columns))

	if r.Name == "" {
		cells = append(cells, nil)
	} else {
		cells = append(cells, r.Name)
	}
	cells = append(cells, r.Symbol)
	cells = append(cells, floatCell(r.Price))
	if r.MarketCap == nil {
		cells = append(cells, nil)
	} else {
		cells = append(cells, *r.MarketCap)
	}
	cells = append(cells, floatCell(r.Volume))

	switch {
	case r.Supply == nil:
		cells = append(cells, nil)
	case !r.Supply.Applicable:
		cells = append(cells, NotApplicable)
	default:
		cells = append(cells, r.Supply.Percent)
	}
	return cells
}

func floatCell(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// Table is an ordered sequence of rows.
type Table []Row

// Symbols returns the Symbol column.
func (t Table) Symbols() []string {
	out := make([]string, len(t))
	for i, r := range t {
		out[i] = r.Symbol
	}
	return out
}

// Has reports whether symbol is present, ignoring case.
func (t Table) Has(symbol string) bool {
	for _, r := range t {
		if strings.EqualFold(r.Symbol, symbol) {
			return true
		}
	}
	return false
}
