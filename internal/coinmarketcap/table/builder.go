package table

import (
	"sort"
	"strings"

	"cryptotable/pkg/coinmarketcap"
)

// Build maps each asset of the response to a row, in response order.
// Quote fields are read from the currency sub-object; missing fields are left empty.
func Build(resp *coinmarketcap.QuotesResponse, currency string) Table {
	if resp == nil {
		return Table{}
	}

	t := make(Table, 0, len(resp.Data))
	for _, asset := range resp.Data {
		row := Row{
			Name:   asset.Name,
			Symbol: asset.Symbol,
		}

		if q, ok := asset.QuoteIn(currency); ok {
			row.Price = q.Price
			row.MarketCap = Abbreviate(q.MarketCap)
			row.Volume = q.Volume24h
		}

		supply := SupplyPercent(asset.CirculatingSupply, asset.TotalSupply)
		row.Supply = &supply

		t = append(t, row)
	}
	return t
}

// Reconcile appends a placeholder row for every requested symbol that has no
// row yet, comparing case-insensitively. Each missing symbol is added once, in
// request order, and returned.
func Reconcile(t Table, requested []string) (Table, []string) {
	out := make(Table, len(t), len(t)+len(requested))
	copy(out, t)

	present := make(map[string]struct{}, len(t)+len(requested))
	for _, r := range t {
		present[strings.ToLower(r.Symbol)] = struct{}{}
	}

	var missing []string
	for _, sym := range requested {
		key := strings.ToLower(sym)
		if _, ok := present[key]; ok {
			continue
		}
		present[key] = struct{}{}
		missing = append(missing, sym)
		out = append(out, Row{Symbol: sym, Placeholder: true})
	}
	return out, missing
}

// SortByPrice returns a copy sorted by price descending. Rows without a price
// go last; ties keep their input order.
func SortByPrice(t Table) Table {
	out := make(Table, len(t))
	copy(out, t)

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Price, out[j].Price
		switch {
		case pi == nil:
			return false
		case pj == nil:
			return true
		default:
			return *pi > *pj
		}
	})
	return out
}
