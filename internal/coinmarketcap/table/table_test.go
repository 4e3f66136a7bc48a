package table

import (
	"encoding/json"
	"strings"
	"testing"

	"cryptotable/pkg/coinmarketcap"
)

func f(v float64) *float64 { return &v }

func decode(t *testing.T, body string) *coinmarketcap.QuotesResponse {
	t.Helper()
	var resp coinmarketcap.QuotesResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return &resp
}

// go test -v --run TestAbbreviate
func TestAbbreviate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.5e9, "1.50B"},
		{1e9, "1000.00M"}, // strict threshold
		{1e12, "1000.00B"},
		{1.28e12, "1.28T"},
		{2.5e6, "2.50M"},
		{1e6, "1000.00K"},
		{1234, "1.23K"},
		{1000, "1000"},
		{999.5, "999.5"},
		{0, "0"},
		{-5e9, "-5000000000"},
	}

	for _, tt := range tests {
		got := Abbreviate(f(tt.in))
		if got == nil || *got != tt.want {
			t.Errorf("Abbreviate(%v): got %v, want %q", tt.in, got, tt.want)
		}
	}

	if Abbreviate(nil) != nil {
		t.Error("Abbreviate(nil) should be nil")
	}
}

// go test -v --run TestAbbreviateSuffix
func TestAbbreviateSuffix(t *testing.T) {
	for _, v := range []float64{1001, 3.3e6, 7.1e9, 4.2e13} {
		s := *Abbreviate(f(v))
		n := 0
		for _, suffix := range []string{"T", "B", "M", "K"} {
			if strings.HasSuffix(s, suffix) {
				n++
			}
		}
		if n != 1 {
			t.Errorf("Abbreviate(%v) = %q, want exactly one suffix", v, s)
		}
	}
}

// go test -v --run TestSupplyPercent
func TestSupplyPercent(t *testing.T) {
	if s := SupplyPercent(f(100), f(0)); s.Applicable {
		t.Errorf("zero total: got %+v, want N/A", s)
	}
	if s := SupplyPercent(f(100), nil); s.Applicable {
		t.Errorf("nil total: got %+v, want N/A", s)
	}

	s := SupplyPercent(f(19700000), f(21000000))
	if !s.Applicable || s.Percent != 93.81 {
		t.Errorf("got %+v, want 93.81", s)
	}

	// malformed data where circulating exceeds total must not fail
	s = SupplyPercent(f(150), f(100))
	if !s.Applicable || s.Percent != 150 {
		t.Errorf("got %+v, want 150", s)
	}

	s = SupplyPercent(nil, f(100))
	if !s.Applicable || s.Percent != 0 {
		t.Errorf("nil circulating: got %+v, want 0", s)
	}

	s = SupplyPercent(f(1), f(3))
	if s.Percent != 33.33 {
		t.Errorf("got %v, want 33.33", s.Percent)
	}
}

// go test -v --run TestBuild
func TestBuild(t *testing.T) {
	resp := decode(t, `{"data":{
		"BTC":{"name":"Bitcoin","symbol":"BTC","circulating_supply":19700000,"total_supply":21000000,
			"quote":{"USD":{"price":65000,"volume_24h":3e10,"market_cap":1.28e12}}},
		"NEW":{"name":"New","symbol":"NEW","circulating_supply":5,"total_supply":0,"quote":{}}}}`)

	tbl := Build(resp, "USD")
	if len(tbl) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl))
	}

	btc := tbl[0]
	if btc.Name != "Bitcoin" || btc.Symbol != "BTC" {
		t.Errorf("unexpected identity: %+v", btc)
	}
	if btc.Price == nil || *btc.Price != 65000 {
		t.Errorf("price: got %v", btc.Price)
	}
	if btc.MarketCap == nil || *btc.MarketCap != "1.28T" {
		t.Errorf("market cap: got %v", btc.MarketCap)
	}
	if btc.Volume == nil || *btc.Volume != 3e10 {
		t.Errorf("volume: got %v", btc.Volume)
	}
	if btc.Supply == nil || btc.Supply.Percent != 93.81 {
		t.Errorf("supply: got %+v", btc.Supply)
	}

	nw := tbl[1]
	if nw.Price != nil || nw.MarketCap != nil || nw.Volume != nil {
		t.Errorf("expected empty quote fields, got %+v", nw)
	}
	if nw.Supply == nil || nw.Supply.Applicable {
		t.Errorf("expected N/A supply, got %+v", nw.Supply)
	}
	if cells := nw.Cells(); cells[5] != NotApplicable {
		t.Errorf("supply cell: got %v", cells[5])
	}
}

// go test -v --run TestBuildOtherCurrency
func TestBuildOtherCurrency(t *testing.T) {
	resp := decode(t, `{"data":{"BTC":{"name":"Bitcoin","symbol":"BTC","quote":{"USD":{"price":65000}}}}}`)

	tbl := Build(resp, "EUR")
	if tbl[0].Price != nil {
		t.Errorf("expected no price for missing currency, got %v", *tbl[0].Price)
	}
	if len(Build(nil, "USD")) != 0 {
		t.Error("Build(nil) should be empty")
	}
}

// go test -v --run TestReconcile
func TestReconcile(t *testing.T) {
	tbl := Table{{Name: "Bitcoin", Symbol: "BTC", Price: f(65000)}}

	out, missing := Reconcile(tbl, []string{"btc", "FAKE", "fake", "ETH"})
	if len(missing) != 2 || missing[0] != "FAKE" || missing[1] != "ETH" {
		t.Fatalf("missing: got %v", missing)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(out))
	}

	fake := out[1]
	if !fake.Placeholder || fake.Symbol != "FAKE" {
		t.Errorf("unexpected placeholder: %+v", fake)
	}
	for i, c := range fake.Cells() {
		if i != 1 && c != nil {
			t.Errorf("placeholder cell %d should be empty, got %v", i, c)
		}
	}

	if len(tbl) != 1 {
		t.Error("Reconcile must not grow the input table")
	}
}

// go test -v --run TestReconcileEveryRequestedOnce
func TestReconcileEveryRequestedOnce(t *testing.T) {
	requested := []string{"BTC", "eth", "SOL", "Doge"}
	out, missing := Reconcile(Table{}, requested)

	if len(missing) != len(requested) || len(out) != len(requested) {
		t.Fatalf("expected all %d placeholders, got rows=%d missing=%d", len(requested), len(out), len(missing))
	}
	for _, sym := range requested {
		n := 0
		for _, r := range out {
			if strings.EqualFold(r.Symbol, sym) {
				n++
			}
		}
		if n != 1 {
			t.Errorf("symbol %s appears %d times", sym, n)
		}
	}
	if !out.Has("doge") {
		t.Error("Has should ignore case")
	}
}

// go test -v --run TestSortByPrice
func TestSortByPrice(t *testing.T) {
	tbl := Table{
		{Symbol: "ETH", Price: f(3000)},
		{Symbol: "NONE"},
		{Symbol: "BTC", Price: f(65000)},
		{Symbol: "A", Price: f(1)},
		{Symbol: "B", Price: f(1)},
		{Symbol: "FAKE", Placeholder: true},
	}

	got := strings.Join(SortByPrice(tbl).Symbols(), ",")
	if got != "BTC,ETH,A,B,NONE,FAKE" {
		t.Errorf("sorted: got %s", got)
	}
	if tbl[0].Symbol != "ETH" {
		t.Error("SortByPrice must not reorder its input")
	}
}
