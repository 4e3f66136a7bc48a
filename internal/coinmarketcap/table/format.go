package table

import (
	"fmt"
	"strconv"
)

// Abbreviate renders a market cap with a T/B/M/K suffix.
// Thresholds are strict: exactly 1e9 is rendered as "1000.00M".
func Abbreviate(v *float64) *string {
	if v == nil {
		return nil
	}

	var s string
	switch x := *v; {
	case x > 1e12:
		s = fmt.Sprintf("%.2fT", x/1e12)
	case x > 1e9:
		s = fmt.Sprintf("%.2fB", x/1e9)
	case x > 1e6:
		s = fmt.Sprintf("%.2fM", x/1e6)
	case x > 1e3:
		s = fmt.Sprintf("%.2fK", x/1e3)
	default:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	}
	return &s
}

// SupplyPercent returns circulating/total*100 rounded to 2 decimals, or a
// non-applicable value when total is unknown or zero. Circulating may exceed total.
func SupplyPercent(circulating, total *float64) Supply {
	if total == nil || *total == 0 {
		return Supply{}
	}
	var circ float64
	if circulating != nil {
		circ = *circulating
	}
	return Supply{Percent: round2(circ / *total * 100), Applicable: true}
}

// round2 rounds half to even on the exact binary value.
func round2(x float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return x
	}
	return r
}
