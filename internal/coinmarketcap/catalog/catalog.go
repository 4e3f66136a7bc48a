package catalog

import "strings"

// Entry is a catalog line split into display name and ticker symbol.
type Entry struct {
	Name   string
	Symbol string
}

// ParseEntry extracts the symbol between the first "(" and the ")" following it.
// Nested parentheses are not supported: "A (B) (C)" yields symbol "B".
func ParseEntry(entry string) (Entry, bool) {
	open := strings.Index(entry, "(")
	if open < 0 {
		return Entry{}, false
	}
	end := strings.Index(entry[open+1:], ")")
	if end < 0 {
		return Entry{}, false
	}
	return Entry{
		Name:   strings.TrimSpace(entry[:open]),
		Symbol: strings.TrimSpace(entry[open+1 : open+1+end]),
	}, true
}

// Symbols reduces catalog entries to their ticker symbols, keeping order.
// An entry without a parenthesized group is used as the symbol itself.
func Symbols(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if parsed, ok := ParseEntry(e); ok {
			out = append(out, parsed.Symbol)
			continue
		}
		out = append(out, strings.TrimSpace(e))
	}
	return out
}

// Default returns the symbols of the built-in catalog.
func Default() []string {
	return Symbols(DefaultTokens[:])
}

// Resolve picks the symbols to query: the built-in catalog when useCatalog is
// set or nothing was supplied, otherwise supplied as given.
func Resolve(useCatalog bool, supplied []string) []string {
	if useCatalog || len(supplied) == 0 {
		return Default()
	}
	out := make([]string, len(supplied))
	copy(out, supplied)
	return out
}
