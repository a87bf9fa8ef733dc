package domain

import (
	"sort"
	"strings"
)

// Symbol represents a currency code paired with its display name.
type Symbol struct {
	Code       string `json:"code"`       // Primary Key (e.g., "USD")
	Name       string `json:"name"`       // e.g., "US Dollar"
	IsFavorite bool   `json:"isFavorite"` // Only ever flipped through the favorites manager
}

// SortSymbolsByName orders symbols by display name ascending, ties broken by code.
// The input slice is not modified.
func SortSymbolsByName(symbols []Symbol) []Symbol {
	sorted := make([]Symbol, len(symbols))
	copy(sorted, symbols)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].Code < sorted[j].Code
	})
	return sorted
}

// SymbolsFromCatalog converts a code->name catalog into Symbols (favorite flag unset).
// Codes are upper-cased first, so keys differing only in case collapse into one
// Symbol; the upper-case key's name wins, then the lowest key.
func SymbolsFromCatalog(catalog map[string]string) []Symbol {
	keys := make([]string, 0, len(catalog))
	for code := range catalog {
		keys = append(keys, code)
	}
	sort.Slice(keys, func(i, j int) bool {
		iUpper := keys[i] == strings.ToUpper(keys[i])
		jUpper := keys[j] == strings.ToUpper(keys[j])
		if iUpper != jUpper {
			return iUpper
		}
		return keys[i] < keys[j]
	})

	seen := make(map[string]bool, len(keys))
	symbols := make([]Symbol, 0, len(keys))
	for _, key := range keys {
		code := strings.ToUpper(key)
		if seen[code] {
			continue
		}
		seen[code] = true
		symbols = append(symbols, Symbol{Code: code, Name: catalog[key]})
	}
	return symbols
}

// SymbolIndex builds the code->name mapping for a set of symbols.
func SymbolIndex(symbols []Symbol) map[string]string {
	index := make(map[string]string, len(symbols))
	for _, s := range symbols {
		index[s.Code] = s.Name
	}
	return index
}
