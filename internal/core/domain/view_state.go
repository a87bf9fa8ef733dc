package domain

// SortMode records which ordering was last applied to the content lists.
type SortMode string

const (
	SortNone     SortMode = "none"
	SortAlphabet SortMode = "alphabet"
	SortRate     SortMode = "rate"
)

// ViewState is the single aggregate consumed by the rendering layer.
// SymbolsByCode and SymbolsOrdered always hold the same key set.
type ViewState struct {
	SymbolsOrdered  []Symbol          `json:"symbolsOrdered"`
	SymbolsByCode   map[string]string `json:"symbolsByCode"`
	Rates           RateTable         `json:"rates"`
	BaseCurrency    string            `json:"baseCurrency"`
	FullContent     []CardContent     `json:"fullContent"`
	FavoriteContent []CardContent     `json:"favoriteContent"`
	SortMode        SortMode          `json:"sortMode"`
	FavoritesOnly   bool              `json:"favoritesOnly"`
	Version         uint64            `json:"version"`
}

// NewViewState returns the empty state a session starts from.
func NewViewState() ViewState {
	return ViewState{
		SymbolsOrdered:  []Symbol{},
		SymbolsByCode:   map[string]string{},
		Rates:           RateTable{},
		FullContent:     []CardContent{},
		FavoriteContent: []CardContent{},
		SortMode:        SortNone,
	}
}

// HasSymbols reports whether the symbol catalog has been populated.
func (s ViewState) HasSymbols() bool {
	return len(s.SymbolsByCode) > 0
}

// WithSymbols replaces both symbol fields from one name-sorted slice, keeping them in step.
func (s ViewState) WithSymbols(ordered []Symbol) ViewState {
	s.SymbolsOrdered = append([]Symbol(nil), ordered...)
	s.SymbolsByCode = SymbolIndex(ordered)
	return s
}

// Clone returns a deep copy so that readers can never alias the stored state.
func (s ViewState) Clone() ViewState {
	out := s
	out.SymbolsOrdered = append([]Symbol{}, s.SymbolsOrdered...)
	out.SymbolsByCode = make(map[string]string, len(s.SymbolsByCode))
	for k, v := range s.SymbolsByCode {
		out.SymbolsByCode[k] = v
	}
	out.Rates = s.Rates.Clone()
	if out.Rates == nil {
		out.Rates = RateTable{}
	}
	out.FullContent = append([]CardContent{}, s.FullContent...)
	out.FavoriteContent = append([]CardContent{}, s.FavoriteContent...)
	return out
}
