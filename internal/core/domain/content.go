package domain

// MissingRateDisplay is what the rendering layer shows when a symbol has no rate.
const MissingRateDisplay = "0.0"

// CardContent is one display row derived from a Symbol, the current RateTable and the
// stored favorite flag. It has no identity of its own and is rebuilt on every projection.
type CardContent struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Rate       string `json:"rate"`    // Empty when HasRate is false
	HasRate    bool   `json:"hasRate"` // False when the rate table had no entry for Code
	IsFavorite bool   `json:"isFavorite"`
	IconRef    string `json:"iconRef"`
}

// DisplayRate returns the rate text to show, substituting MissingRateDisplay for absent rates.
func (c CardContent) DisplayRate() string {
	if !c.HasRate {
		return MissingRateDisplay
	}
	return c.Rate
}
