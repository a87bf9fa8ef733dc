package domain

// RateTable maps a currency code to its rate against one base currency.
// Values keep the decimal text exactly as the rate service sent it.
type RateTable map[string]string

// Lookup returns the rate for code and whether the table has one at all.
// An absent rate is not the same thing as "0".
func (t RateTable) Lookup(code string) (string, bool) {
	if t == nil {
		return "", false
	}
	rate, ok := t[code]
	return rate, ok
}

// Clone returns an independent copy of the table.
func (t RateTable) Clone() RateTable {
	if t == nil {
		return nil
	}
	out := make(RateTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
