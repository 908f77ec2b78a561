package domain

import (
	"github.com/shopspring/decimal"
)

// Amount is a currency value that encodes as a bare JSON number.
// decimal.Decimal quotes its JSON form by default, which the consumer rejects.
type Amount struct {
	decimal.Decimal
}

// NewAmount parses s, panicking on malformed input. Use it for literals only.
func NewAmount(s string) Amount {
	return Amount{decimal.RequireFromString(s)}
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts both quoted and bare numbers.
func (a *Amount) UnmarshalJSON(b []byte) error {
	return a.Decimal.UnmarshalJSON(b)
}
