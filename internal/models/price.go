package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Price is a decimal amount as the API serializes it. The backend sends
// prices as JSON strings ("10.00") but older records and some list
// endpoints emit bare numbers, and deleted listings may carry null.
// A missing, null or unparsable price decodes to the zero Price so that
// totals never pick up NaN.
type Price struct {
	Amount float64
	Valid  bool
}

// PriceFrom returns a valid Price for a known amount.
func PriceFrom(amount float64) Price {
	return Price{Amount: amount, Valid: true}
}

func (p Price) String() string {
	if !p.Valid {
		return ""
	}
	return strconv.FormatFloat(p.Amount, 'f', 2, 64)
}

// MarshalJSON writes the price as a decimal string, matching what the
// backend's serializer expects on input. Invalid prices marshal as null.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.String())
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = Price{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*p = Price{}
			return nil
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*p = Price{}
			return nil
		}
		*p = Price{Amount: amount, Valid: true}
		return nil
	}

	var amount float64
	if err := json.Unmarshal(data, &amount); err != nil {
		*p = Price{}
		return nil
	}
	*p = Price{Amount: amount, Valid: true}
	return nil
}
