package models

import (
	"bytes"
	"strconv"
)

// Price decodes from either a JSON number or a numeric string. The backend
// serializes decimals as strings ("12.50"); anything unparseable degrades to
// zero rather than failing the whole payload.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*p = 0
		return nil
	}
	*p = Price(f)
	return nil
}

func (p Price) Float() float64 { return float64(p) }
