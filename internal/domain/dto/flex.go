package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat decodes a JSON number, a numeric string, an empty string or null.
// Anything that cannot be read as a number decodes to 0, which is how form
// inputs that were left blank arrive.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = 0

	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		*f = FlexFloat(v)
	}
	return nil
}

// Float64 returns the value as a float64.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}
