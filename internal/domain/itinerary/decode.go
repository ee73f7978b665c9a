package itinerary

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// maxLenientInt bounds decoded numbers to values a float64 represents exactly.
const maxLenientInt = 1 << 53

// UnmarshalJSON decodes the planning form leniently. Numbers may arrive as
// JSON numbers or numeric strings and fractions are truncated. Values that
// cannot be read are left blank so Normalize applies the defaults.
func (r *Request) UnmarshalJSON(data []byte) error {
	type plain Request
	var wire struct {
		plain
		City   json.RawMessage `json:"city"`
		Days   json.RawMessage `json:"days"`
		Budget json.RawMessage `json:"budget"`
		Mode   json.RawMessage `json:"mode"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	out := Request(wire.plain)
	out.City, _ = lenientString(wire.City)
	if days, ok := lenientInt(wire.Days); ok {
		out.Days = days
	}
	if budget, ok := lenientInt(wire.Budget); ok {
		out.Budget = &budget
	}
	mode, _ := lenientString(wire.Mode)
	out.Mode = Mode(mode)
	*r = out
	return nil
}

func lenientString(raw json.RawMessage) (string, bool) {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return "", false
	}
	return s, true
}

func lenientInt(raw json.RawMessage) (int, bool) {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return 0, false
	}
	if s, ok := lenientString(raw); ok {
		text = strings.TrimSpace(s)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.Abs(f) > maxLenientInt {
		return 0, false
	}
	return int(math.Trunc(f)), true
}
