package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NumberField decodes a JSON number or a numeric string. Decoding never fails:
// a value that is present but not numeric is flagged Invalid so validation can
// report it against the field instead of rejecting the whole body.
type NumberField struct {
	Value   float64
	Set     bool
	Invalid bool
}

func (n *NumberField) UnmarshalJSON(data []byte) error {
	*n = NumberField{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			n.Set, n.Invalid = true, true
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		n.Set = true
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			n.Invalid = true
			return nil
		}
		n.Value = v
		return nil
	}

	n.Set = true
	var v float64
	if err := json.Unmarshal(trimmed, &v); err != nil {
		n.Invalid = true
		return nil
	}
	n.Value = v
	return nil
}

// Num is a convenience constructor for an already-valid number.
func Num(v float64) NumberField {
	return NumberField{Value: v, Set: true}
}
