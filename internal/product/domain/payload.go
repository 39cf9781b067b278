package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Payload carries a raw product submission before validation and coercion.
// The browser form posts quantity and price as strings or numbers depending
// on the client, so fields stay loosely typed until the service coerces them.
type Payload struct {
	Name              Value `json:"name"`
	Category          Value `json:"category"`
	ManufacturingDate Value `json:"manufacturing_date"`
	ExpiryDate        Value `json:"expiry_date"`
	Quantity          Value `json:"quantity"`
	Price             Value `json:"price"`
}

// Field returns the payload value for a wire field name.
func (p Payload) Field(name string) Value {
	switch name {
	case "name":
		return p.Name
	case "category":
		return p.Category
	case "manufacturing_date":
		return p.ManufacturingDate
	case "expiry_date":
		return p.ExpiryDate
	case "quantity":
		return p.Quantity
	case "price":
		return p.Price
	default:
		return Value{}
	}
}

// Value is a single loosely typed JSON scalar. It remembers whether the
// client sent a string so that coercion and presence checks can distinguish
// "0" (present) from 0 (treated as missing).
type Value struct {
	set      bool
	isString bool
	raw      string
}

// StringValue builds a present string Value. Used by tests.
func StringValue(s string) Value {
	return Value{set: true, isString: true, raw: s}
}

// NumberValue builds a present numeric Value. Used by tests.
func NumberValue(raw string) Value {
	return Value{set: true, raw: raw}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value{set: true, isString: true, raw: s}
		return nil
	}
	*v = Value{set: true, raw: string(data)}
	return nil
}

// IsSet reports whether the field appeared in the payload with a non-null value.
func (v Value) IsSet() bool { return v.set }

// Present reports whether the value passes the required-field check: absent,
// null, empty string, false and numeric zero all count as missing.
func (v Value) Present() bool {
	if !v.set {
		return false
	}
	if v.isString {
		return v.raw != ""
	}
	if v.raw == "false" {
		return false
	}
	if f, err := strconv.ParseFloat(v.raw, 64); err == nil && f == 0 {
		return false
	}
	return true
}

// String returns the decoded string for string values, or the raw JSON token
// otherwise.
func (v Value) String() string { return v.raw }

// Int coerces the value to an integer. Numeric JSON values are truncated;
// string values must be whole numbers.
func (v Value) Int() (int, error) {
	if v.isString {
		return strconv.Atoi(strings.TrimSpace(v.raw))
	}
	f, err := strconv.ParseFloat(v.raw, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// Float coerces the value to a float.
func (v Value) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(v.raw), 64)
}
