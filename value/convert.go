package value

import (
	"fmt"
	"strconv"
)

// ParseBool parses standard boolean literals ("true"/"false", "1"/"0", and
// the other forms strconv.ParseBool accepts).
func ParseBool(s string) (Value, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return Value{}, fmt.Errorf("could not parse from string")
	}
	return NewBoolean(b), nil
}

// ParseInt32 parses a signed 32-bit integer. This intentionally narrower
// width (versus the Value model's 64-bit Integer) is preserved from the
// system this shell's constructor/method parameter coercion was modeled on:
// a tag of "int" always means a 32-bit parse, even though Integer values
// otherwise hold 64 bits.
func ParseInt32(s string) (Value, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return Value{}, fmt.Errorf("could not parse from string")
	}
	return NewInteger(n), nil
}

// ParseFloat64 parses a binary64 float.
func ParseFloat64(s string) (Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("could not parse from string")
	}
	return NewFloat(f), nil
}
