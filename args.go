package cprintf

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// intArg converts an argument of an integer verb.
// Unsigned values are reinterpreted as two's complement.
func intArg(arg any) (int64, bool) {
	switch v := arg.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case uintptr:
		return int64(v), true
	case string:
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i, true
		}
		u, err := strconv.ParseUint(v, 10, 64)
		if err == nil {
			return int64(u), true
		}
	}
	return 0, false
}

// starArg converts the argument of a '*' width or precision.
func starArg(arg any) (int, bool) {
	v, ok := intArg(arg)
	if !ok || v > MaxWidth || v < -MaxWidth {
		return 0, false
	}
	return int(v), true
}

// floatArg converts an argument of a floating-point verb.
// single reports a single precision value.
func floatArg(arg any) (f float64, single bool, ok bool) {
	switch v := arg.(type) {
	case float64:
		return v, false, true
	case float32:
		return float64(v), true, true
	case Double:
		return float64(v), false, true
	case Single:
		return float64(v), true, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		// ParseFloat returns ±Inf together with a range error.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false, false
		}
		return f, false, true
	}
	if i, ok := intArg(arg); ok {
		switch arg.(type) {
		case uint, uint64, uintptr:
			return float64(uint64(i)), false, true
		}
		return float64(i), false, true
	}
	return 0, false, false
}

// charArg converts an argument of %c.
func charArg(arg any) (rune, bool) {
	if s, ok := arg.(string); ok {
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 {
			return 0, false
		}
		return r, true
	}
	v, ok := intArg(arg)
	if !ok {
		return 0, false
	}
	return rune(int32(v)), true
}

// stringArg converts an argument of %s.
func stringArg(arg any) (string, bool) {
	switch v := arg.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case []byte:
		return string(v), true
	case error:
		return v.Error(), true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}
