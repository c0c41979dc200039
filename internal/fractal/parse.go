package fractal

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// MaxDimension is the largest width or height accepted by ParseBounds.
// It matches the 31-bit limit on PNG image dimensions.
const MaxDimension = math.MaxInt32

// Number is the set of numeric types ParsePair can produce.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ParsePair parses s as two values of type T separated by sep.
//
// The string is split at the first occurrence of sep and each side is
// parsed on its own. The pair is returned only when both sides parse;
// a missing separator, an empty side or trailing garbage all yield ok=false
// and zero values.
//
// Each side is plain decimal text. A leading '+' is accepted for every
// type, unsigned ones included. Integers out of range for T fail. Floats
// that overflow T parse as ±Inf, and hexadecimal floats ("0x1p-2") are
// rejected.
//
//	ParsePair[int]("10,20", ',')     // 10, 20, true
//	ParsePair[int]("10,", ',')       // 0, 0, false
//	ParsePair[float64]("0.5x1.5", 'x') // 0.5, 1.5, true
func ParsePair[T Number](s string, sep rune) (T, T, bool) {
	left, right, found := strings.Cut(s, string(sep))
	if !found {
		return 0, 0, false
	}

	l, err := parseNumber[T](left)
	if err != nil {
		return 0, 0, false
	}
	r, err := parseNumber[T](right)
	if err != nil {
		return 0, 0, false
	}
	return l, r, true
}

// ParseComplex parses a "re,im" pair such as "-1.20,0.35".
func ParseComplex(s string) (complex128, bool) {
	re, im, ok := ParsePair[float64](s, ',')
	if !ok {
		return 0, false
	}
	return complex(re, im), true
}

// ParseBounds parses image dimensions written as "WIDTHxHEIGHT", e.g. "1000x750".
// Dimensions above MaxDimension are rejected, as are sizes whose RGB8
// buffer length would not fit in an int.
func ParseBounds(s string) (Bounds, bool) {
	w, h, ok := ParsePair[uint](s, 'x')
	if !ok || w > MaxDimension || h > MaxDimension {
		return Bounds{}, false
	}
	if uint64(w)*uint64(h) > math.MaxInt/3 {
		return Bounds{}, false
	}
	return Bounds{Width: int(w), Height: int(h)}, true
}

// parseNumber dispatches on the kind of T to the matching strconv parser,
// using T's bit size so out-of-range integers fail instead of wrapping.
func parseNumber[T Number](s string) (T, error) {
	var zero T
	t := reflect.TypeOf(zero)

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			return zero, err
		}
		return T(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, t.Bits())
		if err != nil {
			return zero, err
		}
		return T(n), nil
	default:
		if isHexFloat(s) {
			return zero, strconv.ErrSyntax
		}
		f, err := strconv.ParseFloat(s, t.Bits())
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return zero, err
		}
		return T(f), nil
	}
}

// isHexFloat reports whether s carries a 0x prefix after an optional sign.
func isHexFloat(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
