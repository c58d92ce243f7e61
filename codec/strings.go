// Package codec implements JSON conventions used by chain REST APIs,
// most notably 64-bit integers carried as decimal strings so that
// JSON-number-as-double consumers never lose precision.
package codec

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedNumber reports a decimal string that does not parse as an
// unsigned integer of the requested width.
var ErrMalformedNumber = errors.New("malformed number")

// Unsigned is the set of integer types encodable as decimal strings.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FormatUint renders v as canonical decimal text: "0" for zero, no leading
// zeros otherwise, never a sign.
func FormatUint[T Unsigned](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

// ParseUint parses s as an unsigned decimal of type T. The empty string,
// signs, non-digit characters, and values outside T's range all fail with
// an error wrapping ErrMalformedNumber.
func ParseUint[T Unsigned](s string) (T, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}
	if uint64(T(n)) != n {
		return 0, fmt.Errorf("%w: %q overflows %T", ErrMalformedNumber, s, T(0))
	}
	return T(n), nil
}
