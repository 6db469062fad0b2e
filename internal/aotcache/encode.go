// SPDX-License-Identifier: MPL-2.0

package aotcache

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// alphabet holds the base52 digits in ascending order. It omits the easily
// confused I, O, l and o; the digit set and order match the cache names
// already written by earlier jarrunner releases.
const alphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrst"

const radix = uint64(len(alphabet))

// ErrInvalidIdentity is the sentinel error wrapped by InvalidIdentityError.
var ErrInvalidIdentity = errors.New("invalid cache identity")

// InvalidIdentityError is returned when a string is not a valid base52 encoding.
type InvalidIdentityError struct {
	Value  string
	Reason string
}

// Error implements the error interface.
func (e *InvalidIdentityError) Error() string {
	return fmt.Sprintf("invalid cache identity %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidIdentity for errors.Is() compatibility.
func (e *InvalidIdentityError) Unwrap() error { return ErrInvalidIdentity }

// Encode returns the base52 representation of value, most significant digit
// first. Zero encodes to the first alphabet character.
func Encode(value uint64) string {
	if value == 0 {
		return alphabet[:1]
	}

	var buf [16]byte // 52^12 > 2^64
	pos := len(buf)
	for value > 0 {
		pos--
		buf[pos] = alphabet[value%radix]
		value /= radix
	}
	return string(buf[pos:])
}

// Decode is the inverse of Encode.
func Decode(s string) (uint64, error) {
	if s == "" {
		return 0, &InvalidIdentityError{Value: s, Reason: "empty"}
	}
	if len(s) > 1 && s[0] == alphabet[0] {
		return 0, &InvalidIdentityError{Value: s, Reason: "leading zero digit"}
	}

	var value uint64
	for i := range len(s) {
		digit := strings.IndexByte(alphabet, s[i])
		if digit < 0 {
			return 0, &InvalidIdentityError{Value: s, Reason: fmt.Sprintf("character %q is not a base52 digit", s[i])}
		}
		if value > (math.MaxUint64-uint64(digit))/radix {
			return 0, &InvalidIdentityError{Value: s, Reason: "overflows uint64"}
		}
		value = value*radix + uint64(digit)
	}
	return value, nil
}

// isEncoded reports whether s could have been produced by Encode.
func isEncoded(s string) bool {
	_, err := Decode(s)
	return err == nil
}
