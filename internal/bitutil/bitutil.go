// Package bitutil collects the small bit-scan helpers the ebtree engines
// share: wrap math/bits rather than hand-roll bit-scan loops.
package bitutil

import "math/bits"

// Fls returns the zero-based index of the highest set bit in x, or -1 if
// x is zero ("find last set", the traditional name for this primitive in
// the ebtree family).
func Fls(x uint64) int {
	if x == 0 {
		return -1
	}
	return bits.Len64(x) - 1
}

// EqualBits returns the number of leading bits, counted from the MSB,
// that a and b have in common. Used by ebtree/strtree to locate the
// critical byte within a multi-byte key comparison.
func EqualBits(a, b byte) int {
	return bits.LeadingZeros8(a ^ b)
}
