package ebtree

import "ebtree/internal/bitutil"

// fls returns the zero-based index of x's highest set bit, as an int32
// since that's the width the bit field on Entry is stored at.
func fls[U Unsigned](x U) int32 {
	return int32(bitutil.Fls(uint64(x)))
}

// bitAt extracts the bit of key at position bit as a side: 0 -> left,
// 1 -> right.
func bitAt[U Unsigned](key U, bit int32) side {
	return side((key >> uint(bit)) & U(1))
}
