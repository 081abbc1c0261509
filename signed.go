package ebtree

// BiasS32 maps a signed 32-bit key onto the unsigned ordering the core
// engine operates on, by flipping its sign bit: negative values land
// below non-negative ones, and ordinary unsigned comparison on the
// result agrees with signed comparison on v.
func BiasS32(v int32) uint32 { return uint32(v) ^ 0x8000_0000 }

// UnbiasS32 is the inverse of BiasS32.
func UnbiasS32(v uint32) int32 { return int32(v ^ 0x8000_0000) }

// BiasS64 is BiasS32 for 64-bit signed keys.
func BiasS64(v int64) uint64 { return uint64(v) ^ 0x8000_0000_0000_0000 }

// UnbiasS64 is the inverse of BiasS64.
func UnbiasS64(v uint64) int64 { return int64(v ^ 0x8000_0000_0000_0000) }
