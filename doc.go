// Package ebtree implements elastic binary trees: self-organizing,
// non-balancing, intrusive ordered containers keyed by fixed-width
// integers.
//
// An ebtree is a binary radix trie over the XOR of its keys. Every entry
// plays two roles at once: it is always a leaf (it holds a key), and it may
// additionally serve as an internal branching point for other entries
// (its node role). No separate internal-node allocation ever happens -
// descent, insertion and deletion are all O(1) amortized per step and the
// tree never allocates or frees an entry; the caller owns the storage and
// only the link fields are touched.
//
// The package is built once, generically, over the set of unsigned integer
// widths it needs (uint32, uint64); signed keys are supported by biasing
// the sign bit before handing the key to the same engine, see BiasS32,
// BiasS64 and their inverses.
//
// A Root is not safe for concurrent use by multiple goroutines without
// external synchronization, mirroring ordinary map/slice semantics.
package ebtree
