package ebtree

// Unsigned is the set of key representations the core engine is
// instantiated over. Signed 32/64-bit keys ride the same engine after
// BiasS32/BiasS64 flips their sign bit into unsigned order (see signed.go).
type Unsigned interface {
	~uint32 | ~uint64
}

// Entry is the dual-role node: every inserted value owns exactly one
// Entry, and that single struct always carries both leaf-role fields
// (leafP, key) and node-role fields
// (branches, nodeP, bit), whichever are in use at a given moment. Which
// roles are active is encoded by the zero-ness of the two parent links,
// never by a second type.
//
// An Entry is created by the caller, outside any tree, with Value set and
// link fields left zero. Insert takes it by reference; the tree never
// allocates or frees it. Delete detaches it; the caller may re-insert it
// or let it go.
type Entry[U Unsigned, V any] struct {
	branches [2]branchLink[U, V]
	nodeP    parentLink[U, V]
	leafP    parentLink[U, V]
	bit      int32
	key      U

	// Value is the caller's payload. The tree never reads or writes it.
	Value V
}

func (e *Entry[U, V]) branchPair() *[2]branchLink[U, V] { return &e.branches }

// Key returns the entry's key as handed to Insert.
func (e *Entry[U, V]) Key() U { return e.key }

// Linked reports whether the entry is currently attached to a tree.
func (e *Entry[U, V]) Linked() bool { return !e.leafP.isZero() }

// isDup reports whether bit < 0, i.e. the entry is an internal node
// inside a duplicate subtree.
func (e *Entry[U, V]) isDup() bool { return e.bit < 0 }

// Root is the standalone pair of branches a tree hangs off of. Its zero
// value is a ready-to-use empty, duplicate-allowing tree
// (root_new()); use NewUniqueRoot for a tree that rejects duplicate keys
// (root_new_unique()).
type Root[U Unsigned, V any] struct {
	branches [2]branchLink[U, V]
	unique   bool
}

func (r *Root[U, V]) branchPair() *[2]branchLink[U, V] { return &r.branches }

// NewUniqueRoot builds an empty root that rejects duplicate keys: Insert
// of a key that is already present returns the pre-existing entry instead
// of admitting the new one.
func NewUniqueRoot[U Unsigned, V any]() *Root[U, V] {
	return &Root[U, V]{unique: true}
}

// IsEmpty reports whether the tree holds no entries.
func (r *Root[U, V]) IsEmpty() bool { return r.branches[0].isNull() }

// Unique reports whether the tree was built with NewUniqueRoot.
func (r *Root[U, V]) Unique() bool { return r.unique }
