package ebtree

// branchKind tags a branchLink: whether the branches pair it addresses
// should be read as a leaf (the target entry itself is the terminal key
// holder) or as a node (the target entry's own branches must be
// descended further).
type branchKind uint8

const (
	branchLeaf branchKind = iota
	branchNode
)

// side tags a parentLink: which branch slot of the parent the holder is
// attached to.
type side uint8

const (
	sideLeft side = iota
	sideRight
)

// other returns the opposite side.
func (s side) other() side { return 1 - s }

// branchHolder is implemented by both *Entry and *Root: anything that
// owns a branches pair. A parentLink's holder field is this interface, so
// the root sentinel is distinguishable from an ordinary entry by a type
// switch alone - no dereference of the pointed-to memory is needed.
type branchHolder[U Unsigned, V any] interface {
	branchPair() *[2]branchLink[U, V]
}

// branchLink is a tagged link living in a branches pair: it addresses
// another entry and says whether that entry should be treated as a leaf
// or as a node. The zero value (target == nil) is the "unused" / null
// link; only Root.branches[0] may legitimately be null (an empty tree).
type branchLink[U Unsigned, V any] struct {
	target *Entry[U, V]
	kind   branchKind
}

func leafLink[U Unsigned, V any](e *Entry[U, V]) branchLink[U, V] {
	return branchLink[U, V]{target: e, kind: branchLeaf}
}

func nodeLink[U Unsigned, V any](e *Entry[U, V]) branchLink[U, V] {
	return branchLink[U, V]{target: e, kind: branchNode}
}

func (l branchLink[U, V]) isNull() bool { return l.target == nil }

// parentLink is a tagged upward link: the entry or root whose branches
// pair this link is hanging off of, plus which side. The zero value
// (holder == nil) means "this role is unused": node_p == 0 means the
// entry does not currently serve a node role; leaf_p == 0 means the
// entry is not linked into any tree.
type parentLink[U Unsigned, V any] struct {
	holder branchHolder[U, V]
	side   side
}

func (p parentLink[U, V]) isZero() bool { return p.holder == nil }

// slot returns the addressed branch slot in the parent/root.
func (p parentLink[U, V]) slot() *branchLink[U, V] {
	return &p.holder.branchPair()[p.side]
}

// atRoot reports whether this parent link is the root sentinel, i.e. the
// entry sits directly under the tree root rather than under another
// entry's node role.
func (p parentLink[U, V]) atRoot() bool {
	_, ok := p.holder.(*Root[U, V])
	return ok
}
