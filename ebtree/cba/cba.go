// Package cba is the CB (compact, address-keyed) binary tree: the key
// is the entry's own memory address, read on demand via unsafe.Pointer
// and never cached across a window where the referent could move or be
// collected. Go's allocator and garbage collector never let two distinct
// live values share an address, so this variant carries no duplicate-key
// ambiguity: it is unique-only by construction, and Insert of a key
// that's already present cannot happen (an entry IS its own key).
package cba

import (
	"unsafe"

	"ebtree/internal/bitutil"
)

type kind uint8

const (
	kindLeaf kind = iota
	kindNode
)

type link[V any] struct {
	target *Entry[V]
	kind   kind
}

func leafLink[V any](e *Entry[V]) link[V] { return link[V]{target: e, kind: kindLeaf} }
func nodeLink[V any](e *Entry[V]) link[V] { return link[V]{target: e, kind: kindNode} }
func (l link[V]) isNull() bool            { return l.target == nil }

type side uint8

const (
	sideLeft side = iota
	sideRight
)

func (s side) other() side { return 1 - s }

type holder[V any] interface {
	branchPair() *[2]link[V]
}

type parent[V any] struct {
	h    holder[V]
	side side
}

func (p parent[V]) isZero() bool { return p.h == nil }
func (p parent[V]) slot() *link[V] {
	return &p.h.branchPair()[p.side]
}
func (p parent[V]) atRoot() bool {
	_, ok := p.h.(*Tree[V])
	return ok
}

// Entry is one caller-owned value registered by its own address.
type Entry[V any] struct {
	branches [2]link[V]
	nodeP    parent[V]
	leafP    parent[V]
	bit      int32

	Value V
}

func (e *Entry[V]) branchPair() *[2]link[V] { return &e.branches }

// Addr returns the entry's key: its own address, as a uintptr snapshot.
// The snapshot is only meaningful for the instant it's taken - see the
// package doc comment.
func (e *Entry[V]) Addr() uintptr { return uintptr(unsafe.Pointer(e)) }

// Linked reports whether the entry is attached to a tree.
func (e *Entry[V]) Linked() bool { return !e.leafP.isZero() }

// Tree is an address-keyed tree. Its zero value is a ready-to-use empty
// tree.
type Tree[V any] struct {
	branches [2]link[V]
}

func (t *Tree[V]) branchPair() *[2]link[V] { return &t.branches }

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[V]) IsEmpty() bool { return t.branches[0].isNull() }

func bitAt(key uintptr, bit int32) side {
	return side((key >> uint(bit)) & 1)
}

func fls(x uintptr) int32 { return int32(bitutil.Fls(uint64(x))) }

func descend[V any](t *Tree[V], key uintptr) *Entry[V] {
	l := t.branches[sideLeft]
	for l.kind == kindNode {
		n := l.target
		l = n.branches[bitAt(key, n.bit)]
	}
	return l.target
}

func findSplice[V any](t *Tree[V], key uintptr, bit int32) parent[V] {
	loc := parent[V]{h: t, side: sideLeft}
	for {
		l := *loc.slot()
		if l.kind != kindNode || l.target.bit <= bit {
			return loc
		}
		n := l.target
		loc = parent[V]{h: n, side: bitAt(key, n.bit)}
	}
}

func setParent[V any](l link[V], p parent[V]) {
	if l.kind == kindLeaf {
		l.target.leafP = p
	} else {
		l.target.nodeP = p
	}
}

func spliceAbove[V any](loc parent[V], e *Entry[V], bit int32, newSide side) {
	old := *loc.slot()
	oldSide := newSide.other()

	e.bit = bit
	e.branches[oldSide] = old
	e.branches[newSide] = leafLink(e)

	setParent(old, parent[V]{h: e, side: oldSide})
	e.leafP = parent[V]{h: e, side: newSide}
	e.nodeP = loc

	*loc.slot() = nodeLink(e)
}

func descendMin[V any](l link[V]) *Entry[V] {
	for l.kind == kindNode {
		l = l.target.branches[sideLeft]
	}
	return l.target
}

func descendMax[V any](l link[V]) *Entry[V] {
	for l.kind == kindNode {
		l = l.target.branches[sideRight]
	}
	return l.target
}

// Insert registers e by its own address. e must not already be linked;
// since the key is the entry's address, a colliding key cannot occur.
func Insert[V any](t *Tree[V], e *Entry[V]) *Entry[V] {
	key := e.Addr()

	if t.IsEmpty() {
		e.leafP = parent[V]{h: t, side: sideLeft}
		t.branches[sideLeft] = leafLink(e)
		return e
	}

	p := descend(t, key)
	bit := fls(key ^ p.Addr())
	loc := findSplice(t, key, bit)
	spliceAbove(loc, e, bit, bitAt(key, bit))
	return e
}

// Lookup returns the entry registered at addr, or ok == false.
func Lookup[V any](t *Tree[V], addr uintptr) (e *Entry[V], ok bool) {
	if t.IsEmpty() {
		return nil, false
	}
	p := descend(t, addr)
	if p.Addr() != addr {
		return nil, false
	}
	return p, true
}

// LookupGE returns the entry with the smallest address >= addr, i.e.
// the first registered block starting at or after addr.
func LookupGE[V any](t *Tree[V], addr uintptr) (e *Entry[V], ok bool) {
	if t.IsEmpty() {
		return nil, false
	}
	l := t.branches[sideLeft]
	var lastLeft *Entry[V]
	for l.kind == kindNode {
		n := l.target
		if (addr^n.Addr())>>uint(n.bit)>>1 != 0 {
			if addr < n.Addr() {
				return descendMin(l), true
			}
			break
		}
		if bitAt(addr, n.bit) == sideLeft {
			lastLeft = n
			l = n.branches[sideLeft]
		} else {
			l = n.branches[sideRight]
		}
	}
	leaf := l.target
	if leaf.Addr() >= addr {
		return leaf, true
	}
	if lastLeft == nil {
		return nil, false
	}
	return descendMin(lastLeft.branches[sideRight]), true
}

// LookupLE returns the entry with the largest address <= addr - the
// region-membership query this variant exists for: "which registered
// block does this pointer belong to".
func LookupLE[V any](t *Tree[V], addr uintptr) (e *Entry[V], ok bool) {
	if t.IsEmpty() {
		return nil, false
	}
	l := t.branches[sideLeft]
	var lastRight *Entry[V]
	for l.kind == kindNode {
		n := l.target
		if (addr^n.Addr())>>uint(n.bit)>>1 != 0 {
			if addr > n.Addr() {
				return descendMax(l), true
			}
			break
		}
		if bitAt(addr, n.bit) == sideRight {
			lastRight = n
			l = n.branches[sideRight]
		} else {
			l = n.branches[sideLeft]
		}
	}
	leaf := l.target
	if leaf.Addr() <= addr {
		return leaf, true
	}
	if lastRight == nil {
		return nil, false
	}
	return descendMax(lastRight.branches[sideLeft]), true
}

// First returns the entry with the smallest address.
func First[V any](t *Tree[V]) (e *Entry[V], ok bool) {
	if t.IsEmpty() {
		return nil, false
	}
	return descendMin(t.branches[sideLeft]), true
}

// Last returns the entry with the largest address.
func Last[V any](t *Tree[V]) (e *Entry[V], ok bool) {
	if t.IsEmpty() {
		return nil, false
	}
	return descendMax(t.branches[sideLeft]), true
}

// Next returns the entry with the next-higher address after e.
func Next[V any](e *Entry[V]) (next *Entry[V], ok bool) {
	cur := e.leafP
	for {
		if cur.atRoot() {
			return nil, false
		}
		p := cur.h.(*Entry[V])
		if cur.side == sideLeft {
			return descendMin(p.branches[sideRight]), true
		}
		cur = p.nodeP
	}
}

// Prev returns the entry with the next-lower address before e.
func Prev[V any](e *Entry[V]) (prev *Entry[V], ok bool) {
	cur := e.leafP
	for {
		if cur.atRoot() {
			return nil, false
		}
		p := cur.h.(*Entry[V])
		if cur.side == sideRight {
			return descendMax(p.branches[sideLeft]), true
		}
		cur = p.nodeP
	}
}

// Delete detaches e. It is a no-op if e is not linked.
func Delete[V any](e *Entry[V]) {
	if !e.Linked() {
		return
	}

	pLoc := e.leafP
	if pLoc.atRoot() {
		tree := pLoc.h.(*Tree[V])
		tree.branches[sideLeft] = link[V]{}
		e.leafP = parent[V]{}
		e.nodeP = parent[V]{}
		return
	}

	p := pLoc.h.(*Entry[V])
	siblingSide := pLoc.side.other()
	sibling := p.branches[siblingSide]
	grand := p.nodeP

	*grand.slot() = sibling
	setParent(sibling, grand)

	e.leafP = parent[V]{}

	// p is now structurally unused in its node role; clear it before
	// inspecting e's node role, not after. When e is its own
	// leaf-parent, p is e itself, so this clear and the read below
	// alias the same field and correctly skip the transplant.
	p.nodeP = parent[V]{}

	eNodeP := e.nodeP
	if !eNodeP.isZero() {
		p.bit = e.bit
		p.branches = e.branches
		p.nodeP = eNodeP
		*eNodeP.slot() = nodeLink(p)
		setParent(p.branches[sideLeft], parent[V]{h: p, side: sideLeft})
		setParent(p.branches[sideRight], parent[V]{h: p, side: sideRight})
	}
	e.nodeP = parent[V]{}
}
