package strtree

import "bytes"

// Insert attaches e to t under key. e must not already be linked. key is
// not copied; the caller must not mutate it while e remains linked.
func Insert[V any](t *Tree[V], e *Entry[V], key []byte) *Entry[V] {
	e.key = key

	if t.IsEmpty() {
		e.leafP = parent[V]{h: t, side: sideLeft}
		t.branches[sideLeft] = leafLink(e)
		return e
	}

	p := descend(t, key)
	if bytes.Equal(p.key, key) {
		if t.unique {
			return p
		}
		if p.isDup() {
			dupInsert(p, e)
			return e
		}
		spliceAbove(p.leafP, e, 0, 0, -1, sideRight)
		return e
	}

	byteIdx, mask, _ := criticalBit(key, p.key)
	rank := rankOf(byteIdx, mask)
	loc := findSplice(t, key, rank)
	spliceAbove(loc, e, byteIdx, mask, rank, direction(key, byteIdx, mask))
	return e
}

// Lookup returns an entry holding key, or ok == false.
func Lookup[V any](t *Tree[V], key []byte) (e *Entry[V], ok bool) {
	if t.IsEmpty() {
		return nil, false
	}
	p := descend(t, key)
	if !bytes.Equal(p.key, key) {
		return nil, false
	}
	return p, true
}

// LookupWithLen looks up only the first n bytes of key, for callers
// whose buffer is longer than the logical string.
func LookupWithLen[V any](t *Tree[V], key []byte, n int) (e *Entry[V], ok bool) {
	if n < len(key) {
		key = key[:n]
	}
	return Lookup(t, key)
}

// LookupGE returns the smallest entry with key >= key.
func LookupGE[V any](t *Tree[V], key []byte) (e *Entry[V], ok bool) {
	if t.IsEmpty() {
		return nil, false
	}
	l := t.branches[sideLeft]
	var lastLeft *Entry[V]
	for l.kind == kindNode {
		n := l.target
		if n.rank < 0 {
			break
		}
		if bi, m, eq := criticalBit(key, n.key); !eq && rankOf(bi, m) > n.rank {
			if compareKeys(key, n.key) < 0 {
				return descendMin(l), true
			}
			break
		}
		if direction(key, n.byteIdx, n.mask) == sideLeft {
			lastLeft = n
			l = n.branches[sideLeft]
		} else {
			l = n.branches[sideRight]
		}
	}
	leaf := l.target
	if compareKeys(leaf.key, key) >= 0 {
		return leaf, true
	}
	if lastLeft == nil {
		return nil, false
	}
	return descendMin(lastLeft.branches[sideRight]), true
}

// LookupLE returns the largest entry with key <= key.
func LookupLE[V any](t *Tree[V], key []byte) (e *Entry[V], ok bool) {
	if t.IsEmpty() {
		return nil, false
	}
	l := t.branches[sideLeft]
	var lastRight *Entry[V]
	for l.kind == kindNode {
		n := l.target
		if n.rank < 0 {
			break
		}
		if bi, m, eq := criticalBit(key, n.key); !eq && rankOf(bi, m) > n.rank {
			if compareKeys(key, n.key) > 0 {
				return descendMax(l), true
			}
			break
		}
		if direction(key, n.byteIdx, n.mask) == sideRight {
			lastRight = n
			l = n.branches[sideRight]
		} else {
			l = n.branches[sideLeft]
		}
	}
	leaf := l.target
	if compareKeys(leaf.key, key) <= 0 {
		return leaf, true
	}
	if lastRight == nil {
		return nil, false
	}
	return descendMax(lastRight.branches[sideLeft]), true
}

// First returns the smallest-keyed entry.
func First[V any](t *Tree[V]) (e *Entry[V], ok bool) {
	if t.IsEmpty() {
		return nil, false
	}
	return descendMin(t.branches[sideLeft]), true
}

// Last returns the largest-keyed entry.
func Last[V any](t *Tree[V]) (e *Entry[V], ok bool) {
	if t.IsEmpty() {
		return nil, false
	}
	return descendMax(t.branches[sideLeft]), true
}

// Next returns the entry immediately after e.
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

// Prev returns the entry immediately before e.
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

// Delete detaches e from its tree. It is a no-op if e is not linked.
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
		p.byteIdx = e.byteIdx
		p.mask = e.mask
		p.rank = e.rank
		p.branches = e.branches
		p.nodeP = eNodeP
		*eNodeP.slot() = nodeLink(p)
		setParent(p.branches[sideLeft], parent[V]{h: p, side: sideLeft})
		setParent(p.branches[sideRight], parent[V]{h: p, side: sideRight})
	}
	e.nodeP = parent[V]{}
}
