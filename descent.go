package ebtree

// descend walks from the root down to the entry where an ordinary
// bit-routed descent for key stops: either the terminal leaf along key's
// path, or the top of a duplicate subtree key collides with (recognized
// by bit < 0). Descent never proceeds inside a duplicate subtree - the
// dup-subtree-root entry's own key is always a valid representative of
// every key stored beneath it.
//
// descend must only be called on a non-empty tree.
func descend[U Unsigned, V any](root *Root[U, V], key U) *Entry[U, V] {
	link := root.branches[sideLeft]
	for link.kind == branchNode {
		n := link.target
		if n.bit < 0 {
			return n
		}
		link = n.branches[bitAt(key, n.bit)]
	}
	return link.target
}

// findSplice walks from the root down to the branch slot where a new
// internal node splitting on bit should be spliced in: the highest
// position along key's descent path whose occupant either isn't a node,
// or has already split on a bit at or below the one being inserted.
func findSplice[U Unsigned, V any](root *Root[U, V], key U, bit int32) parentLink[U, V] {
	loc := parentLink[U, V]{holder: root, side: sideLeft}
	for {
		l := loc.slot()
		if l.kind != branchNode || l.target.bit <= bit {
			return loc
		}
		n := l.target
		loc = parentLink[U, V]{holder: n, side: bitAt(key, n.bit)}
	}
}

// setParent repatches the appropriate upward link (leafP or nodeP,
// whichever the tagged link addresses) on whatever link currently
// points at.
func setParent[U Unsigned, V any](link branchLink[U, V], p parentLink[U, V]) {
	if link.kind == branchLeaf {
		link.target.leafP = p
	} else {
		link.target.nodeP = p
	}
}

// spliceAbove installs newEntry as a fresh internal node at loc, with
// split value bit, newEntry occupying newSide and whatever previously
// hung at loc occupying the other side. newEntry always ends up holding
// itself as its own leaf-role child at newSide - the standard ebtree
// "the newly inserted entry is both the split node and one of its own
// two children" construction.
func spliceAbove[U Unsigned, V any](loc parentLink[U, V], newEntry *Entry[U, V], bit int32, newSide side) {
	old := *loc.slot()
	oldSide := newSide.other()

	newEntry.bit = bit
	newEntry.branches[oldSide] = old
	newEntry.branches[newSide] = leafLink(newEntry)

	setParent(old, parentLink[U, V]{holder: newEntry, side: oldSide})
	newEntry.leafP = parentLink[U, V]{holder: newEntry, side: newSide}
	newEntry.nodeP = loc

	*loc.slot() = nodeLink(newEntry)
}

// dupInsert walks the right-skewed chain below a duplicate subtree's top
// entry to find where newEntry extends it: either a leaf is reached
// (the chain's current end), or a "hole" is found (the next
// node's bit isn't exactly one less than the current one, meaning an
// earlier deletion left a gap newEntry can drop into instead of
// extending the chain further).
func dupInsert[U Unsigned, V any](top *Entry[U, V], newEntry *Entry[U, V]) {
	cur := top
	for {
		right := cur.branches[sideRight]
		if right.kind == branchLeaf {
			break
		}
		next := right.target
		if next.bit != cur.bit-1 {
			break
		}
		cur = next
	}
	loc := parentLink[U, V]{holder: cur, side: sideRight}
	spliceAbove(loc, newEntry, cur.bit-1, sideRight)
}

func descendMin[U Unsigned, V any](l branchLink[U, V]) *Entry[U, V] {
	for l.kind == branchNode {
		l = l.target.branches[sideLeft]
	}
	return l.target
}

func descendMax[U Unsigned, V any](l branchLink[U, V]) *Entry[U, V] {
	for l.kind == branchNode {
		l = l.target.branches[sideRight]
	}
	return l.target
}
