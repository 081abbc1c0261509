package ebtree

// Delete detaches e from whatever tree it is linked into. It is a no-op
// if e is not currently linked. Deletion is O(1) amortized: it never
// walks the tree, only the handful of link fields touched by the
// node-role transplant below.
func Delete[U Unsigned, V any](e *Entry[U, V]) {
	if !e.Linked() {
		return
	}

	pLoc := e.leafP
	if pLoc.atRoot() {
		root := pLoc.holder.(*Root[U, V])
		root.branches[sideLeft] = branchLink[U, V]{}
		e.leafP = parentLink[U, V]{}
		e.nodeP = parentLink[U, V]{}
		return
	}

	parent := pLoc.holder.(*Entry[U, V])
	siblingSide := pLoc.side.other()
	sibling := parent.branches[siblingSide]
	grand := parent.nodeP

	*grand.slot() = sibling
	setParent(sibling, grand)

	e.leafP = parentLink[U, V]{}

	// parent is now structurally unused in its node role; clear it
	// immediately, before inspecting e's node role, not after. When e
	// is its own leaf-parent - true of every entry still holding the
	// node role it was spliced in with - parent is e itself, so this
	// clear and the read below alias the same field: clearing here is
	// what correctly signals that e has no separate node role to
	// transplant. Checking e.nodeP first and clearing it last, as the
	// order might otherwise suggest, would instead re-link e right
	// back into the position its sibling just vacated it from.
	parent.nodeP = parentLink[U, V]{}

	eNodeP := e.nodeP
	if !eNodeP.isZero() {
		// e also served as an internal node elsewhere, distinct from
		// the node role parent just gave up above. The entry just
		// freed (parent) takes over that node role unchanged.
		parent.bit = e.bit
		parent.branches = e.branches
		parent.nodeP = eNodeP
		*eNodeP.slot() = nodeLink(parent)
		setParent(parent.branches[sideLeft], parentLink[U, V]{holder: parent, side: sideLeft})
		setParent(parent.branches[sideRight], parentLink[U, V]{holder: parent, side: sideRight})
	}
	e.nodeP = parentLink[U, V]{}
}
