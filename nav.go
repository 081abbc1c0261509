package ebtree

// First returns the smallest-keyed entry in root, or ok == false if root
// is empty.
func First[U Unsigned, V any](root *Root[U, V]) (e *Entry[U, V], ok bool) {
	if root.IsEmpty() {
		return nil, false
	}
	return descendMin(root.branches[sideLeft]), true
}

// Last returns the largest-keyed entry in root, or ok == false if root
// is empty.
func Last[U Unsigned, V any](root *Root[U, V]) (e *Entry[U, V], ok bool) {
	if root.IsEmpty() {
		return nil, false
	}
	return descendMax(root.branches[sideLeft]), true
}

// Next returns the entry immediately after e in key order, or
// ok == false if e is the last entry.
func Next[U Unsigned, V any](e *Entry[U, V]) (next *Entry[U, V], ok bool) {
	cur := e.leafP
	for {
		if cur.atRoot() {
			return nil, false
		}
		parent := cur.holder.(*Entry[U, V])
		if cur.side == sideLeft {
			return descendMin(parent.branches[sideRight]), true
		}
		cur = parent.nodeP
	}
}

// Prev returns the entry immediately before e in key order, or
// ok == false if e is the first entry.
func Prev[U Unsigned, V any](e *Entry[U, V]) (prev *Entry[U, V], ok bool) {
	cur := e.leafP
	for {
		if cur.atRoot() {
			return nil, false
		}
		parent := cur.holder.(*Entry[U, V])
		if cur.side == sideRight {
			return descendMax(parent.branches[sideLeft]), true
		}
		cur = parent.nodeP
	}
}

// NextUnique returns the first entry after e whose key differs from
// e's, skipping over the remainder of any duplicate run e belongs to.
func NextUnique[U Unsigned, V any](e *Entry[U, V]) (next *Entry[U, V], ok bool) {
	cur := e.leafP
	for {
		if cur.atRoot() {
			return nil, false
		}
		parent := cur.holder.(*Entry[U, V])
		if cur.side == sideLeft && parent.bit >= 0 {
			return descendMin(parent.branches[sideRight]), true
		}
		cur = parent.nodeP
	}
}

// PrevUnique returns the last entry before the start of e's duplicate
// run, i.e. the last entry with a key strictly less than e's.
func PrevUnique[U Unsigned, V any](e *Entry[U, V]) (prev *Entry[U, V], ok bool) {
	cur := e.leafP
	for {
		if cur.atRoot() {
			return nil, false
		}
		parent := cur.holder.(*Entry[U, V])
		if cur.side == sideRight && parent.bit >= 0 {
			return descendMax(parent.branches[sideLeft]), true
		}
		cur = parent.nodeP
	}
}

// NextDup returns the next entry sharing e's key, or ok == false if e is
// the last member of its duplicate run (or has no duplicates at all).
func NextDup[U Unsigned, V any](e *Entry[U, V]) (next *Entry[U, V], ok bool) {
	n, ok := Next(e)
	if !ok || n.key != e.key {
		return nil, false
	}
	return n, true
}

// PrevDup returns the previous entry sharing e's key, or ok == false if
// e is the first member of its duplicate run.
func PrevDup[U Unsigned, V any](e *Entry[U, V]) (prev *Entry[U, V], ok bool) {
	p, ok := Prev(e)
	if !ok || p.key != e.key {
		return nil, false
	}
	return p, true
}
