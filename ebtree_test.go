package ebtree

import (
	"math/rand/v2"
	"testing"
)

// workLoadN scales stress-test iteration counts down under -short.
func workLoadN() int {
	if testing.Short() {
		return 500
	}
	return 100_000
}

func TestBasicOrderingAndRange(t *testing.T) {
	root := &Root[uint32, string]{}
	keys := []uint32{5, 2, 8, 1, 9, 3, 7}
	entries := make(map[uint32]*Entry[uint32, string])
	for _, k := range keys {
		e := &Entry[uint32, string]{Value: "v"}
		Insert(root, e, k)
		entries[k] = e
	}

	if err := CheckInvariants(root); err != nil {
		t.Fatalf("invariants: %v", err)
	}

	ge, ok := LookupGE(root, 4)
	if !ok || ge.Key() != 5 {
		t.Fatalf("LookupGE(4) = %v, %v; want 5, true", ge, ok)
	}

	le, ok := LookupLE(root, 4)
	if !ok || le.Key() != 3 {
		t.Fatalf("LookupLE(4) = %v, %v; want 3, true", le, ok)
	}

	if _, ok := Lookup(root, 6); ok {
		t.Fatalf("Lookup(6) found an entry, want none")
	}

	le, ok = LookupLE(root, 10)
	if !ok || le.Key() != 9 {
		t.Fatalf("LookupLE(10) = %v, %v; want 9, true", le, ok)
	}

	ge, ok = LookupGE(root, 0)
	if !ok || ge.Key() != 1 {
		t.Fatalf("LookupGE(0) = %v, %v; want 1, true", ge, ok)
	}

	first, ok := First(root)
	if !ok || first.Key() != 1 {
		t.Fatalf("First() = %v, %v; want 1, true", first, ok)
	}
	last, ok := Last(root)
	if !ok || last.Key() != 9 {
		t.Fatalf("Last() = %v, %v; want 9, true", last, ok)
	}

	var order []uint32
	for e, ok := First(root); ok; e, ok = Next(e) {
		order = append(order, e.Key())
	}
	want := []uint32{1, 2, 3, 5, 7, 8, 9}
	if len(order) != len(want) {
		t.Fatalf("Next() traversal = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Next() traversal = %v, want %v", order, want)
		}
	}
}

func TestUniqueRootRejectsCollision(t *testing.T) {
	root := NewUniqueRoot[uint32, int]()
	a := &Entry[uint32, int]{Value: 1}
	b := &Entry[uint32, int]{Value: 2}

	Insert(root, a, 42)
	got := Insert(root, b, 42)

	if got != a {
		t.Fatalf("Insert of duplicate key on unique root returned %p, want the original entry %p", got, a)
	}
	if b.Linked() {
		t.Fatalf("rejected entry must not be linked")
	}
}

func TestDuplicateOrderingAndNextUnique(t *testing.T) {
	root := &Root[uint32, int]{}
	var run []*Entry[uint32, int]
	for i := 0; i < 4; i++ {
		e := &Entry[uint32, int]{Value: i}
		Insert(root, e, 7)
		run = append(run, e)
	}
	below := &Entry[uint32, int]{Value: -1}
	Insert(root, below, 3)
	above := &Entry[uint32, int]{Value: -2}
	Insert(root, above, 9)

	if err := CheckInvariants(root); err != nil {
		t.Fatalf("invariants: %v", err)
	}

	// The duplicate run must appear in insertion order under forward
	// traversal.
	cur := run[0]
	for i := 1; i < len(run); i++ {
		n, ok := NextDup(cur)
		if !ok || n != run[i] {
			t.Fatalf("NextDup at position %d = %v, %v; want entry %d", i-1, n, ok, i)
		}
		cur = n
	}
	if _, ok := NextDup(cur); ok {
		t.Fatalf("NextDup past the last duplicate should report none")
	}

	first := run[0]
	if _, ok := PrevDup(first); ok {
		t.Fatalf("PrevDup before the first duplicate should report none")
	}

	// NextUnique from any member of the run must land on the next
	// distinct key (9), not the next duplicate.
	for _, e := range run {
		n, ok := NextUnique(e)
		if !ok || n.Key() != 9 {
			t.Fatalf("NextUnique(%v) = %v, %v; want key 9", e.Value, n, ok)
		}
	}
	p, ok := PrevUnique(run[0])
	if !ok || p.Key() != 3 {
		t.Fatalf("PrevUnique = %v, %v; want key 3", p, ok)
	}
}

func TestDeleteTransplantsNodeRole(t *testing.T) {
	root := &Root[uint32, int]{}
	var entries []*Entry[uint32, int]
	keys := []uint32{10, 20, 30, 40, 50, 60, 70, 80}
	for _, k := range keys {
		e := &Entry[uint32, int]{Value: int(k)}
		Insert(root, e, k)
		entries = append(entries, e)
	}
	if err := CheckInvariants(root); err != nil {
		t.Fatalf("invariants before delete: %v", err)
	}

	// delete entries in an order likely to hit the node-role transplant
	// path (an internal entry that is also somebody's ancestor).
	order := []int{3, 0, 5, 2, 7, 1, 4, 6}
	remaining := map[uint32]bool{}
	for _, k := range keys {
		remaining[k] = true
	}
	for _, idx := range order {
		e := entries[idx]
		Delete(e)
		delete(remaining, e.Key())
		if e.Linked() {
			t.Fatalf("entry %d still reports Linked() after Delete", e.Key())
		}
		if err := CheckInvariants(root); err != nil {
			t.Fatalf("invariants after deleting %d: %v", e.Key(), err)
		}
		var got []uint32
		for c, ok := First(root); ok; c, ok = Next(c) {
			got = append(got, c.Key())
		}
		if len(got) != len(remaining) {
			t.Fatalf("after deleting %d: traversal has %d entries, want %d", e.Key(), len(got), len(remaining))
		}
		for _, k := range got {
			if !remaining[k] {
				t.Fatalf("traversal produced unexpected key %d after deletions", k)
			}
		}
	}
	if !root.IsEmpty() {
		t.Fatalf("root should be empty after deleting every entry")
	}
}

func TestFirstLeafSpecialCase(t *testing.T) {
	root := &Root[uint32, string]{}
	e := &Entry[uint32, string]{Value: "only"}
	Insert(root, e, 99)

	if got, ok := First(root); !ok || got != e {
		t.Fatalf("First() on a single-entry tree = %v, %v; want the sole entry", got, ok)
	}
	if _, ok := Next(e); ok {
		t.Fatalf("Next() on the sole entry should report none")
	}
	if _, ok := Prev(e); ok {
		t.Fatalf("Prev() on the sole entry should report none")
	}

	Delete(e)
	if !root.IsEmpty() {
		t.Fatalf("root should be empty after deleting its only entry")
	}
}

func TestStressInsertLookupDelete(t *testing.T) {
	n := workLoadN()
	root := NewUniqueRoot[uint64, int]()
	prng := rand.New(rand.NewPCG(1, 2))

	keys := make([]uint64, 0, n)
	seen := map[uint64]bool{}
	entries := make(map[uint64]*Entry[uint64, int], n)
	for len(keys) < n {
		k := prng.Uint64() % uint64(n*4)
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
		e := &Entry[uint64, int]{Value: int(k)}
		Insert(root, e, k)
		entries[k] = e
	}

	for _, k := range keys {
		got, ok := Lookup(root, k)
		if !ok || got.Key() != k {
			t.Fatalf("Lookup(%d) = %v, %v; want it present", k, got, ok)
		}
	}

	prng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for i, k := range keys {
		if i%2 == 0 {
			Delete(entries[k])
			delete(seen, k)
		}
	}

	for k := range entries {
		_, present := seen[k]
		got, ok := Lookup(root, k)
		if present != ok {
			t.Fatalf("Lookup(%d) ok = %v, want %v", k, ok, present)
		}
		if ok && got.Key() != k {
			t.Fatalf("Lookup(%d) returned wrong key %d", k, got.Key())
		}
	}
}

func TestSignedBias(t *testing.T) {
	vals := []int32{-1, 0, 1, -2147483648, 2147483647}
	for i := range vals {
		for j := range vals {
			a, b := vals[i], vals[j]
			want := a < b
			got := BiasS32(a) < BiasS32(b)
			if got != want {
				t.Fatalf("BiasS32 ordering mismatch for %d < %d: got %v", a, b, got)
			}
			if UnbiasS32(BiasS32(a)) != a {
				t.Fatalf("UnbiasS32(BiasS32(%d)) = %d", a, UnbiasS32(BiasS32(a)))
			}
		}
	}

	s64vals := []int64{-1, 0, 1, -9223372036854775808, 9223372036854775807}
	for i := range s64vals {
		for j := range s64vals {
			a, b := s64vals[i], s64vals[j]
			want := a < b
			got := BiasS64(a) < BiasS64(b)
			if got != want {
				t.Fatalf("BiasS64 ordering mismatch for %d < %d: got %v", a, b, got)
			}
			if UnbiasS64(BiasS64(a)) != a {
				t.Fatalf("UnbiasS64(BiasS64(%d)) = %d", a, UnbiasS64(BiasS64(a)))
			}
		}
	}
}
