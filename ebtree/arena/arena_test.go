package arena

import "testing"

func TestInsertLookupDelete(t *testing.T) {
	entries := make([]Entry[string], 0, 8)
	tr := New(&entries)

	push := func(key uint32, v string) int32 {
		entries = append(entries, Entry[string]{Value: v})
		idx := int32(len(entries))
		Insert(tr, idx, key)
		return idx
	}

	idxs := map[uint32]int32{}
	for _, k := range []uint32{5, 2, 8, 1, 9, 3, 7} {
		idxs[k] = push(k, "v")
	}

	ge, ok := tr.LookupGE(4)
	if !ok || entries[ge-1].Key() != 5 {
		t.Fatalf("LookupGE(4) = %d, %v; want 5", ge, ok)
	}
	le, ok := tr.LookupLE(4)
	if !ok || entries[le-1].Key() != 3 {
		t.Fatalf("LookupLE(4) = %d, %v; want 3", le, ok)
	}

	var order []uint32
	for i, ok := tr.First(); ok; i, ok = tr.Next(i) {
		order = append(order, entries[i-1].Key())
	}
	want := []uint32{1, 2, 3, 5, 7, 8, 9}
	if len(order) != len(want) {
		t.Fatalf("traversal = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("traversal = %v, want %v", order, want)
		}
	}

	tr.Delete(idxs[5])
	if _, ok := tr.Lookup(5); ok {
		t.Fatalf("key 5 should be gone after Delete")
	}
	if _, ok := tr.Lookup(2); !ok {
		t.Fatalf("key 2 should still be present")
	}
}

func TestUniqueCollision(t *testing.T) {
	entries := make([]Entry[int], 0, 2)
	tr := NewUnique(&entries)

	entries = append(entries, Entry[int]{Value: 1})
	Insert(tr, 1, 10)
	entries = append(entries, Entry[int]{Value: 2})
	got := Insert(tr, 2, 10)

	if got != 1 {
		t.Fatalf("Insert of duplicate key returned index %d, want 1", got)
	}
	if entries[1].Linked() {
		t.Fatalf("rejected entry must not be linked")
	}
}
