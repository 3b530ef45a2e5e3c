package skiplist

import (
	"sort"
	"testing"
)

// FuzzInsertMatchesReferenceMap drives the index with arbitrary insertion
// sequences and cross-checks it against a plain map plus sort.
func FuzzInsertMatchesReferenceMap(f *testing.F) {
	f.Add([]byte{0, 1, 2})
	f.Add([]byte{255, 255, 7})
	f.Add([]byte("HGFEDCBA"))

	f.Fuzz(func(t *testing.T, input []byte) {
		x := New[int, int]()
		ref := make(map[int]int)

		for i, b := range input {
			key := int(b)
			inserted := x.Insert(key, i)
			_, existed := ref[key]
			if inserted == existed {
				t.Fatalf("Insert(%d) = %v, but key existed = %v", key, inserted, existed)
			}
			if !existed {
				ref[key] = i
			}
		}

		if x.Size() != len(ref) {
			t.Fatalf("size %d, reference has %d keys", x.Size(), len(ref))
		}
		if x.NumLayers() < 2 {
			t.Fatalf("layer count %d below minimum", x.NumLayers())
		}

		want := make([]int, 0, len(ref))
		for k := range ref {
			want = append(want, k)
		}
		sort.Ints(want)

		got := x.AllKeysInOrder()
		if len(got) != len(want) {
			t.Fatalf("got %d keys in order, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("key %d at position %d, want %d", got[i], i, want[i])
			}
		}

		limit := x.maxPromotions()
		for k, v := range ref {
			h, err := x.Height(k)
			if err != nil {
				t.Fatalf("height of %d: %v", k, err)
			}
			if h < 1 || h > limit {
				t.Fatalf("height %d of key %d outside [1, %d]", h, k, limit)
			}
			val, ok := x.Get(k)
			if !ok || val != v {
				t.Fatalf("Get(%d) = (%d, %v), want (%d, true)", k, val, ok, v)
			}
		}
	})
}
