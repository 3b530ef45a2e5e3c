// Package skiplist implements a deterministic layered skip list: an ordered
// map whose layer structure is derived from each key's bit pattern rather
// than a random number generator, so identical insertion sequences always
// build identical shapes. Beyond the usual map operations it supports
// ordered neighbor queries and per-key structural introspection.
package skiplist

// LayeredIndex is an ordered map backed by a deterministic skip list. Each
// layer is a doubly-linked sequence bounded by a negative- and a
// positive-infinity sentinel; a key occupying layer L also occupies every
// layer below it, linked vertically. The topmost layer never holds a real
// key.
//
// The structure is not safe for concurrent mutation. Reads are safe
// alongside other reads; callers must serialize Insert and Clear.
type LayeredIndex[K Key, V any] struct {
	// top and bottom are the negative-infinity sentinels of the topmost
	// (always empty) layer and of the base layer, which holds every key.
	top    *node[K, V]
	bottom *node[K, V]

	layers int
	length int
	stats  Stats
}

// New returns an empty index with two sentinel-only layers: the base layer
// and the empty top layer above it.
func New[K Key, V any]() *LayeredIndex[K, V] {
	x := &LayeredIndex[K, V]{}
	x.reset()
	return x
}

func (x *LayeredIndex[K, V]) reset() {
	bottomNeg, bottomPos := newSentinelLayer[K, V]()
	topNeg, topPos := newSentinelLayer[K, V]()
	topNeg.below = bottomNeg
	bottomNeg.above = topNeg
	topPos.below = bottomPos
	bottomPos.above = topPos

	x.top = topNeg
	x.bottom = bottomNeg
	x.layers = 2
	x.length = 0
	x.stats = Stats{}
}

// Size returns the number of distinct keys in the index.
func (x *LayeredIndex[K, V]) Size() int { return x.length }

// IsEmpty reports whether the index holds no keys.
func (x *LayeredIndex[K, V]) IsEmpty() bool { return x.length == 0 }

// NumLayers returns the current layer count, including the empty top layer.
// An empty index reports 2.
func (x *LayeredIndex[K, V]) NumLayers() int { return x.layers }

// Clear drops every entry, resetting the index to its two-layer empty
// state. The old node graph becomes unreachable as a whole.
func (x *LayeredIndex[K, V]) Clear() {
	x.reset()
}

// Find returns a handle to the value stored under key. Mutations through
// the returned pointer are visible to subsequent lookups. It returns
// ErrNotFound if the key is absent.
func (x *LayeredIndex[K, V]) Find(key K) (*V, error) {
	n := x.seekFloor(key)
	if !n.isData() || n.key != key {
		return nil, ErrNotFound
	}
	return &n.val, nil
}

// Get returns the value for key. The boolean is true if the key exists.
func (x *LayeredIndex[K, V]) Get(key K) (V, bool) {
	v, err := x.Find(key)
	if err != nil {
		var zero V
		return zero, false
	}
	return *v, true
}

// Contains reports whether key exists in the index.
func (x *LayeredIndex[K, V]) Contains(key K) bool {
	_, ok := x.Get(key)
	return ok
}

// Height returns the number of layers key occupies, counting 1 for a key
// present only in the base layer. It returns ErrNotFound if key is absent.
func (x *LayeredIndex[K, V]) Height(key K) (int, error) {
	n := x.seekFloor(key)
	if !n.isData() || n.key != key {
		return 0, ErrNotFound
	}
	h := 1
	for upper := n.above; upper != nil; upper = upper.above {
		h++
	}
	return h, nil
}

// NextKey returns the smallest key strictly greater than key. It returns
// ErrNotFound if key is absent or is the largest key in the index.
func (x *LayeredIndex[K, V]) NextKey(key K) (K, error) {
	var zero K
	n := x.seekFloor(key)
	if !n.isData() || n.key != key {
		return zero, ErrNotFound
	}
	if !n.next.isData() {
		return zero, ErrNotFound
	}
	return n.next.key, nil
}

// PreviousKey returns the largest key strictly smaller than key. It returns
// ErrNotFound if key is absent or is the smallest key in the index.
func (x *LayeredIndex[K, V]) PreviousKey(key K) (K, error) {
	var zero K
	n := x.seekFloor(key)
	if !n.isData() || n.key != key {
		return zero, ErrNotFound
	}
	if !n.prev.isData() {
		return zero, ErrNotFound
	}
	return n.prev.key, nil
}

// IsSmallestKey reports whether key is the smallest key present. It returns
// ErrNotFound if key is absent.
func (x *LayeredIndex[K, V]) IsSmallestKey(key K) (bool, error) {
	n := x.seekFloor(key)
	if !n.isData() || n.key != key {
		return false, ErrNotFound
	}
	return n.prev == x.bottom, nil
}

// IsLargestKey reports whether key is the largest key present. It returns
// ErrNotFound if key is absent.
func (x *LayeredIndex[K, V]) IsLargestKey(key K) (bool, error) {
	n := x.seekFloor(key)
	if !n.isData() || n.key != key {
		return false, ErrNotFound
	}
	return !n.next.isData(), nil
}

// AllKeysInOrder returns every key in ascending order by walking the base
// layer. The slice is a fresh snapshot on each call.
func (x *LayeredIndex[K, V]) AllKeysInOrder() []K {
	keys := make([]K, 0, x.length)
	for n := x.bottom.next; n.isData(); n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}
