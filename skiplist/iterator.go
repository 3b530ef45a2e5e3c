package skiplist

// Iterator provides a forward-only view over the base layer.
type Iterator[K Key, V any] struct {
	x       *LayeredIndex[K, V]
	current *node[K, V]
	valid   bool
}

// Iterator returns a new iterator positioned before the first element.
func (x *LayeredIndex[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{x: x}
}

// Valid reports whether the iterator currently points at an element.
func (it *Iterator[K, V]) Valid() bool {
	return it != nil && it.valid
}

// Key returns the key at the iterator's current position. It should only be
// called when Valid reports true.
func (it *Iterator[K, V]) Key() K {
	var zero K
	if !it.Valid() {
		return zero
	}
	return it.current.key
}

// Value returns the value at the iterator's current position. It should
// only be called when Valid reports true.
func (it *Iterator[K, V]) Value() V {
	var zero V
	if !it.Valid() {
		return zero
	}
	return it.current.val
}

// Next advances to the next element and reports whether one exists.
func (it *Iterator[K, V]) Next() bool {
	if it == nil || it.x == nil {
		return false
	}
	if it.current == nil {
		it.current = it.x.bottom
	}
	n := it.current.next
	if !n.isData() {
		it.valid = false
		return false
	}
	it.current = n
	it.valid = true
	return true
}

// SeekGE positions the iterator at the first element whose key is greater
// than or equal to the provided key. It returns true if such an element
// exists.
func (it *Iterator[K, V]) SeekGE(key K) bool {
	if it == nil || it.x == nil {
		return false
	}
	n := it.x.seekFloor(key)
	if n.isData() && n.key == key {
		it.current = n
		it.valid = true
		return true
	}
	// The floor is strictly below key, so its successor is the first
	// element at or above it.
	if n.next.isData() {
		it.current = n.next
		it.valid = true
		return true
	}
	it.current = nil
	it.valid = false
	return false
}
