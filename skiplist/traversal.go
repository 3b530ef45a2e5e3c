package skiplist

// seekFloor returns the base-layer node holding the largest key <= key, or
// the base layer's negative-infinity sentinel when every key is greater. It
// is the single traversal primitive behind every query and insert: descend
// from the top layer, advancing while the next real node does not exceed
// key, dropping a layer whenever the horizontal scan stops.
//
// The caller decides hit or miss by comparing the returned node's key; the
// traversal itself only produces a position.
func (x *LayeredIndex[K, V]) seekFloor(key K) *node[K, V] {
	n := x.top
	for {
		for n.next.isData() && n.next.key <= key {
			n = n.next
		}
		if n.below == nil {
			return n
		}
		n = n.below
	}
}

// perchAbove walks left from n along its layer to the nearest node that
// also occupies the layer above, and returns that upper occurrence. The
// negative-infinity sentinel reaches every layer, so the walk terminates at
// the layer boundary at the latest.
func (n *node[K, V]) perchAbove() *node[K, V] {
	p := n
	for p.above == nil {
		p = p.prev
	}
	return p.above
}
