package skiplist

// nodeKind distinguishes real entries from the per-layer boundary sentinels.
// Sentinels never hold a key; the negative-infinity sentinel orders before
// every key and the positive-infinity sentinel after every key.
type nodeKind uint8

const (
	kindData nodeKind = iota
	kindNegInf
	kindPosInf
)

// node is one occurrence of a key in one layer. All four links are
// non-owning and purely navigational: next/prev connect horizontal
// neighbors within a layer, above/below connect the same key's occurrences
// in adjacent layers.
type node[K Key, V any] struct {
	key  K
	val  V
	kind nodeKind

	next  *node[K, V]
	prev  *node[K, V]
	above *node[K, V]
	below *node[K, V]
}

func newDataNode[K Key, V any](key K, val V) *node[K, V] {
	return &node[K, V]{key: key, val: val}
}

// newSentinelLayer builds an empty layer: a negative-infinity sentinel
// linked directly to a positive-infinity sentinel.
func newSentinelLayer[K Key, V any]() (neg, pos *node[K, V]) {
	neg = &node[K, V]{kind: kindNegInf}
	pos = &node[K, V]{kind: kindPosInf}
	neg.next = pos
	pos.prev = neg
	return neg, pos
}

// spliceAfter links n into pred's layer immediately after pred.
func (pred *node[K, V]) spliceAfter(n *node[K, V]) {
	n.prev = pred
	n.next = pred.next
	pred.next.prev = n
	pred.next = n
}

func (n *node[K, V]) isData() bool {
	return n.kind == kindData
}
