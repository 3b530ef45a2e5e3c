package skiplist

import "math"

// Promotion cutoff policy. A key whose fingerprint is all ones flips heads
// forever, so every insert bounds its promotions: small indexes get a fixed
// allowance, larger ones track 3*ceil(log2(keyCount)).
const (
	cutoffThreshold = 16
	smallCutoff     = 12
	cutoffFactor    = 3
)

// maxPromotions returns the promotion bound for the current key count. The
// count already includes the key being inserted.
func (x *LayeredIndex[K, V]) maxPromotions() int {
	if x.length <= cutoffThreshold {
		return smallCutoff
	}
	return cutoffFactor * int(math.Ceil(math.Log2(float64(x.length))))
}

// Insert adds key with the given value and returns true. If the key is
// already present it returns false without mutating the index.
//
// A new key is spliced into the base layer first, then promoted upward one
// layer per heads flip of its deterministic coin, up to the maxPromotions
// bound. Whenever a promotion would land in the current top layer, a fresh
// sentinel-only layer is grown above it first so the topmost layer stays
// empty.
func (x *LayeredIndex[K, V]) Insert(key K, val V) bool {
	pred := x.seekFloor(key)
	if pred.isData() && pred.key == key {
		x.stats.DuplicateInserts++
		return false
	}

	n := newDataNode(key, val)
	pred.spliceAfter(n)
	x.length++
	x.stats.Inserts++

	limit := x.maxPromotions()
	layer := 0
	for attempt := 0; ShouldPromote(key, attempt) && attempt+1 < limit; attempt++ {
		if layer+1 == x.layers-1 {
			x.growTopLayer()
		}
		upper := newDataNode(key, val)
		n.perchAbove().spliceAfter(upper)
		upper.below = n
		n.above = upper
		n = upper
		layer++
		x.stats.Promotions++
	}
	return true
}

// growTopLayer stacks a new sentinel-only layer above the current top,
// linking the new sentinels vertically to the old ones.
func (x *LayeredIndex[K, V]) growTopLayer() {
	neg, pos := newSentinelLayer[K, V]()
	oldPos := x.top.next // the top layer holds nothing but its sentinels

	neg.below = x.top
	x.top.above = neg
	pos.below = oldPos
	oldPos.above = pos

	x.top = neg
	x.layers++
	x.stats.LayerGrowths++
	if layerGrowthHook != nil {
		layerGrowthHook(x.layers)
	}
}
