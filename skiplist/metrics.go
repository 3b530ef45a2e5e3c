package skiplist

// Stats holds cumulative counters maintained by mutating operations only.
// Queries never touch them, which keeps concurrent reads safe.
type Stats struct {
	// Inserts counts successful insertions; DuplicateInserts counts
	// insert calls rejected because the key already existed.
	Inserts          int64
	DuplicateInserts int64

	// Promotions counts layer promotions across all inserts.
	// LayerGrowths counts new top layers stacked on the structure.
	Promotions   int64
	LayerGrowths int64
}

// Stats returns a snapshot of the counters accumulated since New or the
// last Clear.
func (x *LayeredIndex[K, V]) Stats() Stats {
	return x.stats
}
