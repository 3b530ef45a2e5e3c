package skiplist

// Test hooks (kept separate so instrumentation doesn't clutter logic).
var layerGrowthHook func(layers int)
