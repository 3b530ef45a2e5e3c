package skiplist

import "errors"

// ErrNotFound is the single error the index reports: the queried key is not
// present, or an ordered-neighbor query ran off the end of the base layer.
var ErrNotFound = errors.New("skiplist: key not found")
