package store

// DeletePolicy decides what happens to the cached list when a server-side
// delete fails.
type DeletePolicy int

const (
	// DeleteRollback removes the record locally only after the server
	// confirms the delete; on failure the cache is left untouched and the
	// error is returned. This is the default.
	DeleteRollback DeletePolicy = iota
	// DeleteOptimistic removes the record locally regardless of the server
	// outcome; failures are logged, not returned.
	DeleteOptimistic
)
