package store

// Update values may carry sentinels that the backend resolves at write time.
// Services use these instead of importing the database SDK, which keeps the
// write path mockable in tests.

type incrementValue struct {
	By int64
}

// Increment returns an update value that atomically adds by to the field.
func Increment(by int64) interface{} {
	return incrementValue{By: by}
}

type serverTimestampValue struct{}

// ServerTimestamp is an update value resolved to the store's own clock.
var ServerTimestamp interface{} = serverTimestampValue{}

// IncrementBy reports whether v is an increment sentinel and by how much.
// Used by fake stores in tests to apply updates the way the backend would.
func IncrementBy(v interface{}) (int64, bool) {
	inc, ok := v.(incrementValue)
	return inc.By, ok
}

// IsServerTimestamp reports whether v is the server-timestamp sentinel.
func IsServerTimestamp(v interface{}) bool {
	_, ok := v.(serverTimestampValue)
	return ok
}
