// Package app is the application facade: a single session object that owns
// the in-memory snapshot, coordinates the store, the alert engine, and the
// export formatter, and keeps derived state (dashboard counts, alert list)
// consistent after every mutation.
//
// There is no global mutable state; callers create a Session and invoke
// explicit methods on it. When the store cannot be opened the session
// degrades to memory-only operation instead of failing - the one condition
// that is logged rather than surfaced.
package app
