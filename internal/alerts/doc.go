// Package alerts computes permit-expiry advisories.
//
// The engine is pure: it takes a snapshot of the permit collection and a
// reference "now" and produces alerts without touching storage. Two entry
// points exist - ForPermits (the alert list) and ExpiringSoonCount (the
// dashboard badge) - and they share one threshold helper so a permit is
// counted iff it would also produce an alert.
package alerts
