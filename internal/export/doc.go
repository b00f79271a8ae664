// Package export produces the three JSON document shapes CarryVault can
// write: a full backup, an inventory-only report, and a theft-report
// template.
//
// All transforms are pure functions over an in-memory Snapshot plus a
// generation time; persisting the document to disk is the caller's job
// (see WriteDocument). The full backup round-trips: loading its arrays
// back reproduces the original snapshot.
package export
