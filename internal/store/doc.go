// Package store provides SQLite-backed durable storage for CarryVault
// records.
//
// Five logical collections are persisted:
//   - firearms, maintenance_events, training_events, permits: id-keyed
//     tables with auto-assigned numeric ids
//   - settings: a key-keyed table holding the single settings row
//
// plus an append-only audit_log recording every mutation.
//
// Record ids come from INTEGER PRIMARY KEY AUTOINCREMENT, so an id is
// unique within its collection for the lifetime of the store and is never
// reused after a delete.
//
// The firearm_id columns on maintenance_events and training_events are
// weak references: no foreign key constraint is declared and dangling
// values are tolerated. The denormalized display columns carry the
// authoritative display data.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
package store
