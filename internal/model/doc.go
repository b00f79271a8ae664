// Package model defines the CarryVault record types and their validation
// rules.
//
// All records are flat structs with JSON tags matching the export wire
// format. Four collections carry auto-assigned numeric ids (Firearm,
// MaintenanceEvent, TrainingEvent, Permit); Settings is a singleton.
//
// Weak references: MaintenanceEvent.FirearmID and TrainingEvent.FirearmID
// point at a Firearm by id but are lookup-only. They are never validated
// against the firearms collection and dangling references are tolerated;
// the denormalized display fields (e.g. FirearmMakeModel) are the source
// of truth for rendering.
//
// Calendar dates (purchase, issue, expiration, event dates) are stored as
// "YYYY-MM-DD" strings. Creation timestamps are RFC 3339.
package model
