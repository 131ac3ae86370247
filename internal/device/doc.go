// Package device provides the device catalogue for Hearth Core.
//
// Every device belongs to exactly one room and carries its room's id as a
// back-reference. Device ids are globally unique (enforced by the table's
// primary key), so a device can be looked up without knowing its room - an
// indexed single-row read rather than a scan across room documents.
//
// State changes go through Repository.UpdateState, which merges the patch
// inside the database with a targeted single-row UPDATE. Two concurrent
// updates to different devices in the same room therefore cannot overwrite
// each other, which a read-whole-room-then-rewrite scheme would allow.
//
// # Thread Safety
//
// SQLiteRepository is safe for concurrent use from multiple goroutines
// (SQLite WAL mode + single-writer connection pool).
package device
