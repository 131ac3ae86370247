// Package room provides the room catalogue for Hearth Core.
//
// Rooms are the spatial model of the dashboard: every device belongs to
// exactly one room via its room_id back-reference, and the energy table
// reports usage per room. Rooms are created by seeding or by the upsert
// API and are never deleted.
//
// The package provides a Repository interface with a SQLite implementation.
//
// # Thread Safety
//
// SQLiteRepository is safe for concurrent use from multiple goroutines
// (SQLite WAL mode + single-writer connection pool).
package room
