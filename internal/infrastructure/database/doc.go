// Package database provides SQLite connection management and schema
// migrations for Hearth Core.
//
// The DB type wraps database/sql with:
//   - WAL mode and busy-timeout pragmas tuned for a single-writer workload
//   - Directory creation and restrictive file permissions
//   - Embedded SQL migrations applied at startup (see the migrations package)
//   - Health checks and pool statistics for the metrics endpoint
//
// Usage:
//
//	db, err := database.Open(database.Config{Path: "./data/hearth.db", WALMode: true, BusyTimeout: 5})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//	if err := db.Migrate(ctx); err != nil {
//	    return err
//	}
package database
