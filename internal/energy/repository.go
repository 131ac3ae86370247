package energy

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository defines persistence for per-room energy usage records.
type Repository interface {
	// List retrieves all energy records in room order.
	List(ctx context.Context) ([]Usage, error)

	// Insert stores a new energy record. Only seeding writes energy data;
	// the API exposes no update capability.
	Insert(ctx context.Context, usage Usage) error
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed energy repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// List retrieves all energy records.
func (r *SQLiteRepository) List(ctx context.Context) ([]Usage, error) {
	const query = `SELECT room_id, room_name, daily_usage, weekly_usage
		FROM energy_usage ORDER BY rowid`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying energy usage: %w", err)
	}
	defer rows.Close()

	var records []Usage
	for rows.Next() {
		var u Usage
		if err := rows.Scan(&u.RoomID, &u.RoomName, &u.DailyUsage, &u.WeeklyUsage); err != nil {
			return nil, fmt.Errorf("scanning energy row: %w", err)
		}
		records = append(records, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating energy rows: %w", err)
	}
	return records, nil
}

// Insert stores a new energy record.
func (r *SQLiteRepository) Insert(ctx context.Context, usage Usage) error {
	const query = `INSERT INTO energy_usage (room_id, room_name, daily_usage, weekly_usage)
		VALUES (?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query,
		usage.RoomID, usage.RoomName, usage.DailyUsage, usage.WeeklyUsage); err != nil {
		return fmt.Errorf("inserting energy usage for %s: %w", usage.RoomID, err)
	}
	return nil
}
