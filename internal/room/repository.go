package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Repository defines the interface for room persistence operations.
type Repository interface {
	// List retrieves all rooms in storage order.
	List(ctx context.Context) ([]Room, error)

	// Get retrieves a room by id.
	// Returns ErrRoomNotFound if the room does not exist.
	Get(ctx context.Context, id string) (*Room, error)

	// Create inserts a new room at the end of the storage order.
	// Returns ErrRoomExists if a room with the same id already exists.
	Create(ctx context.Context, room *Room) error

	// Update modifies an existing room.
	// Returns ErrRoomNotFound if the room does not exist.
	Update(ctx context.Context, room *Room) error

	// Count returns the number of rooms. Used by seeding and metrics.
	Count(ctx context.Context) (int, error)
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed room repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// List retrieves all rooms ordered by sort_order then id.
// "Storage order" means insertion order: Create appends to the sequence.
func (r *SQLiteRepository) List(ctx context.Context) ([]Room, error) {
	const query = `SELECT id, name, color, temperature, sort_order, created_at, updated_at
		FROM rooms ORDER BY sort_order, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying rooms: %w", err)
	}
	defer rows.Close()

	var rooms []Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning room row: %w", err)
		}
		rooms = append(rooms, *rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating room rows: %w", err)
	}
	return rooms, nil
}

// Get retrieves a room by id.
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*Room, error) {
	const query = `SELECT id, name, color, temperature, sort_order, created_at, updated_at
		FROM rooms WHERE id = ?`

	rm, err := scanRoom(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("querying room %s: %w", id, err)
	}
	return rm, nil
}

// Create inserts a new room. Its sort_order is assigned past the current
// maximum so listings keep insertion order.
func (r *SQLiteRepository) Create(ctx context.Context, room *Room) error {
	const query = `INSERT INTO rooms (id, name, color, temperature, sort_order)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(sort_order) + 1, 0) FROM rooms))`

	_, err := r.db.ExecContext(ctx, query, room.ID, room.Name, room.Color, room.Temperature)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrRoomExists
		}
		return fmt.Errorf("inserting room %s: %w", room.ID, err)
	}
	return nil
}

// Update modifies an existing room's mutable fields.
func (r *SQLiteRepository) Update(ctx context.Context, room *Room) error {
	const query = `UPDATE rooms
		SET name = ?, color = ?, temperature = ?,
			updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, room.Name, room.Color, room.Temperature, room.ID)
	if err != nil {
		return fmt.Errorf("updating room %s: %w", room.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// Count returns the number of rooms.
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting rooms: %w", err)
	}
	return count, nil
}

// rowScanner abstracts sql.Row and sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRoom scans a room from a row.
func scanRoom(scanner rowScanner) (*Room, error) {
	var rm Room
	var createdAt, updatedAt string

	if err := scanner.Scan(&rm.ID, &rm.Name, &rm.Color, &rm.Temperature,
		&rm.SortOrder, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	rm.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // Format is controlled
	rm.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt) //nolint:errcheck // Format is controlled
	return &rm, nil
}

// isUniqueConstraintError reports whether the error is a SQLite UNIQUE
// constraint violation.
func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
