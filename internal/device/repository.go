package device

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Repository defines the interface for device persistence operations.
// This abstraction allows for different implementations (SQLite, mock, etc.)
// and enables unit testing without database dependencies.
type Repository interface {
	// GetByID retrieves a device by its globally unique identifier.
	// Returns ErrDeviceNotFound if the device does not exist.
	GetByID(ctx context.Context, id string) (*Device, error)

	// List retrieves all devices ordered by room and in-room position.
	List(ctx context.Context) ([]Device, error)

	// ListByRoom retrieves all devices in a specific room, in room order.
	ListByRoom(ctx context.Context, roomID string) ([]Device, error)

	// UpdateState applies a partial state update as a single targeted row
	// write and returns the resulting device. Fields absent from the patch
	// are untouched; an empty patch is a successful no-op. Never creates a
	// device. Returns ErrDeviceNotFound if the device does not exist.
	UpdateState(ctx context.Context, id string, patch StatePatch) (*Device, error)

	// ReplaceForRoom atomically replaces the device set of a room. Each
	// device's RoomID is forced to roomID and its position follows slice
	// order. Returns ErrDeviceExists if an incoming id is already claimed
	// by a device in another room.
	ReplaceForRoom(ctx context.Context, roomID string, devices []Device) error

	// Count returns the number of devices. Used by metrics.
	Count(ctx context.Context) (int, error)
}

// SQLiteRepository implements Repository using SQLite.
//
// Device updates are single-row UPDATE statements keyed by device id, never
// read-modify-write of a parent aggregate, so concurrent updates to different
// devices in the same room cannot discard each other's changes.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed device repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// GetByID retrieves a device by its unique identifier.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*Device, error) {
	const query = `SELECT id, room_id, name, type, state, value, sort_order, created_at, updated_at
		FROM devices WHERE id = ?`

	dev, err := scanDevice(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}
		return nil, fmt.Errorf("querying device %s: %w", id, err)
	}
	return dev, nil
}

// List retrieves all devices grouped by room in stable order.
func (r *SQLiteRepository) List(ctx context.Context) ([]Device, error) {
	const query = `SELECT id, room_id, name, type, state, value, sort_order, created_at, updated_at
		FROM devices ORDER BY room_id, sort_order, id`
	return r.queryDevices(ctx, query)
}

// ListByRoom retrieves all devices in a specific room.
func (r *SQLiteRepository) ListByRoom(ctx context.Context, roomID string) ([]Device, error) {
	const query = `SELECT id, room_id, name, type, state, value, sort_order, created_at, updated_at
		FROM devices WHERE room_id = ? ORDER BY sort_order, id`
	return r.queryDevices(ctx, query, roomID)
}

// UpdateState applies a partial state update in a single targeted write.
//
// COALESCE keeps untouched columns at their stored value when the patch
// field is nil, so the merge happens inside the database rather than as a
// read-then-overwrite of the whole row.
func (r *SQLiteRepository) UpdateState(ctx context.Context, id string, patch StatePatch) (*Device, error) {
	const query = `UPDATE devices
		SET state = COALESCE(?, state),
			value = COALESCE(?, value),
			updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, patch.State, patch.Value, id)
	if err != nil {
		return nil, fmt.Errorf("updating device %s state: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return nil, ErrDeviceNotFound
	}

	return r.GetByID(ctx, id)
}

// ReplaceForRoom atomically replaces the device set of a room.
func (r *SQLiteRepository) ReplaceForRoom(ctx context.Context, roomID string, devices []Device) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM devices WHERE room_id = ?`, roomID); err != nil {
		return fmt.Errorf("clearing devices for room %s: %w", roomID, err)
	}

	const insert = `INSERT INTO devices (id, room_id, name, type, state, value, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for i, dev := range devices {
		// The room in the URL path owns the devices regardless of what the
		// payload claims.
		if _, err := tx.ExecContext(ctx, insert,
			dev.ID, roomID, dev.Name, dev.Type, dev.State, dev.Value, i); err != nil {
			if isUniqueConstraintError(err) {
				return fmt.Errorf("device %s: %w", dev.ID, ErrDeviceExists)
			}
			return fmt.Errorf("inserting device %s: %w", dev.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing device replacement: %w", err)
	}
	return nil
}

// Count returns the number of devices.
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM devices`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting devices: %w", err)
	}
	return count, nil
}

// queryDevices executes a query and returns a slice of Device.
func (r *SQLiteRepository) queryDevices(ctx context.Context, query string, args ...any) ([]Device, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying devices: %w", err)
	}
	defer rows.Close()

	var devices []Device
	for rows.Next() {
		dev, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning device row: %w", err)
		}
		devices = append(devices, *dev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating device rows: %w", err)
	}
	return devices, nil
}

// rowScanner abstracts sql.Row and sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanDevice scans a device from a row.
func scanDevice(scanner rowScanner) (*Device, error) {
	var dev Device
	var createdAt, updatedAt string

	if err := scanner.Scan(&dev.ID, &dev.RoomID, &dev.Name, &dev.Type,
		&dev.State, &dev.Value, &dev.SortOrder, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	dev.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // Format is controlled
	dev.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt) //nolint:errcheck // Format is controlled
	return &dev, nil
}

// isUniqueConstraintError reports whether the error is a SQLite UNIQUE
// constraint violation.
func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
