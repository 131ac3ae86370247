package home

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Repository defines persistence for the whole-home singletons.
//
// Each upsert merges the patch over the stored row (or a zero-valued row when
// absent) and writes the result back. The tables pin their single row with an
// id = 1 check constraint, so "the singleton" is always row 1.
type Repository interface {
	// GetSecurity returns the security singleton.
	// Returns ErrSecurityNotFound if it has never been stored.
	GetSecurity(ctx context.Context) (*Security, error)

	// UpsertSecurity merges the patch into the singleton, creating it from
	// the patch (over zero values) when absent. Returns the resulting state.
	UpsertSecurity(ctx context.Context, patch SecurityPatch) (*Security, error)

	// GetMedia returns the media singleton.
	// Returns ErrMediaNotFound if it has never been stored.
	GetMedia(ctx context.Context) (*Media, error)

	// UpsertMedia merges the patch into the singleton, creating it when absent.
	UpsertMedia(ctx context.Context, patch MediaPatch) (*Media, error)

	// GetPreferences returns the stored preferences.
	// Returns ErrPreferencesNotFound if no row exists; it never synthesizes
	// the default (that is the API boundary's job, and the default must not
	// be persisted).
	GetPreferences(ctx context.Context) (*Preferences, error)

	// UpsertPreferences merges the patch into the singleton, creating it when absent.
	UpsertPreferences(ctx context.Context, patch PreferencesPatch) (*Preferences, error)
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed singleton repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// GetSecurity returns the security singleton.
func (r *SQLiteRepository) GetSecurity(ctx context.Context) (*Security, error) {
	const query = `SELECT armed, door_locked, motion_detected, alarm_state
		FROM security_state WHERE id = 1`

	var s Security
	err := r.db.QueryRowContext(ctx, query,
	).Scan(&s.Armed, &s.DoorLocked, &s.MotionDetected, &s.AlarmState)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSecurityNotFound
		}
		return nil, fmt.Errorf("querying security state: %w", err)
	}
	return &s, nil
}

// UpsertSecurity merges the patch into the security singleton.
func (r *SQLiteRepository) UpsertSecurity(ctx context.Context, patch SecurityPatch) (*Security, error) {
	current, err := r.GetSecurity(ctx)
	if errors.Is(err, ErrSecurityNotFound) {
		current = &Security{}
	} else if err != nil {
		return nil, err
	}
	patch.Apply(current)

	const query = `INSERT INTO security_state (id, armed, door_locked, motion_detected, alarm_state)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			armed = excluded.armed,
			door_locked = excluded.door_locked,
			motion_detected = excluded.motion_detected,
			alarm_state = excluded.alarm_state,
			updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')`

	if _, err := r.db.ExecContext(ctx, query,
		current.Armed, current.DoorLocked, current.MotionDetected, current.AlarmState); err != nil {
		return nil, fmt.Errorf("upserting security state: %w", err)
	}
	return current, nil
}

// GetMedia returns the media singleton.
func (r *SQLiteRepository) GetMedia(ctx context.Context) (*Media, error) {
	const query = `SELECT playing, volume, current_media, device
		FROM media_state WHERE id = 1`

	var m Media
	err := r.db.QueryRowContext(ctx, query,
	).Scan(&m.Playing, &m.Volume, &m.CurrentMedia, &m.Device)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("querying media state: %w", err)
	}
	return &m, nil
}

// UpsertMedia merges the patch into the media singleton.
func (r *SQLiteRepository) UpsertMedia(ctx context.Context, patch MediaPatch) (*Media, error) {
	current, err := r.GetMedia(ctx)
	if errors.Is(err, ErrMediaNotFound) {
		current = &Media{}
	} else if err != nil {
		return nil, err
	}
	patch.Apply(current)

	const query = `INSERT INTO media_state (id, playing, volume, current_media, device)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			playing = excluded.playing,
			volume = excluded.volume,
			current_media = excluded.current_media,
			device = excluded.device,
			updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')`

	if _, err := r.db.ExecContext(ctx, query,
		current.Playing, current.Volume, current.CurrentMedia, current.Device); err != nil {
		return nil, fmt.Errorf("upserting media state: %w", err)
	}
	return current, nil
}

// GetPreferences returns the stored preferences row.
func (r *SQLiteRepository) GetPreferences(ctx context.Context) (*Preferences, error) {
	const query = `SELECT theme FROM preferences WHERE id = 1`

	var p Preferences
	if err := r.db.QueryRowContext(ctx, query).Scan(&p.Theme); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPreferencesNotFound
		}
		return nil, fmt.Errorf("querying preferences: %w", err)
	}
	return &p, nil
}

// UpsertPreferences merges the patch into the preferences singleton.
// When no row exists the merge base is DefaultPreferences, so a partial
// first write still produces a complete record.
func (r *SQLiteRepository) UpsertPreferences(ctx context.Context, patch PreferencesPatch) (*Preferences, error) {
	current, err := r.GetPreferences(ctx)
	if errors.Is(err, ErrPreferencesNotFound) {
		current = DefaultPreferences()
	} else if err != nil {
		return nil, err
	}
	patch.Apply(current)

	const query = `INSERT INTO preferences (id, theme)
		VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET
			theme = excluded.theme,
			updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')`

	if _, err := r.db.ExecContext(ctx, query, current.Theme); err != nil {
		return nil, fmt.Errorf("upserting preferences: %w", err)
	}
	return current, nil
}
