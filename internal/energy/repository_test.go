package energy

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// setupTestDB creates an in-memory SQLite database with the energy schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	schema := `
		CREATE TABLE energy_usage (
			room_id TEXT PRIMARY KEY,
			room_name TEXT NOT NULL,
			daily_usage REAL NOT NULL DEFAULT 0,
			weekly_usage REAL NOT NULL DEFAULT 0
		) STRICT;
	`

	if _, execErr := db.Exec(schema); execErr != nil {
		db.Close()
		t.Fatalf("failed to create test schema: %v", execErr)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func TestInsertAndList(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()

	records := []Usage{
		{RoomID: "living-room", RoomName: "Living Room", DailyUsage: 12.5, WeeklyUsage: 87.3},
		{RoomID: "bedroom", RoomName: "Bedroom", DailyUsage: 8.2, WeeklyUsage: 57.4},
		{RoomID: "kitchen", RoomName: "Kitchen", DailyUsage: 15.7, WeeklyUsage: 109.9},
	}
	for _, u := range records {
		if err := repo.Insert(ctx, u); err != nil {
			t.Fatalf("Insert %s: %v", u.RoomID, err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("count = %d, want 3", len(got))
	}
	// Insertion order preserved
	for i, want := range records {
		if got[i] != want {
			t.Errorf("got[%d] = %+v, want %+v", i, got[i], want)
		}
	}
}

func TestList_Empty(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("count = %d, want 0", len(got))
	}
}

func TestInsert_DuplicateRoom(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()

	u := Usage{RoomID: "living-room", RoomName: "Living Room", DailyUsage: 12.5, WeeklyUsage: 87.3}
	if err := repo.Insert(ctx, u); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := repo.Insert(ctx, u); err == nil {
		t.Error("duplicate room_id insert should fail")
	}
}
