package seed

import (
	"context"
	"fmt"

	"github.com/nerrad567/hearth-core/internal/device"
	"github.com/nerrad567/hearth-core/internal/energy"
	"github.com/nerrad567/hearth-core/internal/home"
	"github.com/nerrad567/hearth-core/internal/room"
)

// Logger is the minimal logging interface the seeder needs.
type Logger interface {
	Info(msg string, args ...any)
}

// Deps holds the repositories the seeder writes through.
type Deps struct {
	Rooms   room.Repository
	Devices device.Repository
	Home    home.Repository
	Energy  energy.Repository
	Logger  Logger
}

// Run populates the store with demo data if it is empty.
//
// The room count is the emptiness check: if any room exists the store is
// considered populated and Run returns without touching anything, so it is
// safe to call on every startup. No preferences row is seeded - the
// preferences default is synthesized at read time and must never be
// persisted as a side effect.
func Run(ctx context.Context, deps Deps) error {
	count, err := deps.Rooms.Count(ctx)
	if err != nil {
		return fmt.Errorf("checking room count: %w", err)
	}
	if count > 0 {
		return nil // Already populated
	}

	for _, dr := range demoRooms() {
		rm := dr.room
		if err := deps.Rooms.Create(ctx, &rm); err != nil {
			return fmt.Errorf("seeding room %s: %w", rm.ID, err)
		}
		if err := deps.Devices.ReplaceForRoom(ctx, rm.ID, dr.devices); err != nil {
			return fmt.Errorf("seeding devices for room %s: %w", rm.ID, err)
		}
	}

	if _, err := deps.Home.UpsertSecurity(ctx, demoSecurity()); err != nil {
		return fmt.Errorf("seeding security state: %w", err)
	}

	for _, usage := range demoEnergy() {
		if err := deps.Energy.Insert(ctx, usage); err != nil {
			return fmt.Errorf("seeding energy usage: %w", err)
		}
	}

	if _, err := deps.Home.UpsertMedia(ctx, demoMedia()); err != nil {
		return fmt.Errorf("seeding media state: %w", err)
	}

	if deps.Logger != nil {
		deps.Logger.Info("database seeded with demo data",
			"rooms", len(demoRooms()),
			"energy_records", len(demoEnergy()),
		)
	}
	return nil
}
