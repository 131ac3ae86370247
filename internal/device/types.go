package device

import "time"

// Device represents a controllable entity in the home: a light, an AC unit,
// a curtain. The type is a free-form label; the meaning of State and Value
// depends on it ("on"/"off" and brightness percent for lights, "open"/"closed"
// and position percent for curtains, target temperature for AC).
type Device struct {
	// ID is unique across the entire system, not just within a room, so a
	// device can be addressed without knowing its room.
	ID string `json:"id"`

	Name string `json:"name"`
	Type string `json:"type"`

	State string  `json:"state"`
	Value float64 `json:"value"`

	// RoomID is a back-reference to the owning room. It always equals the id
	// of the room that contains the device; it never implies lifetime control.
	RoomID string `json:"room_id"`

	// SortOrder preserves the device's position within its room.
	// Not part of the API representation.
	SortOrder int `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// StatePatch is a partial device update. Only State and Value are mutable
// through the API; a nil field leaves the stored field untouched. The empty
// patch is a valid no-op.
type StatePatch struct {
	State *string  `json:"state"`
	Value *float64 `json:"value"`
}

// IsEmpty reports whether the patch changes nothing.
func (p StatePatch) IsEmpty() bool {
	return p.State == nil && p.Value == nil
}
