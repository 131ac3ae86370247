package room

import "time"

// Room represents a physical space in the home.
//
// Devices are not embedded here: they live in the device package, keyed by
// device id with a room_id back-reference. The API layer composes the
// room-with-devices view the dashboard consumes.
type Room struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Temperature float64 `json:"temperature"`

	// SortOrder preserves storage order for listing. Not part of the API
	// representation.
	SortOrder int `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Patch is a partial room update. Nil fields are left untouched; the zero
// patch is a no-op merge.
type Patch struct {
	Name        *string  `json:"name"`
	Color       *string  `json:"color"`
	Temperature *float64 `json:"temperature"`
}

// Apply merges the patch over the room in place.
func (p Patch) Apply(r *Room) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Color != nil {
		r.Color = *p.Color
	}
	if p.Temperature != nil {
		r.Temperature = *p.Temperature
	}
}

// FromPatch builds a new Room from a patch. The id comes from the caller
// (the URL path parameter is authoritative); absent fields take zero values.
func FromPatch(id string, p Patch) *Room {
	r := &Room{ID: id}
	p.Apply(r)
	return r
}
