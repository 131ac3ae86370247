package room

import "errors"

// Domain errors for the room package.
//
// These errors can be checked using errors.Is():
//
//	if errors.Is(err, room.ErrRoomNotFound) {
//	    // handle not found case
//	}
var (
	// ErrRoomNotFound is returned when a room id does not exist.
	ErrRoomNotFound = errors.New("room: not found")

	// ErrRoomExists is returned when creating a room with an id that already exists.
	ErrRoomExists = errors.New("room: already exists")
)
