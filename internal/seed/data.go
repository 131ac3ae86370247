package seed

import (
	"github.com/nerrad567/hearth-core/internal/device"
	"github.com/nerrad567/hearth-core/internal/energy"
	"github.com/nerrad567/hearth-core/internal/home"
	"github.com/nerrad567/hearth-core/internal/room"
)

// demoRoom pairs a room with its devices for seeding.
type demoRoom struct {
	room    room.Room
	devices []device.Device
}

// demoRooms is the demo home: five rooms with three devices each.
// Device ids are globally unique by construction.
func demoRooms() []demoRoom {
	return []demoRoom{
		{
			room: room.Room{ID: "living-room", Name: "Living Room", Color: "#F59E0B", Temperature: 22},
			devices: []device.Device{
				{ID: "lr-light", Name: "Main Light", Type: "light", State: "on", Value: 75, RoomID: "living-room"},
				{ID: "lr-ac", Name: "AC Unit", Type: "ac", State: "on", Value: 22, RoomID: "living-room"},
				{ID: "lr-curtain", Name: "Curtains", Type: "curtain", State: "open", Value: 100, RoomID: "living-room"},
			},
		},
		{
			room: room.Room{ID: "bedroom", Name: "Bedroom", Color: "#EC4899", Temperature: 21},
			devices: []device.Device{
				{ID: "br-light", Name: "Bedroom Light", Type: "light", State: "off", Value: 0, RoomID: "bedroom"},
				{ID: "br-ac", Name: "AC Unit", Type: "ac", State: "on", Value: 21, RoomID: "bedroom"},
				{ID: "br-curtain", Name: "Curtains", Type: "curtain", State: "closed", Value: 0, RoomID: "bedroom"},
			},
		},
		{
			room: room.Room{ID: "kitchen", Name: "Kitchen", Color: "#10B981", Temperature: 18},
			devices: []device.Device{
				{ID: "kt-light", Name: "Kitchen Light", Type: "light", State: "on", Value: 100, RoomID: "kitchen"},
				{ID: "kt-ac", Name: "AC Unit", Type: "ac", State: "off", Value: 18, RoomID: "kitchen"},
				{ID: "kt-window", Name: "Window", Type: "curtain", State: "open", Value: 50, RoomID: "kitchen"},
			},
		},
		{
			room: room.Room{ID: "bathroom", Name: "Bathroom", Color: "#06B6D4", Temperature: 20},
			devices: []device.Device{
				{ID: "bt-light", Name: "Bathroom Light", Type: "light", State: "off", Value: 0, RoomID: "bathroom"},
				{ID: "bt-ac", Name: "Heater", Type: "ac", State: "off", Value: 20, RoomID: "bathroom"},
				{ID: "bt-window", Name: "Window", Type: "curtain", State: "closed", Value: 0, RoomID: "bathroom"},
			},
		},
		{
			room: room.Room{ID: "guest-room", Name: "Guest Room", Color: "#8B5CF6", Temperature: 19},
			devices: []device.Device{
				{ID: "gr-light", Name: "Guest Light", Type: "light", State: "off", Value: 0, RoomID: "guest-room"},
				{ID: "gr-ac", Name: "AC Unit", Type: "ac", State: "off", Value: 19, RoomID: "guest-room"},
				{ID: "gr-curtain", Name: "Curtains", Type: "curtain", State: "closed", Value: 0, RoomID: "guest-room"},
			},
		},
	}
}

// demoSecurity is the initial security system state.
func demoSecurity() home.SecurityPatch {
	armed := true
	doorLocked := true
	motionDetected := false
	alarmState := "armed_home"
	return home.SecurityPatch{
		Armed:          &armed,
		DoorLocked:     &doorLocked,
		MotionDetected: &motionDetected,
		AlarmState:     &alarmState,
	}
}

// demoMedia is the initial media playback state.
func demoMedia() home.MediaPatch {
	playing := false
	volume := 35
	currentMedia := "Spotify - Chill Vibes"
	mediaDevice := "Living Room Speaker"
	return home.MediaPatch{
		Playing:      &playing,
		Volume:       &volume,
		CurrentMedia: &currentMedia,
		Device:       &mediaDevice,
	}
}

// demoEnergy is one usage record per demo room, in kWh.
func demoEnergy() []energy.Usage {
	return []energy.Usage{
		{RoomID: "living-room", RoomName: "Living Room", DailyUsage: 12.5, WeeklyUsage: 87.5},
		{RoomID: "bedroom", RoomName: "Bedroom", DailyUsage: 8.3, WeeklyUsage: 58.1},
		{RoomID: "kitchen", RoomName: "Kitchen", DailyUsage: 15.2, WeeklyUsage: 106.4},
		{RoomID: "bathroom", RoomName: "Bathroom", DailyUsage: 5.7, WeeklyUsage: 39.9},
		{RoomID: "guest-room", RoomName: "Guest Room", DailyUsage: 3.1, WeeklyUsage: 21.7},
	}
}
