package home

// Security is the whole-home security system state. Exactly one instance
// exists at any time; it is created by seeding or by the first upsert.
//
// AlarmState is an enum-like string ("armed_home", "armed_away", "disarmed",
// "triggered", "idle") but is stored as given, not validated.
type Security struct {
	Armed          bool   `json:"armed"`
	DoorLocked     bool   `json:"doorLocked"`
	MotionDetected bool   `json:"motionDetected"`
	AlarmState     string `json:"alarmState"`
}

// SecurityPatch is a partial security update; nil fields are left untouched.
type SecurityPatch struct {
	Armed          *bool   `json:"armed"`
	DoorLocked     *bool   `json:"doorLocked"`
	MotionDetected *bool   `json:"motionDetected"`
	AlarmState     *string `json:"alarmState"`
}

// Apply merges the patch over the security state in place.
func (p SecurityPatch) Apply(s *Security) {
	if p.Armed != nil {
		s.Armed = *p.Armed
	}
	if p.DoorLocked != nil {
		s.DoorLocked = *p.DoorLocked
	}
	if p.MotionDetected != nil {
		s.MotionDetected = *p.MotionDetected
	}
	if p.AlarmState != nil {
		s.AlarmState = *p.AlarmState
	}
}

// Media is the whole-home media playback state singleton.
// Volume is nominally 0-100 but stored as given, not clamped.
type Media struct {
	Playing      bool   `json:"playing"`
	Volume       int    `json:"volume"`
	CurrentMedia string `json:"currentMedia"`
	Device       string `json:"device"`
}

// MediaPatch is a partial media update; nil fields are left untouched.
type MediaPatch struct {
	Playing      *bool   `json:"playing"`
	Volume       *int    `json:"volume"`
	CurrentMedia *string `json:"currentMedia"`
	Device       *string `json:"device"`
}

// Apply merges the patch over the media state in place.
func (p MediaPatch) Apply(m *Media) {
	if p.Playing != nil {
		m.Playing = *p.Playing
	}
	if p.Volume != nil {
		m.Volume = *p.Volume
	}
	if p.CurrentMedia != nil {
		m.CurrentMedia = *p.CurrentMedia
	}
	if p.Device != nil {
		m.Device = *p.Device
	}
}

// Preferences is the user preferences singleton. Unlike security and media
// it is never seeded: when no row exists the API synthesizes DefaultPreferences
// without persisting it.
type Preferences struct {
	Theme string `json:"theme"`
}

// PreferencesPatch is a partial preferences update; nil fields are left untouched.
type PreferencesPatch struct {
	Theme *string `json:"theme"`
}

// Apply merges the patch over the preferences in place.
func (p PreferencesPatch) Apply(prefs *Preferences) {
	if p.Theme != nil {
		prefs.Theme = *p.Theme
	}
}

// DefaultPreferences returns the synthetic preferences used when no row has
// ever been stored.
func DefaultPreferences() *Preferences {
	return &Preferences{Theme: "dark"}
}
