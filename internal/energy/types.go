package energy

// Usage is the per-room energy consumption record, in kWh. It is written at
// seed time and read-only through the API; there is no update endpoint.
type Usage struct {
	RoomID      string  `json:"room_id"`
	RoomName    string  `json:"room_name"`
	DailyUsage  float64 `json:"daily_usage"`
	WeeklyUsage float64 `json:"weekly_usage"`
}
