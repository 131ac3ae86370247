package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// Measurement names used for device telemetry.
const (
	measurementDeviceState = "device_state"
)

// WriteDeviceState records a device state transition as a time-series point.
//
// The write is non-blocking: points are batched and flushed in the
// background by the client. Failures surface through the SetOnError
// callback, never to the caller.
//
// Parameters:
//   - deviceID: Global device identifier (tag)
//   - roomID: Owning room identifier (tag)
//   - deviceType: Device category, e.g. "light", "ac" (tag)
//   - state: New device state, e.g. "on", "off" (field)
//   - value: New device value, e.g. brightness or temperature (field)
func (c *Client) WriteDeviceState(deviceID, roomID, deviceType, state string, value float64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		measurementDeviceState,
		map[string]string{
			"device_id": deviceID,
			"room_id":   roomID,
			"type":      deviceType,
		},
		map[string]interface{}{
			"state": state,
			"value": value,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}
