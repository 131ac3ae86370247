// Package influxdb provides optional time-series recording of device
// state changes.
//
// The recorder is entirely optional: when disabled in configuration
// the rest of the system behaves identically, and the API layer simply
// skips telemetry writes. When enabled, each device state change is
// written as a point in the device_state measurement, tagged by device,
// room, and device type.
//
// Writes are non-blocking and batched by the underlying client; async
// write failures are delivered through the SetOnError callback so the
// caller can log them without ever blocking a request.
package influxdb
