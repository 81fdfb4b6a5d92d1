package telemetry

import (
	"errors"
	"time"
)

// Telemetry is a single reading reported by a device.
//
// Timestamp is assigned by the server at insert time, never taken from
// the client. Data is the reported payload, stored verbatim as JSON.
type Telemetry struct {
	ID        int64          `json:"id"`
	DeviceID  int64          `json:"device_id"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// ErrInvalidPayload is returned when a reading's data cannot be
// serialized as a JSON object.
var ErrInvalidPayload = errors.New("invalid telemetry payload")
