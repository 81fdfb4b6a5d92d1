package device

import (
	"errors"
	"time"
)

// Status is a device's operational state. The set is closed; any other
// value is rejected before it reaches storage.
type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusMaintenance Status = "maintenance"
)

// ValidStatuses is the closed set of device statuses.
var ValidStatuses = []Status{StatusActive, StatusInactive, StatusMaintenance}

// IsValidStatus returns true if s is in the closed status set.
func IsValidStatus(s Status) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Device represents a registered IoT device.
//
// UserID records the owner; it is written once at creation from the
// authenticated principal.
type Device struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Sentinel errors for device operations.
var (
	// ErrDeviceNotFound covers both "no such device" and "not yours".
	// Collapsing the two is deliberate: existence of another owner's
	// device must not leak.
	ErrDeviceNotFound = errors.New("device not found")

	ErrInvalidStatus = errors.New("invalid device status")
)
