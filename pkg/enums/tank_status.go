package enums

import "fmt"

// TankStatus tracks the operational state of a physical gas tank.
type TankStatus string

const (
	TankStatusAvailable   TankStatus = "available"
	TankStatusInUse       TankStatus = "in_use"
	TankStatusMaintenance TankStatus = "maintenance"
	TankStatusRetired     TankStatus = "retired"
)

var validTankStatuses = []TankStatus{
	TankStatusAvailable,
	TankStatusInUse,
	TankStatusMaintenance,
	TankStatusRetired,
}

// String implements fmt.Stringer.
func (s TankStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known TankStatus.
func (s TankStatus) IsValid() bool {
	for _, candidate := range validTankStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseTankStatus converts raw input into a TankStatus.
func ParseTankStatus(value string) (TankStatus, error) {
	for _, candidate := range validTankStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tank status %q", value)
}
