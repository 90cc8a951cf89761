package mastery

import "fmt"

// InvalidSlotNumberError is returned when a slot number is not assigned on a ship.
type InvalidSlotNumberError struct {
	SlotNo int
}

func (e *InvalidSlotNumberError) Error() string {
	return fmt.Sprintf("invalid slot number: %d", e.SlotNo)
}

// UnsupportedModeError is returned for a mode other than sortie or airDefense.
type UnsupportedModeError struct {
	Mode string
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("unsupported mastery mode: %s", e.Mode)
}

// SnapshotError represents a snapshot that cannot be turned back into a ship
type SnapshotError struct {
	Message string
	Cause   error
}

func (e *SnapshotError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid snapshot: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid snapshot: %s", e.Message)
}

func (e *SnapshotError) Unwrap() error {
	return e.Cause
}
