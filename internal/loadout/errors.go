package loadout

import "fmt"

// LoadError represents an error reading or decoding a loadout file
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("loadout load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("loadout load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// BuildError represents a loadout that cannot be turned into a fleet
type BuildError struct {
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("loadout build error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("loadout build error: %s", e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}
