package catalog

import "fmt"

// UnknownAircraftTypeError is returned when a type id or code is not registered.
type UnknownAircraftTypeError struct {
	ID string
}

func (e *UnknownAircraftTypeError) Error() string {
	return fmt.Sprintf("unknown aircraft type: %s", e.ID)
}

// LoadError represents an error reading or decoding a types file
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
