package registry

import "fmt"

// LoadError represents an error reading, decoding or validating a template file
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("registry load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("registry load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NotFoundError is returned when no template has the requested name.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s template not found: %s", e.Kind, e.Name)
}
