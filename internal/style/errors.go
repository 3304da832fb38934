package style

import "fmt"

// LoadError wraps a stylesheet read or decode failure with its context
type LoadError struct {
	Op    string
	Path  string // optional
	Class string // optional: rule that failed to decode
	Err   error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Class != "" {
		base += fmt.Sprintf(" (rule=%s)", e.Class)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
