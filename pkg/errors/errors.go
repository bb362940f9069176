package errors

import "fmt"

// ErrNotFound indicates a resource does not exist on the backend.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ErrBackend indicates the backend rejected a request or returned an
// unexpected status.
type ErrBackend struct {
	StatusCode int
	Message    string
}

func (e *ErrBackend) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend error: status %d: %s", e.StatusCode, e.Message)
}
