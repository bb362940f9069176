package domain

// ScreenStatus represents the view state of a screen instance
type ScreenStatus string

const (
	StatusIdle       ScreenStatus = "IDLE"
	StatusLoading    ScreenStatus = "LOADING"
	StatusRefreshing ScreenStatus = "REFRESHING"
	StatusError      ScreenStatus = "ERROR"
	StatusReady      ScreenStatus = "READY"
)

// IsValid checks if the screen status is valid
func (s ScreenStatus) IsValid() bool {
	switch s {
	case StatusIdle, StatusLoading, StatusRefreshing, StatusError, StatusReady:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is valid
func (s ScreenStatus) CanTransitionTo(next ScreenStatus) bool {
	switch s {
	case StatusIdle:
		return next == StatusLoading
	case StatusLoading:
		return next == StatusReady || next == StatusError
	case StatusRefreshing:
		return next == StatusReady || next == StatusError
	case StatusError:
		// Retry restarts the full-screen load, a re-focus refreshes in place.
		return next == StatusLoading || next == StatusRefreshing
	case StatusReady:
		return next == StatusRefreshing || next == StatusLoading
	default:
		return false
	}
}

// InFlight reports whether a fetch owned by this screen is outstanding.
func (s ScreenStatus) InFlight() bool {
	return s == StatusLoading || s == StatusRefreshing
}
