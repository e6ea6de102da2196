package model

// ClientState represents where the conversion client is in one attempt
type ClientState string

const (
	// StateIdle means nothing has been submitted yet
	StateIdle ClientState = "Idle"

	// StateSubmitting means the submit request is in flight
	StateSubmitting ClientState = "Submitting"

	// StatePolling means the task reference is held and progress is being tracked
	StatePolling ClientState = "Polling"

	// StateDone means the service reported completion
	StateDone ClientState = "Done"

	// StateFailed means the attempt ended with an error
	StateFailed ClientState = "Failed"
)

// String returns the string representation of ClientState
func (cs ClientState) String() string {
	return string(cs)
}

// IsActive returns true while an attempt is running and new submits must be rejected
func (cs ClientState) IsActive() bool {
	return cs == StateSubmitting || cs == StatePolling
}

// IsFinished returns true if the attempt reached a terminal state
func (cs ClientState) IsFinished() bool {
	return cs == StateDone || cs == StateFailed
}

// Panels describes what a front end shows for a given state.
type Panels struct {
	Progress      bool
	Download      bool
	Error         bool
	SubmitEnabled bool
}

// Panels maps the state to panel visibility. At most one of Progress,
// Download and Error is set.
func (cs ClientState) Panels() Panels {
	switch cs {
	case StateSubmitting, StatePolling:
		return Panels{Progress: true}
	case StateDone:
		return Panels{Download: true, SubmitEnabled: true}
	case StateFailed:
		return Panels{Error: true, SubmitEnabled: true}
	default:
		return Panels{SubmitEnabled: true}
	}
}

// FailureReason classifies why an attempt ended in StateFailed
type FailureReason string

const (
	FailureNone       FailureReason = ""
	FailureValidation FailureReason = "validation"
	FailureSubmit     FailureReason = "submit"
	FailureConversion FailureReason = "conversion"
	FailureTracking   FailureReason = "tracking"
)
