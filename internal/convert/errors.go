package convert

import (
	"errors"
	"fmt"
)

// User-visible messages
const (
	MsgEnterURL         = "Please enter a video URL"
	MsgConversionFailed = "Conversion failed"
	MsgTrackingFailed   = "Failed to track progress"
	MsgDownloadFailed   = "Failed to download file"
)

var (
	ErrBusy   = errors.New("conversion already in progress")
	ErrNoTask = errors.New("no task reference held")

	// ErrStopped is returned by Submit when Close ran while the request was in flight
	ErrStopped = errors.New("conversion stopped")
)

// ValidationError is returned for input rejected before any request is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SubmitError is returned when the submit request fails.
type SubmitError struct {
	StatusCode int    // 0 when no response was received
	Message    string // server-provided message or MsgConversionFailed
	Err        error
}

func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submit failed: %s: %v", e.Message, e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("submit failed: HTTP %d: %s", e.StatusCode, e.Message)
	}
	return "submit failed: " + e.Message
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// TrackingFailure tells apart the causes of a failed progress check.
type TrackingFailure string

const (
	TrackingTransport TrackingFailure = "transport"
	TrackingStatus    TrackingFailure = "status"
	TrackingMalformed TrackingFailure = "malformed"
)

// TrackingError is returned when a progress check fails.
type TrackingError struct {
	Kind   TrackingFailure
	TaskID string
	Err    error
}

func (e *TrackingError) Error() string {
	return fmt.Sprintf("progress check for task %s failed (%s): %v", e.TaskID, e.Kind, e.Err)
}

func (e *TrackingError) Unwrap() error {
	return e.Err
}

// ConversionError is returned when the service reports the failed sentinel.
type ConversionError struct {
	TaskID string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion of task %s failed", e.TaskID)
}

// DownloadError is returned when the artifact cannot be fetched or saved.
type DownloadError struct {
	TaskID     string
	StatusCode int
	Err        error
}

func (e *DownloadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("download of task %s failed: HTTP %d: %v", e.TaskID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("download of task %s failed: %v", e.TaskID, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}
