package model

import (
	"fmt"
	"strings"
	"time"
)

// Progress sentinels reported by the conversion service
const (
	ProgressComplete = 100
	ProgressFailed   = -1
)

// ConversionTask is a snapshot of one conversion attempt
type ConversionTask struct {
	ID         string        // task reference returned by the service
	AttemptID  string        // client-generated id used for log correlation
	URL        string        // submitted source URL
	State      ClientState   // current client state
	Percent    int           // 0 to 100
	Failure    FailureReason // why the attempt failed, if it did
	LastError  string        // user-visible error message
	OutputPath string        // where the artifact was saved, if it was
	StartedAt  time.Time     // when the attempt was submitted
	FinishedAt time.Time     // when a terminal state was reached
}

// IsTerminalProgress reports whether polling must stop at this value
func IsTerminalProgress(progress int) bool {
	return progress == ProgressComplete || progress == ProgressFailed
}

// ValidateProgress rejects values outside the protocol range
func ValidateProgress(progress int) error {
	if progress == ProgressFailed {
		return nil
	}
	if progress < 0 || progress > ProgressComplete {
		return fmt.Errorf("progress out of range: %d", progress)
	}
	return nil
}

// HasTask returns true if a task reference is held
func (ct ConversionTask) HasTask() bool {
	return ct.ID != ""
}

// GetDisplayTitle returns the saved filename, or the URL when nothing was saved yet
func (ct ConversionTask) GetDisplayTitle() string {
	if ct.OutputPath != "" {
		// Support both / and \ separators
		parts := strings.FieldsFunc(ct.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}
	return strings.TrimSpace(ct.URL)
}

// GetElapsedString returns the attempt duration formatted as mm:ss or hh:mm:ss
func (ct ConversionTask) GetElapsedString(now time.Time) string {
	if ct.StartedAt.IsZero() {
		return "—"
	}
	end := now
	if !ct.FinishedAt.IsZero() {
		end = ct.FinishedAt
	}

	total := int(end.Sub(ct.StartedAt).Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
