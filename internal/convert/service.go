package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-converter/internal/model"
	"github.com/ytget/yt-converter/internal/platform"
)

// DefaultPollInterval is the cadence of progress checks
const DefaultPollInterval = 1000 * time.Millisecond

// Service drives one conversion attempt at a time
type Service struct {
	backend Backend

	mu           sync.Mutex
	notifyMu     sync.Mutex // serializes callbacks so observers never see an older state last
	pollMu       sync.Mutex // held across one progress request and its commit
	task         model.ConversionTask
	pollInterval time.Duration
	generation   uint64             // bumped on every submission, invalidates stale pollers
	cancelPoll   context.CancelFunc // cancels the active poll loop, nil when none
	onUpdate     func(model.ConversionTask)
}

// NewService creates a new conversion service
func NewService(backend Backend, pollInterval time.Duration) *Service {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Service{
		backend:      backend,
		pollInterval: pollInterval,
		task:         model.ConversionTask{State: model.StateIdle},
	}
}

// SetUpdateCallback sets the callback function for state changes
func (s *Service) SetUpdateCallback(callback func(model.ConversionTask)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetPollInterval changes the cadence used by the next poll loop
func (s *Service) SetPollInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	s.mu.Lock()
	s.pollInterval = interval
	s.mu.Unlock()
}

// Snapshot returns a copy of the current attempt
func (s *Service) Snapshot() model.ConversionTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.task
}

// Submit starts a new attempt for rawURL. It returns once the submit request
// completes; polling continues in the background.
func (s *Service) Submit(ctx context.Context, rawURL string) error {
	s.mu.Lock()
	if s.task.State.IsActive() {
		s.mu.Unlock()
		return ErrBusy
	}

	sourceURL := strings.TrimSpace(rawURL)
	if sourceURL == "" {
		s.stopPollingLocked()
		s.generation++
		s.task = model.ConversionTask{
			State:      model.StateFailed,
			Failure:    model.FailureValidation,
			LastError:  MsgEnterURL,
			FinishedAt: time.Now(),
		}
		s.mu.Unlock()

		s.notifyUpdate()
		return &ValidationError{Message: MsgEnterURL}
	}

	s.stopPollingLocked()
	s.generation++
	gen := s.generation
	s.task = model.ConversionTask{
		AttemptID: uuid.New().String(),
		URL:       sourceURL,
		State:     model.StateSubmitting,
		StartedAt: time.Now(),
	}
	attemptID := s.task.AttemptID
	s.mu.Unlock()

	s.notifyUpdate()
	log.Printf("Submitting attempt %s for URL: %s", attemptID, sourceURL)

	taskID, err := s.backend.Submit(ctx, sourceURL)

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return ErrStopped
	}

	if err != nil {
		var submitErr *SubmitError
		if !errors.As(err, &submitErr) {
			submitErr = &SubmitError{Message: MsgConversionFailed, Err: err}
		}
		s.task.State = model.StateFailed
		s.task.Failure = model.FailureSubmit
		s.task.LastError = submitErr.Message
		s.task.FinishedAt = time.Now()
		s.mu.Unlock()

		log.Printf("Submit failed for attempt %s: %v", attemptID, err)
		s.notifyUpdate()
		return submitErr
	}

	s.task.ID = taskID
	s.task.State = model.StatePolling
	pollCtx, cancel := context.WithCancel(context.Background())
	s.cancelPoll = cancel
	interval := s.pollInterval
	s.mu.Unlock()

	log.Printf("Attempt %s accepted as task %s, polling every %s", attemptID, taskID, interval)
	s.notifyUpdate()

	go s.pollLoop(pollCtx, gen, interval)
	return nil
}

// pollLoop checks progress once per interval until a terminal value,
// a failure, or cancellation. Cycles never overlap.
func (s *Service) pollLoop(ctx context.Context, gen uint64, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		done, _ := s.poll(ctx, gen)
		if done {
			return
		}
	}
}

// PollOnce runs one progress check for the current task. It reports whether
// polling has finished; it is a no-op outside StatePolling.
func (s *Service) PollOnce(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if s.task.State != model.StatePolling {
		s.mu.Unlock()
		return true, nil
	}
	gen := s.generation
	s.mu.Unlock()

	return s.poll(ctx, gen)
}

// poll runs one progress check. Checks from the loop and from PollOnce never
// overlap; observers are notified after the check is committed.
func (s *Service) poll(ctx context.Context, gen uint64) (bool, error) {
	s.pollMu.Lock()
	finished, changed, err := s.checkProgress(ctx, gen)
	s.pollMu.Unlock()

	if changed {
		s.notifyUpdate()
	}
	return finished, err
}

// checkProgress must be called with s.pollMu held
func (s *Service) checkProgress(ctx context.Context, gen uint64) (finished, changed bool, err error) {
	s.mu.Lock()
	if gen != s.generation || s.task.State != model.StatePolling {
		s.mu.Unlock()
		return true, false, nil
	}
	taskID := s.task.ID
	s.mu.Unlock()

	progress, err := s.backend.Progress(ctx, taskID)
	if err == nil {
		if verr := model.ValidateProgress(progress); verr != nil {
			err = &TrackingError{Kind: TrackingMalformed, TaskID: taskID, Err: verr}
		}
	}

	s.mu.Lock()
	if gen != s.generation || s.task.State != model.StatePolling {
		// Superseded by a newer submission or stopped by Close
		s.mu.Unlock()
		return true, false, nil
	}

	var result error
	switch {
	case err != nil:
		if ctx.Err() != nil {
			s.mu.Unlock()
			return true, false, ctx.Err()
		}
		var trackErr *TrackingError
		if !errors.As(err, &trackErr) {
			trackErr = &TrackingError{Kind: TrackingTransport, TaskID: taskID, Err: err}
		}
		s.stopPollingLocked()
		s.task.State = model.StateFailed
		s.task.Failure = model.FailureTracking
		s.task.LastError = MsgTrackingFailed
		s.task.FinishedAt = time.Now()
		result = trackErr
		log.Printf("Progress tracking failed for task %s: %v", taskID, err)
	case model.IsTerminalProgress(progress):
		s.stopPollingLocked()
		s.task.FinishedAt = time.Now()
		if progress == model.ProgressComplete {
			s.task.Percent = progress
			s.task.State = model.StateDone
			log.Printf("Task %s completed", taskID)
			break
		}
		s.task.State = model.StateFailed
		s.task.Failure = model.FailureConversion
		s.task.LastError = MsgConversionFailed
		result = &ConversionError{TaskID: taskID}
		log.Printf("Task %s reported conversion failure", taskID)
	default:
		s.task.Percent = progress
	}

	finished = s.task.State.IsFinished()
	s.mu.Unlock()

	return finished, true, result
}

// DownloadURL returns the download endpoint for the held task reference
func (s *Service) DownloadURL() (string, bool) {
	s.mu.Lock()
	taskID := s.task.ID
	s.mu.Unlock()

	if taskID == "" {
		return "", false
	}
	return s.backend.DownloadURL(taskID), true
}

// Download saves the artifact of the held task reference into dir and
// returns the written path.
func (s *Service) Download(ctx context.Context, dir string) (string, error) {
	s.mu.Lock()
	taskID := s.task.ID
	gen := s.generation
	s.mu.Unlock()

	if taskID == "" {
		return "", ErrNoTask
	}

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", &DownloadError{TaskID: taskID, Err: fmt.Errorf("create directory: %w", err)}
	}

	artifact, err := s.backend.Download(ctx, taskID)
	if err != nil {
		log.Printf("Download failed for task %s: %v", taskID, err)
		return "", err
	}
	defer artifact.Body.Close()

	path, err := saveArtifact(dir, taskID, artifact)
	if err != nil {
		log.Printf("Saving artifact for task %s failed: %v", taskID, err)
		return "", &DownloadError{TaskID: taskID, Err: err}
	}
	log.Printf("Task %s saved to %s", taskID, path)

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return path, nil
	}
	s.task.OutputPath = path
	s.mu.Unlock()

	s.notifyUpdate()
	return path, nil
}

// saveArtifact streams the body to a temporary file and renames it into place
func saveArtifact(dir, taskID string, artifact *Artifact) (string, error) {
	name := platform.SanitizeFilename(artifact.Filename)
	if name == "" {
		name = platform.SanitizeFilename(taskID) + platform.ExtensionForContentType(artifact.ContentType)
	}

	tmp, err := os.CreateTemp(dir, ".download-*.part")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()

	written, copyErr := io.Copy(tmp, artifact.Body)
	closeErr := tmp.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr == nil && artifact.Size >= 0 && written != artifact.Size {
		copyErr = fmt.Errorf("short body: got %d of %d bytes", written, artifact.Size)
	}
	if copyErr != nil {
		os.Remove(tmpPath)
		return "", copyErr
	}

	target := platform.UniqueFilePath(filepath.Join(dir, name))
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	return target, nil
}

// Close stops any active poll loop. A running attempt is left in StateIdle
// and its pending results are discarded.
func (s *Service) Close() {
	s.mu.Lock()
	wasActive := s.task.State.IsActive()
	s.stopPollingLocked()
	s.generation++
	if wasActive {
		s.task.State = model.StateIdle
	}
	s.mu.Unlock()

	if wasActive {
		s.notifyUpdate()
	}
}

// stopPollingLocked cancels the active loop; s.mu must be held
func (s *Service) stopPollingLocked() {
	if s.cancelPoll != nil {
		s.cancelPoll()
		s.cancelPoll = nil
	}
}

// notifyUpdate calls the update callback, if set, with the latest state
func (s *Service) notifyUpdate() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	callback := s.onUpdate
	task := s.task
	s.mu.Unlock()

	if callback != nil {
		callback(task)
	}
}
