package convert

import (
	"context"
	"io"
	"time"

	"github.com/ytget/yt-converter/internal/model"
)

// Backend is the conversion service as seen by the client.
type Backend interface {
	// Submit starts a conversion and returns the task reference
	Submit(ctx context.Context, sourceURL string) (string, error)

	// Progress returns the progress value for a task reference
	Progress(ctx context.Context, taskID string) (int, error)

	// Download opens the converted artifact
	Download(ctx context.Context, taskID string) (*Artifact, error)

	// DownloadURL returns the navigation target for a task reference
	DownloadURL(taskID string) string
}

// Artifact is an open download response.
type Artifact struct {
	Filename    string // suggested by the service, may be empty
	ContentType string
	Size        int64 // -1 if unknown
	Body        io.ReadCloser
}

// Converter defines the interface front ends drive.
type Converter interface {
	SetUpdateCallback(func(model.ConversionTask))
	SetPollInterval(interval time.Duration)
	Submit(ctx context.Context, url string) error
	PollOnce(ctx context.Context) (bool, error)
	Download(ctx context.Context, dir string) (string, error)
	DownloadURL() (string, bool)
	Snapshot() model.ConversionTask
	Close()
}
