package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Endpoint paths of the conversion service
const (
	ConvertPath  = "/convert"
	ProgressPath = "/progress/"
	DownloadPath = "/download/"
)

// DefaultRequestTimeout bounds submit and progress requests
const DefaultRequestTimeout = 30 * time.Second

// maxErrorBody limits how much of an error response is read
const maxErrorBody = 64 * 1024

type convertRequest struct {
	URL string `json:"url"`
}

type convertResponse struct {
	TaskID  string `json:"task_id"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type progressResponse struct {
	Progress *int `json:"progress"`
}

// APIClient talks JSON over HTTP to the conversion service
type APIClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	// downloads stream for as long as the service sends, so they get their own client
	downloadClient *http.Client
}

// NewAPIClient creates a client for the service at baseURL
func NewAPIClient(baseURL string, timeout time.Duration) (*APIClient, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("server url must start with http:// or https://: %q", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("server url has no host: %q", baseURL)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")

	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &APIClient{
		baseURL:        parsed,
		httpClient:     &http.Client{Timeout: timeout},
		downloadClient: &http.Client{},
	}, nil
}

// BaseURL returns the service root
func (c *APIClient) BaseURL() string {
	return c.baseURL.String()
}

func (c *APIClient) endpoint(path string) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	u.RawPath = ""
	return u.String()
}

func (c *APIClient) taskEndpoint(prefix, taskID string) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + prefix + taskID
	u.RawPath = c.baseURL.EscapedPath() + prefix + url.PathEscape(taskID)
	return u.String()
}

// Submit posts the source URL and returns the task reference
func (c *APIClient) Submit(ctx context.Context, sourceURL string) (string, error) {
	body, err := json.Marshal(convertRequest{URL: sourceURL})
	if err != nil {
		return "", &SubmitError{Message: MsgConversionFailed, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(ConvertPath), bytes.NewReader(body))
	if err != nil {
		return "", &SubmitError{Message: MsgConversionFailed, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &SubmitError{Message: MsgConversionFailed, Err: err}
	}
	defer resp.Body.Close()

	var data convertResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&data)

	if !isSuccess(resp.StatusCode) {
		msg := strings.TrimSpace(data.Error)
		if decodeErr != nil || msg == "" {
			msg = MsgConversionFailed
		}
		return "", &SubmitError{StatusCode: resp.StatusCode, Message: msg}
	}

	if decodeErr != nil {
		return "", &SubmitError{StatusCode: resp.StatusCode, Message: MsgConversionFailed, Err: fmt.Errorf("decode response: %w", decodeErr)}
	}
	if data.TaskID == "" {
		return "", &SubmitError{StatusCode: resp.StatusCode, Message: MsgConversionFailed, Err: errors.New("response has no task_id")}
	}

	return data.TaskID, nil
}

// Progress fetches the progress value for a task
func (c *APIClient) Progress(ctx context.Context, taskID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.taskEndpoint(ProgressPath, taskID), nil)
	if err != nil {
		return 0, &TrackingError{Kind: TrackingTransport, TaskID: taskID, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &TrackingError{Kind: TrackingTransport, TaskID: taskID, Err: err}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return 0, &TrackingError{Kind: TrackingStatus, TaskID: taskID, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	var data progressResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&data); err != nil {
		return 0, &TrackingError{Kind: TrackingMalformed, TaskID: taskID, Err: fmt.Errorf("decode response: %w", err)}
	}
	if data.Progress == nil {
		return 0, &TrackingError{Kind: TrackingMalformed, TaskID: taskID, Err: errors.New("response has no progress")}
	}

	return *data.Progress, nil
}

// Download opens the artifact stream; the caller closes Body
func (c *APIClient) Download(ctx context.Context, taskID string) (*Artifact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.DownloadURL(taskID), nil)
	if err != nil {
		return nil, &DownloadError{TaskID: taskID, Err: err}
	}

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return nil, &DownloadError{TaskID: taskID, Err: err}
	}

	if !isSuccess(resp.StatusCode) {
		defer resp.Body.Close()
		var data convertResponse
		msg := MsgDownloadFailed
		if json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&data) == nil && data.Error != "" {
			msg = data.Error
		}
		return nil, &DownloadError{TaskID: taskID, StatusCode: resp.StatusCode, Err: errors.New(msg)}
	}

	return &Artifact{
		Filename:    filenameFromDisposition(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Size:        resp.ContentLength,
		Body:        resp.Body,
	}, nil
}

// DownloadURL returns the download endpoint for a task
func (c *APIClient) DownloadURL(taskID string) string {
	return c.taskEndpoint(DownloadPath, taskID)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// filenameFromDisposition extracts the filename parameter, if any
func filenameFromDisposition(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
