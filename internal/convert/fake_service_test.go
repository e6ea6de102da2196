package convert

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ytget/yt-converter/internal/model"
)

// fakeService mimics the conversion service endpoints
type fakeService struct {
	mu sync.Mutex

	taskIDs      []string // handed out in order, the last one repeats
	submitStatus int
	submitBody   any
	submitGate   chan struct{} // when set, submit blocks until closed

	progress       []int  // scripted values, the last one repeats
	progressRaw    string // raw body instead of JSON when set
	progressStatus int
	progressIndex  int

	artifact     []byte
	artifactName string
	artifactType string

	submits       []string
	progressCalls []string
	downloads     []string
}

func newFakeService(t *testing.T) (*fakeService, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fs := &fakeService{
		taskIDs:        []string{"abc"},
		submitStatus:   http.StatusOK,
		progressStatus: http.StatusOK,
		artifact:       []byte("ID3 fake mp3 data"),
		artifactType:   "audio/mpeg",
	}

	r := gin.New()
	r.POST(ConvertPath, fs.convert)
	r.GET(ProgressPath+":id", fs.getProgress)
	r.GET(DownloadPath+":id", fs.download)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return fs, server
}

type fakeConvertRequest struct {
	URL string `json:"url" binding:"required"`
}

func (fs *fakeService) convert(c *gin.Context) {
	var req fakeConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No URL provided"})
		return
	}

	fs.mu.Lock()
	gate := fs.submitGate
	fs.mu.Unlock()
	if gate != nil {
		<-gate
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.submits = append(fs.submits, req.URL)
	fs.progressIndex = 0

	if fs.submitStatus != http.StatusOK {
		if raw, ok := fs.submitBody.(string); ok {
			c.String(fs.submitStatus, raw)
			return
		}
		c.JSON(fs.submitStatus, fs.submitBody)
		return
	}

	id := fs.taskIDs[0]
	if len(fs.taskIDs) > 1 {
		fs.taskIDs = fs.taskIDs[1:]
	}
	c.JSON(http.StatusOK, gin.H{"task_id": id, "message": "Conversion started"})
}

func (fs *fakeService) getProgress(c *gin.Context) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.progressCalls = append(fs.progressCalls, c.Param("id"))

	if fs.progressStatus != http.StatusOK {
		c.JSON(fs.progressStatus, gin.H{"error": "internal error"})
		return
	}
	if fs.progressRaw != "" {
		c.String(http.StatusOK, fs.progressRaw)
		return
	}

	value := 0
	if len(fs.progress) > 0 {
		i := fs.progressIndex
		if i >= len(fs.progress) {
			i = len(fs.progress) - 1
		}
		value = fs.progress[i]
		fs.progressIndex++
	}
	c.JSON(http.StatusOK, gin.H{"progress": value})
}

func (fs *fakeService) download(c *gin.Context) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.downloads = append(fs.downloads, c.Param("id"))

	if fs.artifact == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	if fs.artifactName != "" {
		c.Header("Content-Disposition", `attachment; filename="`+fs.artifactName+`"`)
	}
	c.Data(http.StatusOK, fs.artifactType, fs.artifact)
}

func (fs *fakeService) counts() (submits, polls, downloads int) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.submits), len(fs.progressCalls), len(fs.downloads)
}

func (fs *fakeService) polledIDs() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]string(nil), fs.progressCalls...)
}

// recorder collects every update the service publishes
type recorder struct {
	mu      sync.Mutex
	updates []model.ConversionTask
	ch      chan model.ConversionTask
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan model.ConversionTask, 256)}
}

func (r *recorder) callback(task model.ConversionTask) {
	r.mu.Lock()
	r.updates = append(r.updates, task)
	r.mu.Unlock()
	r.ch <- task
}

func (r *recorder) all() []model.ConversionTask {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.ConversionTask(nil), r.updates...)
}

// waitForState blocks until an update with the given state arrives
func (r *recorder) waitForState(t *testing.T, state model.ClientState) model.ConversionTask {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case task := <-r.ch:
			if task.State == state {
				return task
			}
		case <-timeout:
			t.Fatalf("Timed out waiting for state %s", state)
			return model.ConversionTask{}
		}
	}
}

func newTestService(t *testing.T, server *httptest.Server, interval time.Duration) (*Service, *recorder) {
	t.Helper()
	api, err := NewAPIClient(server.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewAPIClient() returned error: %v", err)
	}

	svc := NewService(api, interval)
	rec := newRecorder()
	svc.SetUpdateCallback(rec.callback)
	t.Cleanup(svc.Close)
	return svc, rec
}
