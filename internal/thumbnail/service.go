// Package thumbnail downloads thumbnail images concurrently with a bounded
// number of workers and reports every finished download through a callback.
package thumbnail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // thumbnails are served as jpeg
	_ "image/png"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/ytget/yt-optimizer/internal/model"
)

const (
	DefaultMaxParallel = 4
	MaxParallelLimit   = 10
	FetchTimeout       = 5 * time.Second
	MaxImageBytes      = 5 << 20
	TaskIDPrefix       = "thumb-"
)

// User-facing failure texts
const (
	ErrTextFailed  = "Failed"
	ErrTextInvalid = "Invalid"
	ErrTextError   = "Error"
)

var errTooLarge = errors.New("image exceeds size limit")

// Service fetches thumbnails with bounded concurrency
type Service struct {
	client      *http.Client
	maxParallel int
	limiter     *rate.Limiter
	mu          sync.RWMutex
	onUpdate    func(*model.ThumbnailTask) // callback for UI updates
}

// NewService creates a new thumbnail service. A nil client uses a client with
// FetchTimeout.
func NewService(client *http.Client, maxParallel int) *Service {
	if client == nil {
		client = &http.Client{Timeout: FetchTimeout}
	}
	return &Service{
		client:      client,
		maxParallel: clampParallel(maxParallel),
	}
}

// SetUpdateCallback sets the callback invoked once per finished task. It is
// called from worker goroutines.
func (s *Service) SetUpdateCallback(callback func(*model.ThumbnailTask)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetMaxParallel sets the number of concurrent downloads
func (s *Service) SetMaxParallel(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxParallel = clampParallel(n)
}

// SetRateLimit paces download starts; zero or less disables pacing
func (s *Service) SetRateLimit(perSecond float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if perSecond <= 0 {
		s.limiter = nil
		return
	}
	s.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
}

// FetchAll downloads every URL and blocks until all tasks are finished.
// Cancelling ctx stops pending downloads, which are reported as canceled.
func (s *Service) FetchAll(ctx context.Context, urls []string) []*model.ThumbnailTask {
	s.mu.RLock()
	maxParallel := s.maxParallel
	limiter := s.limiter
	s.mu.RUnlock()

	tasks := make([]*model.ThumbnailTask, len(urls))
	for i, u := range urls {
		tasks[i] = &model.ThumbnailTask{
			ID:     generateTaskID(),
			Index:  i,
			URL:    u,
			Status: model.ThumbnailStatusPending,
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(maxParallel)
	for _, task := range tasks {
		g.Go(func() error {
			s.fetch(ctx, limiter, task)
			s.notifyUpdate(task)
			return nil
		})
	}
	_ = g.Wait()

	return tasks
}

func (s *Service) fetch(ctx context.Context, limiter *rate.Limiter, task *model.ThumbnailTask) {
	if ctx.Err() != nil {
		task.Status = model.ThumbnailStatusCanceled
		return
	}
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			task.Status = model.ThumbnailStatusCanceled
			return
		}
	}

	task.Status = model.ThumbnailStatusFetching
	data, contentType, err := s.download(ctx, task.URL)
	switch {
	case err == nil:
		task.Status = model.ThumbnailStatusComplete
		task.Data = data
		task.ContentType = contentType
	case ctx.Err() != nil:
		task.Status = model.ThumbnailStatusCanceled
	default:
		log.Printf("Thumbnail %s failed: %v", task.URL, err)
		task.Status = model.ThumbnailStatusError
		task.LastError = failureText(err)
	}
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

type decodeError struct {
	err error
}

func (e *decodeError) Error() string {
	return "decode image: " + e.err.Error()
}

func (s *Service) download(ctx context.Context, url string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &statusError{code: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, "", err
	}
	if len(data) > MaxImageBytes {
		return nil, "", errTooLarge
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, "", &decodeError{err: err}
	}

	return data, resp.Header.Get("Content-Type"), nil
}

// failureText maps an error to the short label shown in place of the image
func failureText(err error) string {
	var se *statusError
	var de *decodeError
	switch {
	case errors.As(err, &se):
		return ErrTextFailed
	case errors.As(err, &de), errors.Is(err, errTooLarge):
		return ErrTextInvalid
	default:
		return ErrTextError
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.ThumbnailTask) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()
	if callback != nil {
		callback(task)
	}
}

func clampParallel(n int) int {
	if n < 1 {
		return DefaultMaxParallel
	}
	if n > MaxParallelLimit {
		return MaxParallelLimit
	}
	return n
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return TaskIDPrefix + uuid.New().String()
}
