package analyze

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-optimizer/internal/model"
	"github.com/ytget/yt-optimizer/internal/platform"
	"github.com/ytget/yt-optimizer/internal/suggest"
)

const (
	JobIDPrefix = "search-"
)

var (
	// ErrEmptyTopic is returned for blank topics
	ErrEmptyTopic = errors.New("topic must not be empty")
	// ErrCanceled is reported for jobs stopped through Cancel
	ErrCanceled = errors.New("search canceled")
)

// Service handles analysis jobs
type Service struct {
	jobs       map[string]*model.SearchJob
	cancels    map[string]context.CancelFunc
	jobsMutex  sync.RWMutex
	searcher   Searcher
	resolver   Resolver
	maxResults int
	onUpdate   func(*model.SearchJob) // callback for UI updates
}

// NewService creates a new analysis service. resolver may be nil, in which
// case playlist links are searched as plain topics.
func NewService(searcher Searcher, resolver Resolver, maxResults int) *Service {
	return &Service{
		jobs:       make(map[string]*model.SearchJob),
		cancels:    make(map[string]context.CancelFunc),
		searcher:   searcher,
		resolver:   resolver,
		maxResults: maxResults,
	}
}

// SetUpdateCallback sets the callback function for job updates
func (s *Service) SetUpdateCallback(callback func(*model.SearchJob)) {
	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()
	s.onUpdate = callback
}

// SetMaxResults sets how many videos a search fetches
func (s *Service) SetMaxResults(n int) {
	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()
	s.maxResults = n
}

// Submit starts analysing topic in the background
func (s *Service) Submit(topic string) (*model.SearchJob, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()

	for _, job := range s.jobs {
		if job.Topic == topic && job.Status.IsActive() {
			return nil, fmt.Errorf("search already in progress for topic: %s", topic)
		}
	}
	s.pruneFinishedLocked()

	job := &model.SearchJob{
		ID:        generateJobID(),
		Topic:     topic,
		Status:    model.JobStatusPending,
		StartedAt: time.Now(),
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.jobs[job.ID] = job
	s.cancels[job.ID] = cancel

	go s.runJob(ctx, job)

	return job.Snapshot(), nil
}

// pruneFinishedLocked drops jobs whose final update was already delivered.
// Caller must hold jobsMutex.
func (s *Service) pruneFinishedLocked() {
	for id, job := range s.jobs {
		if job.Status.IsFinished() {
			delete(s.jobs, id)
		}
	}
}

// GetJob returns a job by ID
func (s *Service) GetJob(id string) (*model.SearchJob, bool) {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()
	job, exists := s.jobs[id]
	if !exists {
		return nil, false
	}
	return job.Snapshot(), true
}

// GetAllJobs returns all jobs
func (s *Service) GetAllJobs() []*model.SearchJob {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()

	jobs := make([]*model.SearchJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, job.Snapshot())
	}
	return jobs
}

// Cancel stops a running job; it will finish with ErrCanceled
func (s *Service) Cancel(id string) error {
	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()

	job, exists := s.jobs[id]
	if !exists {
		return fmt.Errorf("job not found: %s", id)
	}
	if !job.Status.IsActive() {
		return fmt.Errorf("job is not active: %s", job.Status)
	}
	if cancel, ok := s.cancels[id]; ok {
		cancel()
	}
	return nil
}

// Run analyses topic synchronously
func (s *Service) Run(ctx context.Context, topic string) (model.SuggestionResult, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return model.SuggestionResult{}, ErrEmptyTopic
	}
	result, _, err := s.analyze(ctx, topic)
	return result, err
}

// runJob executes a job and reports its final state once
func (s *Service) runJob(ctx context.Context, job *model.SearchJob) {
	var (
		result model.SuggestionResult
		videos int
		err    error
	)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Search job %s panicked: %v", job.ID, r)
			err = fmt.Errorf("unexpected error during search: %v", r)
		}
		s.finishJob(job, result, videos, err)
	}()

	s.jobsMutex.Lock()
	job.Status = model.JobStatusSearching
	s.jobsMutex.Unlock()
	s.notifyUpdate(job)

	log.Printf("Search job %s started for topic %q", job.ID, job.Topic)
	result, videos, err = s.analyze(ctx, job.Topic)
	if err != nil && ctx.Err() == context.Canceled {
		err = ErrCanceled
	}
}

func (s *Service) finishJob(job *model.SearchJob, result model.SuggestionResult, videos int, err error) {
	s.jobsMutex.Lock()
	if cancel, ok := s.cancels[job.ID]; ok {
		cancel()
		delete(s.cancels, job.ID)
	}
	if err != nil {
		job.Status = model.JobStatusError
		job.LastError = err.Error()
	} else {
		job.Status = model.JobStatusCompleted
		job.Result = result
		job.Videos = videos
	}
	job.FinishedAt = time.Now()
	s.jobsMutex.Unlock()

	if err != nil {
		log.Printf("Search job %s failed: %v", job.ID, err)
	} else {
		log.Printf("Search job %s completed: %d videos, %d titles, %d keywords",
			job.ID, videos, len(result.TitleSuggestions), len(result.KeywordSuggestions))
	}
	s.notifyUpdate(job)
}

// analyze fetches records for topic and aggregates them
func (s *Service) analyze(ctx context.Context, topic string) (model.SuggestionResult, int, error) {
	s.jobsMutex.RLock()
	maxResults := s.maxResults
	s.jobsMutex.RUnlock()

	var (
		records []model.VideoRecord
		err     error
	)
	if s.resolver != nil && platform.IsPlaylistURL(topic) {
		records, err = s.fetchPlaylist(ctx, topic, maxResults)
	} else {
		records, err = s.searcher.Search(ctx, topic, maxResults)
	}
	if err != nil {
		return model.SuggestionResult{}, 0, err
	}

	return suggest.Aggregate(records), len(records), nil
}

func (s *Service) fetchPlaylist(ctx context.Context, rawURL string, limit int) ([]model.VideoRecord, error) {
	ids, err := s.resolver.ResolveVideoIDs(ctx, rawURL, limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []model.VideoRecord{}, nil
	}
	log.Printf("Resolved playlist %s to %d videos", rawURL, len(ids))
	return s.searcher.Videos(ctx, ids)
}

// notifyUpdate calls the update callback with a copy of the job
func (s *Service) notifyUpdate(job *model.SearchJob) {
	s.jobsMutex.RLock()
	callback := s.onUpdate
	snapshot := job.Snapshot()
	s.jobsMutex.RUnlock()

	if callback != nil {
		callback(snapshot)
	}
}

// generateJobID generates a unique job ID
func generateJobID() string {
	return JobIDPrefix + uuid.New().String()
}
