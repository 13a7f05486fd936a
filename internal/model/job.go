package model

import (
	"time"
)

// SearchJob represents one background analysis of a topic
type SearchJob struct {
	ID         string
	Topic      string
	Status     JobStatus
	Result     SuggestionResult
	LastError  string    // last error message if any
	StartedAt  time.Time // when the job was accepted
	FinishedAt time.Time // when the job reached a final state
	Videos     int       // number of videos that were aggregated
}

// Snapshot returns a copy safe to hand to other goroutines
func (j *SearchJob) Snapshot() *SearchJob {
	c := *j
	return &c
}

// Duration returns how long the job ran, or zero while it is still active
func (j *SearchJob) Duration() time.Duration {
	if j.FinishedAt.IsZero() || j.StartedAt.IsZero() {
		return 0
	}
	return j.FinishedAt.Sub(j.StartedAt)
}

// ThumbnailTask represents a single thumbnail download
type ThumbnailTask struct {
	ID          string
	Index       int // position in the rendered thumbnail list
	URL         string
	Status      ThumbnailStatus
	Data        []byte
	ContentType string
	LastError   string
}
