package analyze

import (
	"context"

	"github.com/ytget/yt-optimizer/internal/model"
)

// Searcher fetches video records from the upstream API
type Searcher interface {
	Search(ctx context.Context, topic string, maxResults int) ([]model.VideoRecord, error)
	Videos(ctx context.Context, ids []string) ([]model.VideoRecord, error)
}

// Resolver turns a playlist link into video ids
type Resolver interface {
	ResolveVideoIDs(ctx context.Context, rawURL string, limit int) ([]string, error)
}

// Analyzer defines the interface for the analysis service.
type Analyzer interface {
	SetUpdateCallback(func(*model.SearchJob))
	Submit(topic string) (*model.SearchJob, error)
	GetJob(id string) (*model.SearchJob, bool)
	GetAllJobs() []*model.SearchJob
	Cancel(id string) error

	// SetMaxResults sets how many videos a search fetches
	SetMaxResults(n int)
}
