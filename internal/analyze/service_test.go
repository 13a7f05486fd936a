package analyze

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-optimizer/internal/model"
)

type fakeSearcher struct {
	mu        sync.Mutex
	records   []model.VideoRecord
	err       error
	panicWith any
	block     chan struct{}
	topics    []string
	maxSeen   []int
	videoIDs  [][]string
}

func (f *fakeSearcher) Search(ctx context.Context, topic string, maxResults int) ([]model.VideoRecord, error) {
	f.mu.Lock()
	f.topics = append(f.topics, topic)
	f.maxSeen = append(f.maxSeen, maxResults)
	f.mu.Unlock()

	if f.panicWith != nil {
		panic(f.panicWith)
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.records, f.err
}

func (f *fakeSearcher) Videos(ctx context.Context, ids []string) ([]model.VideoRecord, error) {
	f.mu.Lock()
	f.videoIDs = append(f.videoIDs, ids)
	f.mu.Unlock()
	return f.records, f.err
}

type fakeResolver struct {
	ids []string
	err error
}

func (f *fakeResolver) ResolveVideoIDs(ctx context.Context, rawURL string, limit int) ([]string, error) {
	return f.ids, f.err
}

// collect records every update and signals final ones on done
func collect(s *Service) (*[]*model.SearchJob, *sync.Mutex, chan *model.SearchJob) {
	var (
		mu      sync.Mutex
		updates []*model.SearchJob
	)
	done := make(chan *model.SearchJob, 10)
	s.SetUpdateCallback(func(job *model.SearchJob) {
		mu.Lock()
		updates = append(updates, job)
		mu.Unlock()
		if job.Status.IsFinished() {
			done <- job
		}
	})
	return &updates, &mu, done
}

func waitFinal(t *testing.T, done chan *model.SearchJob) *model.SearchJob {
	t.Helper()
	select {
	case job := <-done:
		return job
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for job to finish")
		return nil
	}
}

func assertNoMoreFinals(t *testing.T, done chan *model.SearchJob) {
	t.Helper()
	select {
	case job := <-done:
		t.Fatalf("unexpected second final update: %+v", job)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNewService(t *testing.T) {
	service := NewService(&fakeSearcher{}, nil, 20)

	assert.Equal(t, 20, service.maxResults)
	assert.Empty(t, service.jobs)
	assert.Nil(t, service.resolver)
}

func TestSubmit_EmptyTopic(t *testing.T) {
	searcher := &fakeSearcher{}
	service := NewService(searcher, nil, 20)

	for _, topic := range []string{"", "   ", "\t\n"} {
		job, err := service.Submit(topic)
		assert.ErrorIs(t, err, ErrEmptyTopic)
		assert.Nil(t, job)
	}
	assert.Empty(t, service.GetAllJobs())
	assert.Empty(t, searcher.topics)
}

func TestSubmit_Success(t *testing.T) {
	searcher := &fakeSearcher{records: []model.VideoRecord{
		{Title: "low", ViewCount: model.KnownViewCount(1), Tags: []string{"Go"}},
		{Title: "high", ViewCount: model.KnownViewCount(100), Tags: []string{"go"}},
	}}
	service := NewService(searcher, nil, 20)
	updates, mu, done := collect(service)

	job, err := service.Submit("  golang  ")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(job.ID, JobIDPrefix))
	assert.Equal(t, "golang", job.Topic)

	final := waitFinal(t, done)
	assertNoMoreFinals(t, done)

	assert.Equal(t, model.JobStatusCompleted, final.Status)
	assert.Empty(t, final.LastError)
	assert.Equal(t, 2, final.Videos)
	require.Len(t, final.Result.TitleSuggestions, 2)
	assert.Equal(t, "high", final.Result.TitleSuggestions[0].Title)
	assert.Equal(t, []string{"go"}, final.Result.KeywordSuggestions)
	assert.False(t, final.FinishedAt.IsZero())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, *updates, 2)
	assert.Equal(t, model.JobStatusSearching, (*updates)[0].Status)
	assert.Equal(t, []int{20}, searcher.maxSeen)

	stored, ok := service.GetJob(job.ID)
	require.True(t, ok)
	assert.Equal(t, model.JobStatusCompleted, stored.Status)
}

func TestSubmit_EmptyResultsIsSuccess(t *testing.T) {
	service := NewService(&fakeSearcher{records: []model.VideoRecord{}}, nil, 20)
	_, _, done := collect(service)

	_, err := service.Submit("nothing matches")
	require.NoError(t, err)

	final := waitFinal(t, done)
	assert.Equal(t, model.JobStatusCompleted, final.Status)
	assert.True(t, final.Result.IsEmpty())
}

func TestSubmit_Failure(t *testing.T) {
	service := NewService(&fakeSearcher{err: errors.New("quota exceeded")}, nil, 20)
	_, _, done := collect(service)

	_, err := service.Submit("topic")
	require.NoError(t, err)

	final := waitFinal(t, done)
	assertNoMoreFinals(t, done)
	assert.Equal(t, model.JobStatusError, final.Status)
	assert.Equal(t, "quota exceeded", final.LastError)
	assert.True(t, final.Result.IsEmpty())
}

func TestSubmit_PanicReportedAsError(t *testing.T) {
	service := NewService(&fakeSearcher{panicWith: "nil map"}, nil, 20)
	_, _, done := collect(service)

	_, err := service.Submit("topic")
	require.NoError(t, err)

	final := waitFinal(t, done)
	assertNoMoreFinals(t, done)
	assert.Equal(t, model.JobStatusError, final.Status)
	assert.Contains(t, final.LastError, "nil map")
}

func TestSubmit_PrunesFinishedJobs(t *testing.T) {
	service := NewService(&fakeSearcher{records: []model.VideoRecord{}}, nil, 20)
	_, _, done := collect(service)

	first, err := service.Submit("first")
	require.NoError(t, err)
	waitFinal(t, done)

	second, err := service.Submit("second")
	require.NoError(t, err)
	waitFinal(t, done)

	_, exists := service.GetJob(first.ID)
	assert.False(t, exists, "finished job should be pruned on the next submit")

	jobs := service.GetAllJobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, second.ID, jobs[0].ID)
}

func TestSubmit_DuplicateActiveTopic(t *testing.T) {
	searcher := &fakeSearcher{block: make(chan struct{})}
	service := NewService(searcher, nil, 20)
	_, _, done := collect(service)

	_, err := service.Submit("topic")
	require.NoError(t, err)

	_, err = service.Submit("topic")
	assert.Error(t, err)

	close(searcher.block)
	waitFinal(t, done)

	_, err = service.Submit("topic")
	assert.NoError(t, err)
	waitFinal(t, done)
}

func TestCancel(t *testing.T) {
	searcher := &fakeSearcher{block: make(chan struct{})}
	service := NewService(searcher, nil, 20)
	_, _, done := collect(service)

	job, err := service.Submit("topic")
	require.NoError(t, err)
	require.NoError(t, service.Cancel(job.ID))

	final := waitFinal(t, done)
	assert.Equal(t, model.JobStatusError, final.Status)
	assert.Equal(t, ErrCanceled.Error(), final.LastError)

	assert.Error(t, service.Cancel(job.ID))
	assert.Error(t, service.Cancel("missing"))
}

func TestPlaylistTopicUsesResolver(t *testing.T) {
	searcher := &fakeSearcher{records: []model.VideoRecord{{Title: "from playlist"}}}
	service := NewService(searcher, &fakeResolver{ids: []string{"a", "b"}}, 20)

	result, err := service.Run(context.Background(), "https://www.youtube.com/playlist?list=PL1")
	require.NoError(t, err)

	assert.Empty(t, searcher.topics)
	require.Len(t, searcher.videoIDs, 1)
	assert.Equal(t, []string{"a", "b"}, searcher.videoIDs[0])
	assert.Equal(t, "from playlist", result.TitleSuggestions[0].Title)
}

func TestPlaylistWithoutResolverIsSearched(t *testing.T) {
	searcher := &fakeSearcher{records: []model.VideoRecord{}}
	service := NewService(searcher, nil, 5)

	_, err := service.Run(context.Background(), "https://www.youtube.com/playlist?list=PL1")
	require.NoError(t, err)

	assert.Len(t, searcher.topics, 1)
	assert.Equal(t, []int{5}, searcher.maxSeen)
}

func TestPlaylistResolverError(t *testing.T) {
	service := NewService(&fakeSearcher{}, &fakeResolver{err: errors.New("private playlist")}, 20)

	_, err := service.Run(context.Background(), "https://www.youtube.com/playlist?list=PL1")
	assert.EqualError(t, err, "private playlist")
}

func TestRun_EmptyTopic(t *testing.T) {
	service := NewService(&fakeSearcher{}, nil, 20)

	_, err := service.Run(context.Background(), " ")
	assert.ErrorIs(t, err, ErrEmptyTopic)
}

func TestSetMaxResults(t *testing.T) {
	searcher := &fakeSearcher{}
	service := NewService(searcher, nil, 20)
	service.SetMaxResults(7)

	_, err := service.Run(context.Background(), "topic")
	require.NoError(t, err)
	assert.Equal(t, []int{7}, searcher.maxSeen)
}

func TestGenerateJobID(t *testing.T) {
	id1 := generateJobID()
	id2 := generateJobID()

	assert.NotEqual(t, id1, id2)
	assert.True(t, strings.HasPrefix(id1, JobIDPrefix))
	assert.Len(t, id1, len(JobIDPrefix)+36)
}
