package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/ytget/yt-optimizer/internal/model"
)

const (
	DefaultBaseURL    = "https://youtube.googleapis.com/"
	DefaultMaxResults = 20
	MaxResultsLimit   = 50
	DefaultTimeout    = 15 * time.Second

	// videos.list accepts at most 50 ids per call
	videosBatchSize = 50
)

// Config configures a Client
type Config struct {
	APIKey string
	// BaseURL overrides the API root; empty uses DefaultBaseURL
	BaseURL string
	// Timeout bounds every API call; zero uses DefaultTimeout
	Timeout time.Duration
	// RequestsPerSecond paces outgoing calls; zero disables pacing
	RequestsPerSecond float64
}

// Client talks to the YouTube Data API v3 through the generated Google client
type Client struct {
	mu      sync.Mutex
	apiKey  string
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
	// svc is built lazily for the current key and dropped when the key changes
	svc *yt.Service
}

// NewClient creates a new search client
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	// generated paths are resolved relative to the endpoint
	baseURL = strings.TrimRight(baseURL, "/") + "/"

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		baseURL: baseURL,
		timeout: timeout,
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return c
}

// HasAPIKey reports whether a key was configured
func (c *Client) HasAPIKey() bool {
	return c.key() != ""
}

// SetAPIKey replaces the key used by subsequent requests
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key = strings.TrimSpace(key)
	if key != c.apiKey {
		c.apiKey = key
		c.svc = nil
	}
}

func (c *Client) key() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKey
}

// service returns the API service bound to the current key
func (c *Client) service(op string) (*yt.Service, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.apiKey == "" {
		return nil, "", &SearchError{Op: op, Reason: ReasonMissingKey, Err: ErrMissingAPIKey}
	}
	if c.svc != nil {
		return c.svc, c.apiKey, nil
	}

	svc, err := yt.NewService(context.Background(),
		option.WithAPIKey(c.apiKey),
		option.WithEndpoint(c.baseURL),
	)
	if err != nil {
		return nil, "", &SearchError{Op: op, Err: fmt.Errorf("create youtube service: %w", err)}
	}
	c.svc = svc
	return svc, c.apiKey, nil
}

// Search runs an exact-phrase video search for topic and returns the detailed
// records of at most maxResults videos. Search hits without a video id are
// skipped; no hits yields an empty slice and no error.
func (c *Client) Search(ctx context.Context, topic string, maxResults int) ([]model.VideoRecord, error) {
	svc, apiKey, err := c.service("search")
	if err != nil {
		return nil, err
	}
	if err := c.wait(ctx, "search"); err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := svc.Search.List([]string{"id", "snippet"}).
		Q(`"` + strings.TrimSpace(topic) + `"`).
		Type("video").
		MaxResults(int64(clampMaxResults(maxResults))).
		SafeSearch("none").
		Context(callCtx).
		Do()
	if err != nil {
		return nil, wrapError(ctx, "search", apiKey, err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		ids = append(ids, item.Id.VideoId)
	}
	if len(ids) == 0 {
		return []model.VideoRecord{}, nil
	}

	return c.Videos(ctx, ids)
}

// Videos looks up snippet and statistics for the given ids, in batches
func (c *Client) Videos(ctx context.Context, ids []string) ([]model.VideoRecord, error) {
	svc, apiKey, err := c.service("videos")
	if err != nil {
		return nil, err
	}

	records := make([]model.VideoRecord, 0, len(ids))
	for start := 0; start < len(ids); start += videosBatchSize {
		end := min(start+videosBatchSize, len(ids))

		if err := c.wait(ctx, "videos"); err != nil {
			return nil, err
		}
		resp, err := c.videosBatch(ctx, svc, ids[start:end])
		if err != nil {
			return nil, wrapError(ctx, "videos", apiKey, err)
		}

		for _, item := range resp.Items {
			if item.Snippet == nil || item.Snippet.Title == "" {
				log.Printf("Skipping video %s without title", item.Id)
				continue
			}
			records = append(records, toRecord(item))
		}
	}
	return records, nil
}

func (c *Client) videosBatch(ctx context.Context, svc *yt.Service, ids []string) (*yt.VideoListResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return svc.Videos.List([]string{"snippet", "statistics"}).
		Id(ids...).
		Context(callCtx).
		Do()
}

func (c *Client) wait(ctx context.Context, op string) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return &SearchError{Op: op, Reason: ReasonNetwork, Err: err}
	}
	return nil
}

func toRecord(item *yt.Video) model.VideoRecord {
	views := viewCount(item.Statistics)

	tags := make([]string, len(item.Snippet.Tags))
	copy(tags, item.Snippet.Tags)

	return model.VideoRecord{
		ID:           item.Id,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ChannelTitle: item.Snippet.ChannelTitle,
		ThumbnailURL: bestThumbnail(item.Snippet.Thumbnails),
		ViewCount:    views,
		Tags:         tags,
	}
}

// viewCount reads the statistics block. The generated type decodes an absent
// viewCount as zero, so a missing or entirely empty block counts as unknown.
func viewCount(s *yt.VideoStatistics) model.ViewCount {
	if s == nil {
		return model.UnknownViewCount()
	}
	if s.ViewCount == 0 && s.LikeCount == 0 && s.CommentCount == 0 && s.FavoriteCount == 0 {
		return model.UnknownViewCount()
	}
	return model.KnownViewCount(s.ViewCount)
}

// bestThumbnail prefers the high resolution image
func bestThumbnail(t *yt.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*yt.Thumbnail{t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}

func clampMaxResults(n int) int {
	if n <= 0 {
		return DefaultMaxResults
	}
	if n > MaxResultsLimit {
		return MaxResultsLimit
	}
	return n
}

// wrapError turns a generated-client failure into a SearchError
func wrapError(ctx context.Context, op, apiKey string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		se := &SearchError{Op: op, StatusCode: apiErr.Code, Message: apiErr.Message, Err: apiErr}
		if len(apiErr.Errors) > 0 {
			se.Reason = apiErr.Errors[0].Reason
		}
		if se.Message == "" {
			se.Message = strings.TrimSpace(apiErr.Body)
		}
		if se.Message == "" {
			se.Message = http.StatusText(apiErr.Code)
		}
		return se
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &SearchError{Op: op, Reason: ReasonNetwork, Err: ctxErr}
		}
		return &SearchError{Op: op, Reason: ReasonNetwork, Err: redactKey(err, apiKey)}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &SearchError{Op: op, Reason: ReasonNetwork, Err: ctxErr}
	}

	return &SearchError{
		Op:         op,
		StatusCode: http.StatusOK,
		Reason:     ReasonMalformedResponse,
		Err:        fmt.Errorf("decode response: %w", err),
	}
}

// redactKey keeps the API key out of *url.Error messages shown to the user
func redactKey(err error, key string) error {
	var urlErr *url.Error
	if key == "" || !errors.As(err, &urlErr) {
		return err
	}
	return errors.New(strings.ReplaceAll(urlErr.Error(), key, "REDACTED"))
}
