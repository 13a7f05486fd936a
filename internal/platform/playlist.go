package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultResolveTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam     = "list="
	PlaylistQueryKey  = "list"
	ParamSeparator    = "&"
	MaxPlaylistLength = 5000
)

// playlistLister fetches the video ids of a playlist
type playlistLister func(ctx context.Context, playlistID string) ([]string, error)

// PlaylistResolver turns a playlist URL into the ids of its videos
type PlaylistResolver struct {
	timeout time.Duration
	list    playlistLister
}

// NewPlaylistResolver creates a resolver backed by ytdlp
func NewPlaylistResolver() *PlaylistResolver {
	return &PlaylistResolver{
		timeout: DefaultResolveTimeout,
		list:    listWithYTDLP,
	}
}

// SetTimeout sets the timeout for a single resolve call
func (p *PlaylistResolver) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// IsPlaylistURL reports whether the input looks like a playlist link
func IsPlaylistURL(input string) bool {
	return ExtractPlaylistID(input) != ""
}

// ExtractPlaylistID extracts the playlist id from various URL formats
func ExtractPlaylistID(input string) string {
	input = strings.TrimSpace(input)
	if !strings.Contains(input, PlaylistParam) {
		return ""
	}
	if u, err := url.Parse(input); err == nil && u.Host != "" {
		return u.Query().Get(PlaylistQueryKey)
	}
	parts := strings.SplitN(input, PlaylistParam, 2)
	return strings.Split(parts[1], ParamSeparator)[0]
}

// ResolveVideoIDs returns at most limit video ids of the playlist behind
// rawURL, in playlist order. A limit of zero or less means no limit.
func (p *PlaylistResolver) ResolveVideoIDs(ctx context.Context, rawURL string, limit int) ([]string, error) {
	playlistID := ExtractPlaylistID(rawURL)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", rawURL)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	ids, err := p.list(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func listWithYTDLP(ctx context.Context, playlistID string) ([]string, error) {
	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, min(len(items), MaxPlaylistLength))
	for _, it := range items {
		if len(ids) == MaxPlaylistLength {
			break
		}
		ids = append(ids, it.VideoID)
	}
	return ids, nil
}
