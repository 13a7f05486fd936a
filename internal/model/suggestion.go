package model

// TitleSuggestion is one ranked title with the data shown next to it
type TitleSuggestion struct {
	Title        string
	ViewCount    ViewCount
	ChannelTitle string
}

// SuggestionResult is the output of aggregating one batch of videos
type SuggestionResult struct {
	TitleSuggestions   []TitleSuggestion
	KeywordSuggestions []string
	// ThumbnailURLs holds distinct URLs in first-seen order, uncapped
	ThumbnailURLs []string
}

// IsEmpty reports whether there is nothing to suggest
func (r SuggestionResult) IsEmpty() bool {
	return len(r.TitleSuggestions) == 0
}

// CappedThumbnails returns at most n thumbnail URLs
func (r SuggestionResult) CappedThumbnails(n int) []string {
	if n < 0 {
		n = 0
	}
	if len(r.ThumbnailURLs) <= n {
		return r.ThumbnailURLs
	}
	return r.ThumbnailURLs[:n]
}
