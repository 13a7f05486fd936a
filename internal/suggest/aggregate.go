package suggest

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ytget/yt-optimizer/internal/model"
)

// Result caps
const (
	MaxTitleSuggestions   = 10
	MaxKeywordSuggestions = 15
)

// Aggregate computes suggestions for a batch of records. It never fails;
// an empty batch yields an empty result.
//
// Keyword ties are broken by the order in which a tag was first seen.
func Aggregate(records []model.VideoRecord) model.SuggestionResult {
	return model.SuggestionResult{
		TitleSuggestions:   rankTitles(records),
		KeywordSuggestions: rankKeywords(records),
		ThumbnailURLs:      collectThumbnails(records),
	}
}

func rankTitles(records []model.VideoRecord) []model.TitleSuggestion {
	all := make([]model.TitleSuggestion, 0, len(records))
	for _, r := range records {
		all = append(all, model.TitleSuggestion{
			Title:        r.Title,
			ViewCount:    r.ViewCount,
			ChannelTitle: r.ChannelTitle,
		})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].ViewCount.RankValue() > all[j].ViewCount.RankValue()
	})

	seen := make(map[string]struct{}, len(all))
	titles := make([]model.TitleSuggestion, 0, min(len(all), MaxTitleSuggestions))
	for _, s := range all {
		if len(titles) == MaxTitleSuggestions {
			break
		}
		if _, dup := seen[s.Title]; dup {
			continue
		}
		seen[s.Title] = struct{}{}
		titles = append(titles, s)
	}
	return titles
}

type keywordCount struct {
	tag   string
	count int
}

func rankKeywords(records []model.VideoRecord) []string {
	counts := make(map[string]*keywordCount)
	order := make([]*keywordCount, 0)

	for _, r := range records {
		for _, tag := range r.Tags {
			if !isRelevantTag(tag) {
				continue
			}
			key := strings.ToLower(tag)
			if kc, ok := counts[key]; ok {
				kc.count++
				continue
			}
			kc := &keywordCount{tag: key, count: 1}
			counts[key] = kc
			order = append(order, kc)
		}
	}

	// order is already first-seen, so a stable sort keeps ties in that order
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})

	keywords := make([]string, 0, min(len(order), MaxKeywordSuggestions))
	for _, kc := range order {
		if len(keywords) == MaxKeywordSuggestions {
			break
		}
		keywords = append(keywords, kc.tag)
	}
	return keywords
}

// isRelevantTag drops empty tags and tags of a single character once trimmed
func isRelevantTag(tag string) bool {
	if tag == "" {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(tag)) > 1
}

func collectThumbnails(records []model.VideoRecord) []string {
	seen := make(map[string]struct{}, len(records))
	urls := make([]string, 0, len(records))
	for _, r := range records {
		if r.ThumbnailURL == "" {
			continue
		}
		if _, dup := seen[r.ThumbnailURL]; dup {
			continue
		}
		seen[r.ThumbnailURL] = struct{}{}
		urls = append(urls, r.ThumbnailURL)
	}
	return urls
}
