package model

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// UnknownViewCountText is shown when the upstream source omits the view count
const UnknownViewCountText = "N/A"

// ViewCount keeps the upstream view count for display separately from the
// numeric value used for ranking. The zero value is an unknown count.
type ViewCount struct {
	value uint64
	known bool
	raw   string
}

// KnownViewCount returns a view count with a numeric value
func KnownViewCount(n uint64) ViewCount {
	return ViewCount{value: n, known: true, raw: strconv.FormatUint(n, 10)}
}

// UnknownViewCount returns the "unknown" sentinel
func UnknownViewCount() ViewCount {
	return ViewCount{raw: UnknownViewCountText}
}

// ParseViewCount converts the raw upstream value. Only plain decimal digits
// are treated as a known count; anything else is kept verbatim as unknown.
func ParseViewCount(raw string) ViewCount {
	if raw == "" {
		return UnknownViewCount()
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return ViewCount{raw: raw}
		}
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return ViewCount{raw: raw}
	}
	return ViewCount{value: n, known: true, raw: raw}
}

// IsKnown reports whether the count carries a numeric value
func (vc ViewCount) IsKnown() bool {
	return vc.known
}

// RankValue returns the sort weight: the count itself, or 0 when unknown
func (vc ViewCount) RankValue() uint64 {
	if !vc.known {
		return 0
	}
	return vc.value
}

// String returns a known count in plain decimal, or the raw upstream text
// ("N/A" when empty) for an unknown one
func (vc ViewCount) String() string {
	if vc.known {
		return strconv.FormatUint(vc.value, 10)
	}
	if vc.raw == "" {
		return UnknownViewCountText
	}
	return vc.raw
}

// Display formats a known count with locale digit grouping ("1,234,567" for
// English). Unknown counts are returned as-is.
func (vc ViewCount) Display(lang string) string {
	if !vc.known {
		return vc.String()
	}
	tag := language.English
	if lang != "" && lang != "system" {
		if parsed, err := language.Parse(lang); err == nil {
			tag = parsed
		}
	}
	return message.NewPrinter(tag).Sprintf("%d", vc.value)
}

// VideoRecord is the normalized representation of one fetched video.
// Records are produced by the search client and never modified afterwards.
type VideoRecord struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ChannelTitle string    `json:"channel_title"`
	ThumbnailURL string    `json:"thumbnail_url"`
	ViewCount    ViewCount `json:"-"`
	Tags         []string  `json:"tags"`
}
