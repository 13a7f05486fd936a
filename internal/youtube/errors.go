package youtube

import (
	"errors"
	"fmt"
	"strings"
)

// Known upstream error reasons
const (
	ReasonQuotaExceeded      = "quotaExceeded"
	ReasonDailyLimitExceeded = "dailyLimitExceeded"
	ReasonKeyInvalid         = "keyInvalid"
	ReasonMissingKey         = "missingKey"
	ReasonMalformedResponse  = "malformedResponse"
	ReasonNetwork            = "network"
)

// ErrMissingAPIKey is returned (wrapped in SearchError) when no key is configured
var ErrMissingAPIKey = errors.New("YouTube API key is not configured")

// SearchError describes why a search or details lookup failed.
// Its message is meant to be shown to the user verbatim.
type SearchError struct {
	Op         string // "search" or "videos"
	StatusCode int    // HTTP status, 0 when no response was received
	Reason     string // upstream reason code when available
	Message    string // upstream message when available
	Err        error
}

func (e *SearchError) Error() string {
	var b strings.Builder
	b.WriteString("YouTube API error")
	if e.Op != "" {
		b.WriteString(" (" + e.Op + ")")
	}
	if e.StatusCode != 0 {
		b.WriteString(fmt.Sprintf(": %d", e.StatusCode))
	}
	switch {
	case e.Message != "":
		b.WriteString(" - " + e.Message)
	case e.Err != nil:
		b.WriteString(" - " + e.Err.Error())
	}
	return b.String()
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// IsQuotaExceeded reports whether the key ran out of quota
func (e *SearchError) IsQuotaExceeded() bool {
	return e.Reason == ReasonQuotaExceeded || e.Reason == ReasonDailyLimitExceeded
}

// IsInvalidKey reports whether the key is missing or rejected
func (e *SearchError) IsInvalidKey() bool {
	return e.Reason == ReasonKeyInvalid || e.Reason == ReasonMissingKey
}
