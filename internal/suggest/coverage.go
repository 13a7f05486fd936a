package suggest

import "strings"

// KeywordCoverage splits suggested keywords by whether the user's draft
// already contains them
type KeywordCoverage struct {
	Covered []string
	Missing []string
}

// CompareKeywords matches suggestions against a comma-separated draft list.
// Matching is case-insensitive; both slices keep the suggestion order.
func CompareKeywords(draft string, suggestions []string) KeywordCoverage {
	have := make(map[string]struct{})
	for _, part := range strings.Split(draft, ",") {
		kw := strings.ToLower(strings.TrimSpace(part))
		if kw == "" {
			continue
		}
		have[kw] = struct{}{}
	}

	coverage := KeywordCoverage{
		Covered: make([]string, 0),
		Missing: make([]string, 0, len(suggestions)),
	}
	for _, s := range suggestions {
		if _, ok := have[strings.ToLower(strings.TrimSpace(s))]; ok {
			coverage.Covered = append(coverage.Covered, s)
		} else {
			coverage.Missing = append(coverage.Missing, s)
		}
	}
	return coverage
}
