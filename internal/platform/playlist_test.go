package platform

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewPlaylistResolver(t *testing.T) {
	resolver := NewPlaylistResolver()

	if resolver == nil {
		t.Fatal("resolver should not be nil")
	}
	if resolver.timeout != DefaultResolveTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultResolveTimeout, resolver.timeout)
	}
	if resolver.list == nil {
		t.Error("expected default lister to be set")
	}
}

func TestSetTimeout(t *testing.T) {
	resolver := NewPlaylistResolver()
	resolver.SetTimeout(5 * time.Second)

	if resolver.timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", resolver.timeout)
	}
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "playlist page",
			input:    "https://www.youtube.com/playlist?list=PL123abc",
			expected: "PL123abc",
		},
		{
			name:     "watch url with list",
			input:    "https://www.youtube.com/watch?v=abc&list=PLxyz&index=2",
			expected: "PLxyz",
		},
		{
			name:     "bare fragment",
			input:    "list=PLbare&index=3",
			expected: "PLbare",
		},
		{
			name:     "plain topic",
			input:    "Oppo Find X8 Ultra",
			expected: "",
		},
		{
			name:     "video without list",
			input:    "https://www.youtube.com/watch?v=abc",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPlaylistID(tt.input); got != tt.expected {
				t.Errorf("ExtractPlaylistID(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
			if got := IsPlaylistURL(tt.input); got != (tt.expected != "") {
				t.Errorf("IsPlaylistURL(%q) = %v", tt.input, got)
			}
		})
	}
}

func TestResolveVideoIDs(t *testing.T) {
	var gotID string
	resolver := &PlaylistResolver{
		timeout: time.Second,
		list: func(ctx context.Context, playlistID string) ([]string, error) {
			gotID = playlistID
			if _, ok := ctx.Deadline(); !ok {
				t.Error("expected context with deadline")
			}
			return []string{"a", "", "b", "a", "c", "d"}, nil
		},
	}

	ids, err := resolver.ResolveVideoIDs(context.Background(), "https://www.youtube.com/playlist?list=PL1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "PL1" {
		t.Errorf("expected playlist id PL1, got %q", gotID)
	}
	expected := []string{"a", "b", "c"}
	if len(ids) != len(expected) {
		t.Fatalf("expected %d ids, got %d (%v)", len(expected), len(ids), ids)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("id %d: expected %s, got %s", i, expected[i], ids[i])
		}
	}
}

func TestResolveVideoIDs_Errors(t *testing.T) {
	resolver := &PlaylistResolver{
		list: func(ctx context.Context, playlistID string) ([]string, error) {
			return nil, errors.New("boom")
		},
	}

	if _, err := resolver.ResolveVideoIDs(context.Background(), "no playlist here", 0); err == nil {
		t.Error("expected error for input without playlist id")
	}
	if _, err := resolver.ResolveVideoIDs(context.Background(), "https://youtube.com/playlist?list=PL", 0); err == nil {
		t.Error("expected lister error to be returned")
	}
}
