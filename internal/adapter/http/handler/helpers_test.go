package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/millbooks/millbooks/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unknown category", err: domain.ErrUnknownCategory, want: http.StatusNotFound},
		{name: "snapshot not found", err: domain.ErrSnapshotNotFound, want: http.StatusNotFound},
		{name: "anything else", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.want {
				t.Fatalf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestParseIntQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "present", query: "limit=7", want: 7},
		{name: "absent", query: "", want: 20},
		{name: "not a number", query: "limit=seven", want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			if got := parseIntQuery(req, "limit", 20); got != tt.want {
				t.Fatalf("parseIntQuery = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseTimeQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?from=2024-05-01T00:00:00Z&bad=yesterday", nil)

	if got := parseTimeQuery(req, "from"); got == nil || got.Day() != 1 {
		t.Fatalf("expected parsed time, got %v", got)
	}
	if got := parseTimeQuery(req, "bad"); got != nil {
		t.Fatalf("malformed value should yield nil, got %v", got)
	}
	if got := parseTimeQuery(req, "missing"); got != nil {
		t.Fatalf("absent value should yield nil, got %v", got)
	}
}
