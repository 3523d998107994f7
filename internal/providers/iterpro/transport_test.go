package iterpro

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("expected default base url, got %q", got)
	}
	if got := normalizeBaseURL("https://x.test/api/"); got != "https://x.test/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", got)
	}
}

func TestResolveHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: time.Second}
	if got := resolveHTTPClient(custom); got != custom {
		t.Fatalf("expected custom client preserved")
	}

	fallback, ok := resolveHTTPClient(nil).(*http.Client)
	if !ok || fallback.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default client with timeout, got %#v", fallback)
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter("30"); got != 30*time.Second {
		t.Fatalf("expected 30s, got %v", got)
	}
	for _, raw := range []string{"", "soon", "-5"} {
		if got := parseRetryAfter(raw); got != 0 {
			t.Fatalf("expected zero for %q, got %v", raw, got)
		}
	}
}
