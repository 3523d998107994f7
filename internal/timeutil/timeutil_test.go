package timeutil

import (
	"testing"
	"time"
)

func TestMillisRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	raw := FormatMillis(now)
	parsed, err := ParseMillis(raw)
	if err != nil {
		t.Fatalf("failed to parse millis: %v", err)
	}
	if !parsed.Equal(now) {
		t.Fatalf("round trip mismatch: got %v, want %v", parsed, now)
	}
	if Millis(now) != now.UnixMilli() {
		t.Fatalf("unexpected millis value")
	}
}

func TestParseMillisInvalid(t *testing.T) {
	for _, raw := range []string{"", "undefined", "12.5", "abc"} {
		if _, err := ParseMillis(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
