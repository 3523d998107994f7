package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("SOME_KEY", "value")
	if got := envOrDefault("SOME_KEY", "fallback"); got != "value" {
		t.Fatalf("expected env value, got %q", got)
	}
	if got := envOrDefault("UNSET_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("SOME_DURATION", "30s")
	if got := durationEnvOrDefault("SOME_DURATION", time.Minute); got != 30*time.Second {
		t.Fatalf("expected 30s, got %v", got)
	}

	t.Setenv("BAD_DURATION", "not-a-duration")
	if got := durationEnvOrDefault("BAD_DURATION", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for invalid duration, got %v", got)
	}

	t.Setenv("NEGATIVE_DURATION", "-5s")
	if got := durationEnvOrDefault("NEGATIVE_DURATION", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for negative duration, got %v", got)
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("SOME_INT", "7")
	if got := intEnvOrDefault("SOME_INT", 3); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	t.Setenv("BAD_INT", "seven")
	if got := intEnvOrDefault("BAD_INT", 3); got != 3 {
		t.Fatalf("expected fallback for invalid int, got %d", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"true":  true,
		"YES":   true,
		"0":     false,
		"false": false,
		"no":    false,
	}
	for raw, want := range cases {
		t.Setenv("SOME_BOOL", raw)
		if got := boolEnvOrDefault("SOME_BOOL", !want); got != want {
			t.Fatalf("boolEnvOrDefault(%q) = %v, want %v", raw, got, want)
		}
	}

	t.Setenv("SOME_BOOL", "maybe")
	if got := boolEnvOrDefault("SOME_BOOL", true); got != true {
		t.Fatalf("expected fallback for unparseable bool")
	}
}
