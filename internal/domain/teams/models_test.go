package teams

import "testing"

func TestPlaceholder(t *testing.T) {
	got := Placeholder("64f1a2b3c4d5e6f7a8b9c0d1")
	if got.Name != "Team c0d1" {
		t.Fatalf("expected last-four placeholder name, got %q", got.Name)
	}
	if got.ID != "64f1a2b3c4d5e6f7a8b9c0d1" {
		t.Fatalf("expected placeholder to keep the id")
	}

	if got := Placeholder("ab"); got.Name != "Team ab" {
		t.Fatalf("expected short ids used whole, got %q", got.Name)
	}

	if got := Placeholder(""); got.Name != "Unknown" || got.ID != "" {
		t.Fatalf("expected Unknown team for empty id, got %+v", got)
	}
}
