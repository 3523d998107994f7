package players

import "testing"

func TestBestName(t *testing.T) {
	p := Player{DisplayName: "Leo Messi", Name: "L. Messi", FirstName: "Leo"}
	if got := p.BestName(); got != "Leo Messi" {
		t.Fatalf("expected displayName preferred, got %q", got)
	}

	p.DisplayName = ""
	if got := p.BestName(); got != "L. Messi" {
		t.Fatalf("expected name as second choice, got %q", got)
	}

	p.Name = ""
	if got := p.BestName(); got != "Leo" {
		t.Fatalf("expected firstName as last choice, got %q", got)
	}
}

func TestFullName(t *testing.T) {
	p := Player{DisplayName: "Leo Messi", FirstName: "Lionel", LastName: "Messi"}
	if got := p.FullName(); got != "Leo Messi" {
		t.Fatalf("expected displayName, got %q", got)
	}

	p.DisplayName = ""
	if got := p.FullName(); got != "Lionel Messi" {
		t.Fatalf("expected first+last, got %q", got)
	}

	if got := (Player{LastName: "Messi"}).FullName(); got != "Messi" {
		t.Fatalf("expected missing parts dropped, got %q", got)
	}
	if got := (Player{}).FullName(); got != "" {
		t.Fatalf("expected empty full name, got %q", got)
	}
}
