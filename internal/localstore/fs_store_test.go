package localstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFSStoreRoundTrip(t *testing.T) {
	store := NewFSStore(filepath.Join(t.TempDir(), "nested"))

	if _, ok := store.Get(KeyRosterPayload); ok {
		t.Fatalf("expected miss for absent key")
	}

	if err := store.Set(KeyRosterPayload, `[{"id":"p1"}]`); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	got, ok := store.Get(KeyRosterPayload)
	if !ok || got != `[{"id":"p1"}]` {
		t.Fatalf("unexpected read: %q ok=%v", got, ok)
	}

	store.Remove(KeyRosterPayload)
	if _, ok := store.Get(KeyRosterPayload); ok {
		t.Fatalf("expected key removed")
	}
	// Removing again is harmless.
	store.Remove(KeyRosterPayload)
}

func TestFSStoreAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	store := NewFSStore(dir)

	if err := store.Set(KeyRosterStamp, "1700000000000"); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to list dir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestFSStoreNilAndEmptyKey(t *testing.T) {
	var nilStore *FSStore
	if _, ok := nilStore.Get("k"); ok {
		t.Fatalf("expected nil store to miss")
	}
	if err := nilStore.Set("k", "v"); err == nil {
		t.Fatalf("expected nil store set to fail")
	}
	nilStore.Remove("k")

	store := NewFSStore(t.TempDir())
	if _, ok := store.Get(""); ok {
		t.Fatalf("expected empty key to miss")
	}
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()
	if err := store.Set(KeySearchTerm, "messi"); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	if got, ok := store.Get(KeySearchTerm); !ok || got != "messi" {
		t.Fatalf("unexpected read: %q ok=%v", got, ok)
	}
	store.Remove(KeySearchTerm)
	if _, ok := store.Get(KeySearchTerm); ok {
		t.Fatalf("expected removal")
	}
}
