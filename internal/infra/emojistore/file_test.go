package emojistore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFileIsEmptyMapping(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "emoji.json"))

	if _, ok := store.Lookup(context.Background(), "partyparrot"); ok {
		t.Fatal("expected empty store to miss")
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty snapshot, got %d entries", store.Len())
	}
}

func TestFileStoreReplaceAndLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emoji.json")
	store := NewFileStore(path)

	err := store.Replace(context.Background(), map[string]string{
		"partyparrot": "https://emoji.example.com/partyparrot.gif",
	})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	url, ok := store.Lookup(context.Background(), "partyparrot")
	if !ok || url != "https://emoji.example.com/partyparrot.gif" {
		t.Fatalf("lookup = %q, %v", url, ok)
	}

	// a fresh store picks the persisted mapping back up
	reloaded := NewFileStore(path)
	if _, ok := reloaded.Lookup(context.Background(), "partyparrot"); !ok {
		t.Fatal("expected persisted mapping to survive a reload")
	}
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emoji.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(path)
	if store.Len() != 0 {
		t.Fatalf("expected corrupt file to load as empty, got %d entries", store.Len())
	}
}
