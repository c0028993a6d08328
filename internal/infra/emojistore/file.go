// Package emojistore holds the process-wide custom emoji mapping, written
// by the refresh job and read on every request.
package emojistore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/pkg/errors"
)

// FileStore keeps the emoji mapping in an immutable snapshot swapped
// atomically on refresh, and persists it as JSON so restarts start from the
// last successful fetch. A missing file is a valid empty mapping.
type FileStore struct {
	path     string
	snapshot atomic.Pointer[map[string]string]
}

func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path}

	snapshot := map[string]string{}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, &snapshot); err != nil {
			slog.Warn("discarding unreadable emoji cache file",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
			snapshot = map[string]string{}
		}
	} else if !os.IsNotExist(err) {
		slog.Warn("failed to read emoji cache file",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
	}

	s.snapshot.Store(&snapshot)
	return s
}

// Replace swaps in the new mapping and persists it. The snapshot is only
// replaced after a successful write, so a failed refresh never clears the
// previous mapping.
func (s *FileStore) Replace(ctx context.Context, emojis map[string]string) error {
	data, err := json.MarshalIndent(emojis, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode emoji mapping")
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write emoji cache file")
	}

	s.snapshot.Store(&emojis)
	return nil
}

func (s *FileStore) Lookup(ctx context.Context, name string) (string, bool) {
	snapshot := *s.snapshot.Load()
	url, ok := snapshot[name]
	return url, ok
}

// Len reports the size of the current snapshot.
func (s *FileStore) Len() int {
	return len(*s.snapshot.Load())
}
