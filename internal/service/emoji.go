package service

import (
	"context"
	"log/slog"
	"time"
)

// EmojiSource lists the workspace's custom emoji.
type EmojiSource interface {
	ListEmoji(ctx context.Context) (map[string]string, error)
}

// EmojiStore receives the refreshed mapping.
type EmojiStore interface {
	Replace(ctx context.Context, emojis map[string]string) error
}

// EmojiService keeps the custom emoji mapping fresh. A failed refresh
// leaves the previous mapping in place.
type EmojiService struct {
	source   EmojiSource
	store    EmojiStore
	interval time.Duration
}

func NewEmojiService(source EmojiSource, store EmojiStore, interval time.Duration) *EmojiService {
	return &EmojiService{
		source:   source,
		store:    store,
		interval: interval,
	}
}

// Refresh fetches the full emoji list and replaces the store's mapping.
func (s *EmojiService) Refresh(ctx context.Context) error {
	emojis, err := s.source.ListEmoji(ctx)
	if err != nil {
		slog.Error("failed to fetch emoji list",
			slog.String("error", err.Error()),
			slog.String("module", "emoji"),
		)
		return err
	}

	if err := s.store.Replace(ctx, emojis); err != nil {
		slog.Error("failed to store emoji list",
			slog.String("error", err.Error()),
			slog.String("module", "emoji"),
		)
		return err
	}

	slog.Info("refreshed emoji mapping",
		slog.Int("count", len(emojis)),
		slog.String("module", "emoji"),
	)
	return nil
}

// Run refreshes once immediately and then on the configured interval until
// the context is cancelled. Refresh errors are logged, never fatal.
func (s *EmojiService) Run(ctx context.Context) {
	s.Refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}
