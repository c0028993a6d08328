package usecase

import (
	"context"

	"github.com/userrate/userrate/internal/domain"
)

// IdentityRepository resolves a member identifier against the workspace API.
type IdentityRepository interface {
	Resolve(ctx context.Context, memberID string) (domain.MemberIdentity, error)
}

// ActivityRepository fetches coding-activity statistics. It never fails;
// unavailable upstreams yield the sentinel summary.
type ActivityRepository interface {
	Fetch(ctx context.Context, memberID string) domain.ActivitySummary
}

// EmojiLookup resolves custom emoji shortnames against the refreshed
// workspace mapping.
type EmojiLookup interface {
	Lookup(ctx context.Context, name string) (string, bool)
}
