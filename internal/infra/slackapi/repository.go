// Package slackapi talks to the Slack Web API on behalf of the identity
// resolver and the emoji refresh job.
package slackapi

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/slack-go/slack"

	"github.com/userrate/userrate/internal/domain"
)

const fallbackAvatarURL = "https://www.gravatar.com/avatar/?d=identicon"

// api is the slice of the Slack client this package consumes.
type api interface {
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)
	GetUserProfileContext(ctx context.Context, params *slack.GetUserProfileParameters) (*slack.UserProfile, error)
	GetEmojiContext(ctx context.Context) (map[string]string, error)
}

type Repository struct {
	client api
}

func NewRepository(client *slack.Client) *Repository {
	return &Repository{client: client}
}

// Resolve fetches the member record and derives the identity the profile
// page needs. An unresolvable identifier maps to domain.NotFoundError; the
// secondary profile-detail fetch is best effort.
func (r *Repository) Resolve(ctx context.Context, memberID string) (domain.MemberIdentity, error) {
	user, err := r.client.GetUserInfoContext(ctx, memberID)
	if err != nil {
		slog.Debug("member lookup failed",
			slog.String("member", memberID),
			slog.String("error", err.Error()),
		)
		return domain.MemberIdentity{}, domain.NotFoundError{MemberID: memberID}
	}

	displayName := user.Profile.DisplayName
	if displayName == "" {
		displayName = user.RealName
	}

	avatar := user.Profile.ImageOriginal
	if avatar == "" {
		avatar = gravatarURL(user.Profile.Email)
	}

	statusEmoji := user.Profile.StatusEmoji
	statusText := user.Profile.StatusText

	detail, ok := r.fetchDetail(ctx, memberID)
	if statusEmoji == "" && statusText == "" {
		if ok && detail.Title != "" {
			statusText = detail.Title
		} else {
			statusText = user.RealName
		}
	}

	return domain.MemberIdentity{
		ID:                   memberID,
		DisplayName:          displayName,
		AvatarURL:            avatar,
		StatusEmoji:          statusEmoji,
		StatusText:           statusText,
		IsMultiChannelGuest:  user.IsRestricted,
		IsSingleChannelGuest: user.IsUltraRestricted,
		IsAdmin:              user.IsAdmin,
		IsBot:                user.IsBot,
	}, nil
}

// fetchDetail pulls the extended profile. Failure here never aborts the
// pipeline; the detail is simply treated as absent.
func (r *Repository) fetchDetail(ctx context.Context, memberID string) (*slack.UserProfile, bool) {
	profile, err := r.client.GetUserProfileContext(ctx, &slack.GetUserProfileParameters{UserID: memberID})
	if err != nil {
		slog.Warn("profile detail fetch failed",
			slog.String("member", memberID),
			slog.String("error", err.Error()),
		)
		return nil, false
	}
	return profile, profile != nil
}

// ListEmoji fetches the workspace's full custom emoji mapping.
func (r *Repository) ListEmoji(ctx context.Context) (map[string]string, error) {
	return r.client.GetEmojiContext(ctx)
}

// gravatarURL builds the deterministic identicon fallback. An unset email
// short-circuits to the static default instead of hashing an empty string.
func gravatarURL(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fallbackAvatarURL
	}
	hash := md5.Sum([]byte(email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=identicon", hex.EncodeToString(hash[:]))
}
