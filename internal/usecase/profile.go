package usecase

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/userrate/userrate/internal/domain"
	"github.com/userrate/userrate/internal/emoji"
)

var tracer = otel.Tracer("profile")

// ProfileUsecase runs the aggregation pipeline: identity and activity are
// fetched concurrently, the status emoji is rendered against the current
// mapping, and everything is merged into one render model.
type ProfileUsecase struct {
	identity IdentityRepository
	activity ActivityRepository
	emoji    EmojiLookup
}

func NewProfileUsecase(identity IdentityRepository, activity ActivityRepository, emoji EmojiLookup) *ProfileUsecase {
	return &ProfileUsecase{
		identity: identity,
		activity: activity,
		emoji:    emoji,
	}
}

// Resolve builds the render model for one member. The only error it
// returns is domain.NotFoundError; degraded upstreams surface as sentinel
// values inside the model instead.
func (uc *ProfileUsecase) Resolve(ctx context.Context, memberID string) (domain.ProfileRenderModel, error) {
	ctx, span := tracer.Start(ctx, "ProfileUsecase.Resolve")
	defer span.End()

	activityCh := make(chan domain.ActivitySummary, 1)
	go func() {
		activityCh <- uc.activity.Fetch(ctx, memberID)
	}()

	identity, err := uc.identity.Resolve(ctx, memberID)
	if err != nil {
		return domain.ProfileRenderModel{}, err
	}

	activity := <-activityCh
	statusEmoji := emoji.RenderStatus(ctx, identity.StatusEmoji, uc.emoji)

	return domain.BuildProfile(identity, activity, statusEmoji), nil
}
