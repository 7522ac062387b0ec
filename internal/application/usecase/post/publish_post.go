package post

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/minhvu/blogspace/adapters/event"
	"github.com/minhvu/blogspace/internal/application/payload"
	"github.com/minhvu/blogspace/internal/domain/post"
	"github.com/minhvu/blogspace/pkg/auth"
	"github.com/minhvu/blogspace/pkg/logger"
)

// PublishPostUseCase flips a post's published flag in either direction; it
// backs both postPublish and postUnpublish.
type PublishPostUseCase struct {
	postRepo  post.Repository
	guard     *OwnershipGuard
	publisher event.Publisher
	logger    logger.Logger
}

func NewPublishPostUseCase(pRepo post.Repository, guard *OwnershipGuard, publisher event.Publisher, log logger.Logger) *PublishPostUseCase {
	return &PublishPostUseCase{
		postRepo:  pRepo,
		guard:     guard,
		publisher: publisher,
		logger:    log,
	}
}

type PublishPostInput struct {
	Caller    *auth.Identity
	PostID    int64
	Published bool
}

func (uc *PublishPostUseCase) Execute(ctx context.Context, input PublishPostInput) (*payload.PostPayload, error) {

	ctx, span := tracer.Start(ctx, "PublishPost")
	defer span.End()

	if input.Caller == nil {
		return payload.PostFailure(msgForbidden), nil
	}

	if objection, err := uc.guard.Check(ctx, input.Caller.UserID, input.PostID); err != nil {
		span.RecordError(err)
		return nil, err
	} else if objection != nil {
		return objection, nil
	}

	updated, err := uc.postRepo.SetPublished(ctx, input.PostID, input.Caller.UserID, input.Published)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return payload.PostFailure(msgPostNotFound), nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("set post published failed: %w", err)
	}

	go func() {
		eventType := event.PostEventTypePublished
		if !input.Published {
			eventType = event.PostEventTypeUnpublished
		}

		err := uc.publisher.PublishPostEvent(context.Background(), event.PostEventPayload{
			EventType: eventType,
			PostID:    updated.ID,
			AuthorID:  updated.AuthorID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish post status event", err, zap.Int64("post_id", updated.ID))
		}
	}()

	return payload.PostSuccess(updated), nil
}
