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

type DeletePostUseCase struct {
	postRepo  post.Repository
	guard     *OwnershipGuard
	publisher event.Publisher
	logger    logger.Logger
}

func NewDeletePostUseCase(pRepo post.Repository, guard *OwnershipGuard, publisher event.Publisher, log logger.Logger) *DeletePostUseCase {
	return &DeletePostUseCase{
		postRepo:  pRepo,
		guard:     guard,
		publisher: publisher,
		logger:    log,
	}
}

type DeletePostInput struct {
	Caller *auth.Identity
	PostID int64
}

// Execute deletes the post and returns its pre-deletion snapshot as the
// payload data.
func (uc *DeletePostUseCase) Execute(ctx context.Context, input DeletePostInput) (*payload.PostPayload, error) {

	ctx, span := tracer.Start(ctx, "DeletePost")
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

	snapshot, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return payload.PostFailure(msgPostNotFound), nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("find post failed: %w", err)
	}

	if err := uc.postRepo.Delete(ctx, input.PostID, input.Caller.UserID); err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return payload.PostFailure(msgPostNotFound), nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("delete post failed: %w", err)
	}

	go func() {
		err := uc.publisher.PublishPostEvent(context.Background(), event.PostEventPayload{
			EventType: event.PostEventTypeDeleted,
			PostID:    snapshot.ID,
			AuthorID:  snapshot.AuthorID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish 'deleted' event", err, zap.Int64("post_id", snapshot.ID))
		}
	}()

	return payload.PostSuccess(snapshot), nil
}
