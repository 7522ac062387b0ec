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

type UpdatePostUseCase struct {
	postRepo  post.Repository
	guard     *OwnershipGuard
	publisher event.Publisher
	logger    logger.Logger
}

func NewUpdatePostUseCase(pRepo post.Repository, guard *OwnershipGuard, publisher event.Publisher, log logger.Logger) *UpdatePostUseCase {
	return &UpdatePostUseCase{
		postRepo:  pRepo,
		guard:     guard,
		publisher: publisher,
		logger:    log,
	}
}

type UpdatePostInput struct {
	Caller *auth.Identity
	PostID int64
	Patch  post.UpdatePatch
}

// Execute applies a sparse patch: only the supplied fields are written,
// omitted fields keep their previous values.
func (uc *UpdatePostUseCase) Execute(ctx context.Context, input UpdatePostInput) (*payload.PostPayload, error) {

	ctx, span := tracer.Start(ctx, "UpdatePost")
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

	if input.Patch.IsEmpty() {
		return payload.PostFailure("You must provide some data to update"), nil
	}

	updated, err := uc.postRepo.UpdatePartial(ctx, input.PostID, input.Caller.UserID, input.Patch)
	if err != nil {
		// The row can disappear between the guard's read and the write.
		if errors.Is(err, post.ErrPostNotFound) {
			return payload.PostFailure(msgPostNotFound), nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("update post failed: %w", err)
	}

	go func() {
		err := uc.publisher.PublishPostEvent(context.Background(), event.PostEventPayload{
			EventType: event.PostEventTypeUpdated,
			PostID:    updated.ID,
			AuthorID:  updated.AuthorID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish 'updated' event", err, zap.Int64("post_id", updated.ID))
		}
	}()

	return payload.PostSuccess(updated), nil
}
