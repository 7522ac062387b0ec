package post

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/minhvu/blogspace/adapters/event"
	"github.com/minhvu/blogspace/internal/application/payload"
	"github.com/minhvu/blogspace/internal/domain/post"
	"github.com/minhvu/blogspace/pkg/auth"
	"github.com/minhvu/blogspace/pkg/logger"
)

var tracer = otel.Tracer("post_usecase")

type CreatePostUseCase struct {
	postRepo  post.Repository
	publisher event.Publisher
	logger    logger.Logger
}

func NewCreatePostUseCase(pRepo post.Repository, publisher event.Publisher, log logger.Logger) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo:  pRepo,
		publisher: publisher,
		logger:    log,
	}
}

type CreatePostInput struct {
	Caller  *auth.Identity
	Title   string
	Content string
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, input CreatePostInput) (*payload.PostPayload, error) {

	ctx, span := tracer.Start(ctx, "CreatePost")
	defer span.End()

	if input.Caller == nil {
		return payload.PostFailure(msgForbidden), nil
	}

	if input.Title == "" || input.Content == "" {
		return payload.PostFailure("You must provide all data"), nil
	}

	newPost := &post.Post{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: input.Caller.UserID,
	}
	if err := uc.postRepo.Create(ctx, newPost); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("create post failed: %w", err)
	}

	go func() {
		err := uc.publisher.PublishPostEvent(context.Background(), event.PostEventPayload{
			EventType: event.PostEventTypeCreated,
			PostID:    newPost.ID,
			AuthorID:  newPost.AuthorID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish 'created' event", err, zap.Int64("post_id", newPost.ID))
		}
	}()

	return payload.PostSuccess(newPost), nil
}
