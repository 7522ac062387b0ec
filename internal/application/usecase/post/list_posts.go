package post

import (
	"context"
	"fmt"

	"github.com/minhvu/blogspace/internal/domain/post"
	"github.com/minhvu/blogspace/pkg/auth"
)

// ListPostsUseCase backs the query side: the public feed of published posts
// and the caller's own posts.
type ListPostsUseCase struct {
	postRepo post.Repository
}

func NewListPostsUseCase(pRepo post.Repository) *ListPostsUseCase {
	return &ListPostsUseCase{postRepo: pRepo}
}

func (uc *ListPostsUseCase) Feed(ctx context.Context) ([]*post.Post, error) {
	posts, err := uc.postRepo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published posts failed: %w", err)
	}
	return posts, nil
}

func (uc *ListPostsUseCase) ByAuthor(ctx context.Context, caller *auth.Identity) ([]*post.Post, error) {
	if caller == nil {
		return nil, fmt.Errorf("forbidden access")
	}

	posts, err := uc.postRepo.ListByAuthor(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("list posts by author failed: %w", err)
	}
	return posts, nil
}
