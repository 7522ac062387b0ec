package post

import (
	"context"
	"errors"
	"fmt"

	"github.com/minhvu/blogspace/internal/application/payload"
	"github.com/minhvu/blogspace/internal/domain/post"
)

const (
	msgForbidden    = "Forbidden access"
	msgPostNotFound = "Post not found"
	msgNotYourPost  = "Post does not belong to you"
)

// OwnershipGuard decides whether a caller may mutate an existing post. It is
// consulted by update, delete, publish and unpublish; never by create, which
// references no existing post.
type OwnershipGuard struct {
	postRepo post.Repository
}

func NewOwnershipGuard(pRepo post.Repository) *OwnershipGuard {
	return &OwnershipGuard{postRepo: pRepo}
}

// Check returns a failure payload when the post is missing or owned by
// someone else, and nil when the caller may proceed.
func (g *OwnershipGuard) Check(ctx context.Context, callerID, postID int64) (*payload.PostPayload, error) {
	existing, err := g.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return payload.PostFailure(msgPostNotFound), nil
		}
		return nil, fmt.Errorf("find post failed: %w", err)
	}

	if existing.AuthorID != callerID {
		return payload.PostFailure(msgNotYourPost), nil
	}

	return nil, nil
}
