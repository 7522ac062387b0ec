package post

import (
	"context"
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdatePatch is a sparse partial update: only non-nil fields are written,
// omitted fields keep their previous values.
type UpdatePatch struct {
	Title   *string
	Content *string
}

func (p UpdatePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}

// Apply merges the patch into the post. Applying the same patch twice yields
// the same final state.
func (p UpdatePatch) Apply(target *Post) {
	if p.Title != nil {
		target.Title = *p.Title
	}
	if p.Content != nil {
		target.Content = *p.Content
	}
}

type Repository interface {
	// Create persists the post and fills in its generated id.
	Create(ctx context.Context, p *Post) error
	FindByID(ctx context.Context, id int64) (*Post, error)

	// The mutating operations are conditional on author_id at the SQL level,
	// so a concurrent request can never mutate across author boundaries even
	// after the ownership guard has passed. They return ErrPostNotFound when
	// no row matches both id and author.
	UpdatePartial(ctx context.Context, id, authorID int64, patch UpdatePatch) (*Post, error)
	SetPublished(ctx context.Context, id, authorID int64, published bool) (*Post, error)
	Delete(ctx context.Context, id, authorID int64) error

	ListByAuthor(ctx context.Context, authorID int64) ([]*Post, error)
	ListPublished(ctx context.Context) ([]*Post, error)
}
