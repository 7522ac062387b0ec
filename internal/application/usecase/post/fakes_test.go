package post

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/minhvu/blogspace/internal/domain/post"
	"github.com/minhvu/blogspace/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...zap.Field)         {}
func (nopLogger) Warn(string, ...zap.Field)         {}
func (nopLogger) Error(string, error, ...zap.Field) {}
func (nopLogger) Fatal(string, error, ...zap.Field) {}
func (l nopLogger) With(...zap.Field) logger.Logger { return l }
func (nopLogger) Sync() error                       { return nil }

// fakePostRepo mirrors the SQL repo's contract, including the author_id
// condition on every mutating call.
type fakePostRepo struct {
	posts  map[int64]*post.Post
	nextID int64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[int64]*post.Post)}
}

func (r *fakePostRepo) Create(_ context.Context, p *post.Post) error {
	r.nextID++
	p.ID = r.nextID
	stored := *p
	r.posts[p.ID] = &stored
	return nil
}

func (r *fakePostRepo) FindByID(_ context.Context, id int64) (*post.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	found := *p
	return &found, nil
}

func (r *fakePostRepo) UpdatePartial(_ context.Context, id, authorID int64, patch post.UpdatePatch) (*post.Post, error) {
	p, ok := r.posts[id]
	if !ok || p.AuthorID != authorID {
		return nil, post.ErrPostNotFound
	}
	patch.Apply(p)
	updated := *p
	return &updated, nil
}

func (r *fakePostRepo) SetPublished(_ context.Context, id, authorID int64, published bool) (*post.Post, error) {
	p, ok := r.posts[id]
	if !ok || p.AuthorID != authorID {
		return nil, post.ErrPostNotFound
	}
	p.Published = published
	updated := *p
	return &updated, nil
}

func (r *fakePostRepo) Delete(_ context.Context, id, authorID int64) error {
	p, ok := r.posts[id]
	if !ok || p.AuthorID != authorID {
		return post.ErrPostNotFound
	}
	delete(r.posts, p.ID)
	return nil
}

func (r *fakePostRepo) ListByAuthor(_ context.Context, authorID int64) ([]*post.Post, error) {
	out := make([]*post.Post, 0)
	for _, p := range r.posts {
		if p.AuthorID == authorID {
			found := *p
			out = append(out, &found)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePostRepo) ListPublished(_ context.Context) ([]*post.Post, error) {
	out := make([]*post.Post, 0)
	for _, p := range r.posts {
		if p.Published {
			found := *p
			out = append(out, &found)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
