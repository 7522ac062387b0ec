package graphql

import (
	"context"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/minhvu/blogspace/internal/application/payload"
	postUC "github.com/minhvu/blogspace/internal/application/usecase/post"
	"github.com/minhvu/blogspace/internal/domain/post"
	"github.com/minhvu/blogspace/pkg/auth"
)

type postInput struct {
	Title   *string
	Content *string
}

// toPatch treats an empty string the same as an omitted field, so
// {title: ""} neither clears the title nor counts as supplied data.
func (in postInput) toPatch() post.UpdatePatch {
	patch := post.UpdatePatch{}
	if in.Title != nil && *in.Title != "" {
		patch.Title = in.Title
	}
	if in.Content != nil && *in.Content != "" {
		patch.Content = in.Content
	}
	return patch
}

func (r *Resolver) PostCreate(ctx context.Context, args struct {
	Post postInput
}) (*postPayloadResolver, error) {
	input := postUC.CreatePostInput{Caller: auth.IdentityFrom(ctx)}
	if args.Post.Title != nil {
		input.Title = *args.Post.Title
	}
	if args.Post.Content != nil {
		input.Content = *args.Post.Content
	}

	p, err := r.createUC.Execute(ctx, input)
	if err != nil {
		return nil, err
	}
	return &postPayloadResolver{p: p, root: r}, nil
}

func (r *Resolver) PostUpdate(ctx context.Context, args struct {
	PostID graphqlgo.ID
	Post   postInput
}) (*postPayloadResolver, error) {
	postID, ok := parseEntityID(args.PostID)
	if !ok {
		return r.postNotFound(), nil
	}

	p, err := r.updateUC.Execute(ctx, postUC.UpdatePostInput{
		Caller: auth.IdentityFrom(ctx),
		PostID: postID,
		Patch:  args.Post.toPatch(),
	})
	if err != nil {
		return nil, err
	}
	return &postPayloadResolver{p: p, root: r}, nil
}

func (r *Resolver) PostDelete(ctx context.Context, args struct {
	PostID graphqlgo.ID
}) (*postPayloadResolver, error) {
	postID, ok := parseEntityID(args.PostID)
	if !ok {
		return r.postNotFound(), nil
	}

	p, err := r.deleteUC.Execute(ctx, postUC.DeletePostInput{
		Caller: auth.IdentityFrom(ctx),
		PostID: postID,
	})
	if err != nil {
		return nil, err
	}
	return &postPayloadResolver{p: p, root: r}, nil
}

func (r *Resolver) PostPublish(ctx context.Context, args struct {
	PostID graphqlgo.ID
}) (*postPayloadResolver, error) {
	return r.setPublished(ctx, args.PostID, true)
}

func (r *Resolver) PostUnpublish(ctx context.Context, args struct {
	PostID graphqlgo.ID
}) (*postPayloadResolver, error) {
	return r.setPublished(ctx, args.PostID, false)
}

func (r *Resolver) setPublished(ctx context.Context, id graphqlgo.ID, published bool) (*postPayloadResolver, error) {
	postID, ok := parseEntityID(id)
	if !ok {
		return r.postNotFound(), nil
	}

	p, err := r.publishUC.Execute(ctx, postUC.PublishPostInput{
		Caller:    auth.IdentityFrom(ctx),
		PostID:    postID,
		Published: published,
	})
	if err != nil {
		return nil, err
	}
	return &postPayloadResolver{p: p, root: r}, nil
}

// postNotFound is the payload for ids that cannot name any post, such as
// non-numeric values.
func (r *Resolver) postNotFound() *postPayloadResolver {
	return &postPayloadResolver{p: payload.PostFailure("Post not found"), root: r}
}

type postPayloadResolver struct {
	p    *payload.PostPayload
	root *Resolver
}

func (r *postPayloadResolver) UserErrors() []*userErrorResolver {
	resolvers := make([]*userErrorResolver, len(r.p.UserErrors))
	for i, e := range r.p.UserErrors {
		resolvers[i] = &userErrorResolver{e: e}
	}
	return resolvers
}

func (r *postPayloadResolver) Post() *postResolver {
	if r.p.Post == nil {
		return nil
	}
	return &postResolver{p: r.p.Post, root: r.root}
}

type postResolver struct {
	p    *post.Post
	root *Resolver
}

func (r *postResolver) ID() graphqlgo.ID { return formatEntityID(r.p.ID) }
func (r *postResolver) Title() string    { return r.p.Title }
func (r *postResolver) Content() string  { return r.p.Content }
func (r *postResolver) Published() bool  { return r.p.Published }

func (r *postResolver) Author(ctx context.Context) (*userResolver, error) {
	u, err := r.root.userRepo.FindByID(ctx, r.p.AuthorID)
	if err != nil {
		return nil, err
	}
	return &userResolver{u: u, root: r.root}, nil
}
