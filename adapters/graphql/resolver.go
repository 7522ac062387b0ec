package graphql

import (
	"context"
	"errors"
	"strconv"

	graphqlgo "github.com/graph-gophers/graphql-go"

	authUC "github.com/minhvu/blogspace/internal/application/usecase/auth"
	postUC "github.com/minhvu/blogspace/internal/application/usecase/post"
	"github.com/minhvu/blogspace/internal/domain/profile"
	"github.com/minhvu/blogspace/internal/domain/user"
	"github.com/minhvu/blogspace/pkg/auth"
)

// Resolver is the schema root. It holds the flows plus the read-side
// repositories needed by field resolvers (Post.author, User.profile).
type Resolver struct {
	signupUC  *authUC.SignupUseCase
	signinUC  *authUC.SigninUseCase
	createUC  *postUC.CreatePostUseCase
	updateUC  *postUC.UpdatePostUseCase
	deleteUC  *postUC.DeletePostUseCase
	publishUC *postUC.PublishPostUseCase
	listUC    *postUC.ListPostsUseCase

	userRepo    user.Repository
	profileRepo profile.Repository
}

func NewResolver(
	signupUC *authUC.SignupUseCase,
	signinUC *authUC.SigninUseCase,
	createUC *postUC.CreatePostUseCase,
	updateUC *postUC.UpdatePostUseCase,
	deleteUC *postUC.DeletePostUseCase,
	publishUC *postUC.PublishPostUseCase,
	listUC *postUC.ListPostsUseCase,
	userRepo user.Repository,
	profileRepo profile.Repository,
) *Resolver {
	return &Resolver{
		signupUC:    signupUC,
		signinUC:    signinUC,
		createUC:    createUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		publishUC:   publishUC,
		listUC:      listUC,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// MustParseSchema builds the executable schema against the root resolver.
func MustParseSchema(r *Resolver) *graphqlgo.Schema {
	return graphqlgo.MustParseSchema(Schema, r)
}

func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	identity := auth.IdentityFrom(ctx)
	if identity == nil {
		return nil, nil
	}

	u, err := r.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &userResolver{u: u, root: r}, nil
}

func (r *Resolver) Posts(ctx context.Context) ([]*postResolver, error) {
	posts, err := r.listUC.Feed(ctx)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*postResolver, len(posts))
	for i, p := range posts {
		resolvers[i] = &postResolver{p: p, root: r}
	}
	return resolvers, nil
}

func (r *Resolver) MyPosts(ctx context.Context) ([]*postResolver, error) {
	posts, err := r.listUC.ByAuthor(ctx, auth.IdentityFrom(ctx))
	if err != nil {
		return nil, err
	}

	resolvers := make([]*postResolver, len(posts))
	for i, p := range posts {
		resolvers[i] = &postResolver{p: p, root: r}
	}
	return resolvers, nil
}

func parseEntityID(id graphqlgo.ID) (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	return n, err == nil
}

func formatEntityID(id int64) graphqlgo.ID {
	return graphqlgo.ID(strconv.FormatInt(id, 10))
}
