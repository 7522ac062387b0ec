package graphql

import (
	"context"
	"errors"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/minhvu/blogspace/internal/application/payload"
	authUC "github.com/minhvu/blogspace/internal/application/usecase/auth"
	"github.com/minhvu/blogspace/internal/domain/profile"
	"github.com/minhvu/blogspace/internal/domain/user"
)

type credentialsInput struct {
	Email    string
	Password string
}

func (r *Resolver) Signup(ctx context.Context, args struct {
	Credentials credentialsInput
	Name        *string
	Bio         *string
}) (*authPayloadResolver, error) {
	input := authUC.SignupInput{
		Email:    args.Credentials.Email,
		Password: args.Credentials.Password,
	}
	if args.Name != nil {
		input.Name = *args.Name
	}
	if args.Bio != nil {
		input.Bio = *args.Bio
	}

	p, err := r.signupUC.Execute(ctx, input)
	if err != nil {
		return nil, err
	}
	return &authPayloadResolver{p: p}, nil
}

func (r *Resolver) Signin(ctx context.Context, args struct {
	Credentials credentialsInput
}) (*authPayloadResolver, error) {
	p, err := r.signinUC.Execute(ctx, authUC.SigninInput{
		Email:    args.Credentials.Email,
		Password: args.Credentials.Password,
	})
	if err != nil {
		return nil, err
	}
	return &authPayloadResolver{p: p}, nil
}

type userErrorResolver struct {
	e payload.UserError
}

func (r *userErrorResolver) Message() string { return r.e.Message }

type authPayloadResolver struct {
	p *payload.AuthPayload
}

func (r *authPayloadResolver) UserErrors() []*userErrorResolver {
	resolvers := make([]*userErrorResolver, len(r.p.UserErrors))
	for i, e := range r.p.UserErrors {
		resolvers[i] = &userErrorResolver{e: e}
	}
	return resolvers
}

func (r *authPayloadResolver) Token() *string {
	if r.p.Token == "" {
		return nil
	}
	token := r.p.Token
	return &token
}

type userResolver struct {
	u    *user.User
	root *Resolver
}

func (r *userResolver) ID() graphqlgo.ID { return formatEntityID(r.u.ID) }
func (r *userResolver) Email() string    { return r.u.Email }
func (r *userResolver) Name() string     { return r.u.Name }

func (r *userResolver) Profile(ctx context.Context) (*profileResolver, error) {
	p, err := r.root.profileRepo.GetByUserID(ctx, r.u.ID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profileResolver{p: p}, nil
}

type profileResolver struct {
	p *profile.Profile
}

func (r *profileResolver) ID() graphqlgo.ID { return formatEntityID(r.p.ID) }
func (r *profileResolver) Bio() string      { return r.p.Bio }
