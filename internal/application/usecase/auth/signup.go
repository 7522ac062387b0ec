package auth

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/minhvu/blogspace/internal/application/payload"
	"github.com/minhvu/blogspace/internal/domain/profile"
	"github.com/minhvu/blogspace/internal/domain/user"
	"github.com/minhvu/blogspace/pkg/apperror"
	"github.com/minhvu/blogspace/pkg/auth"
	"github.com/minhvu/blogspace/pkg/logger"
	"github.com/minhvu/blogspace/pkg/validate"
)

var tracer = otel.Tracer("auth_usecase")

type SignupUseCase struct {
	userRepo    user.Repository
	profileRepo profile.Repository
	jwtSvc      *auth.JWTService
	logger      logger.Logger
}

func NewSignupUseCase(uRepo user.Repository, pRepo profile.Repository, jwtSvc *auth.JWTService, log logger.Logger) *SignupUseCase {
	return &SignupUseCase{
		userRepo:    uRepo,
		profileRepo: pRepo,
		jwtSvc:      jwtSvc,
		logger:      log,
	}
}

type SignupInput struct {
	Email    string
	Password string
	Name     string
	Bio      string
}

// Execute validates the credentials, creates the user and its profile, and
// issues a token. Validation short-circuits at the first failure, so the
// payload carries at most one error.
func (uc *SignupUseCase) Execute(ctx context.Context, input SignupInput) (*payload.AuthPayload, error) {

	ctx, span := tracer.Start(ctx, "Signup")
	defer span.End()

	if !validate.IsValidEmail(input.Email) {
		return payload.AuthFailure("Invalid email"), nil
	}

	if input.Name == "" || input.Bio == "" {
		return payload.AuthFailure("Invalid name or bio"), nil
	}

	if !validate.IsValidPassword(input.Password) {
		return payload.AuthFailure("Invalid password"), nil
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	newUser := &user.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
	}
	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("create user failed: %w", err)
	}

	if err := uc.profileRepo.Create(ctx, &profile.Profile{Bio: input.Bio, UserID: newUser.ID}); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("create profile failed: %w", err)
	}

	token, err := uc.jwtSvc.Issue(auth.Identity{UserID: newUser.ID, Email: newUser.Email})
	if err != nil {
		uc.logger.Error("Failed to issue token after signup", err, zap.Int64("user_id", newUser.ID))
		err = apperror.NewInternal("failed to issue token", err)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int64("user_id", newUser.ID))
	return payload.AuthSuccess(token), nil
}
