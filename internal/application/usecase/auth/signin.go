package auth

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/minhvu/blogspace/internal/application/payload"
	"github.com/minhvu/blogspace/internal/domain/user"
	"github.com/minhvu/blogspace/pkg/apperror"
	"github.com/minhvu/blogspace/pkg/auth"
	"github.com/minhvu/blogspace/pkg/logger"
)

// The same message covers "no such user" and "wrong password" so the
// response does not leak which emails are registered.
const msgInvalidCredentials = "Invalid credentials"

type SigninUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewSigninUseCase(uRepo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *SigninUseCase {
	return &SigninUseCase{
		userRepo: uRepo,
		jwtSvc:   jwtSvc,
		logger:   log,
	}
}

type SigninInput struct {
	Email    string
	Password string
}

func (uc *SigninUseCase) Execute(ctx context.Context, input SigninInput) (*payload.AuthPayload, error) {

	ctx, span := tracer.Start(ctx, "Signin")
	defer span.End()

	u, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return payload.AuthFailure(msgInvalidCredentials), nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("find user failed: %w", err)
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		return payload.AuthFailure(msgInvalidCredentials), nil
	}

	token, err := uc.jwtSvc.Issue(auth.Identity{UserID: u.ID, Email: u.Email})
	if err != nil {
		uc.logger.Error("Failed to issue token after signin", err, zap.Int64("user_id", u.ID))
		err = apperror.NewInternal("failed to issue token", err)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int64("user_id", u.ID))
	return payload.AuthSuccess(token), nil
}
