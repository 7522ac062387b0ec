package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu/blogspace/pkg/auth"
)

func newSignupFixture() (*SignupUseCase, *fakeUserRepo, *fakeProfileRepo, *auth.JWTService) {
	userRepo := newFakeUserRepo()
	profileRepo := &fakeProfileRepo{}
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	uc := NewSignupUseCase(userRepo, profileRepo, jwtSvc, nopLogger{})
	return uc, userRepo, profileRepo, jwtSvc
}

func validSignupInput() SignupInput {
	return SignupInput{
		Email:    "ann@example.com",
		Password: "pw123",
		Name:     "Ann",
		Bio:      "writes about Go",
	}
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SignupInput)
		wantMsg string
	}{
		{"malformed email", func(in *SignupInput) { in.Email = "not-an-email" }, "Invalid email"},
		{"empty email", func(in *SignupInput) { in.Email = "" }, "Invalid email"},
		{"missing name", func(in *SignupInput) { in.Name = "" }, "Invalid name or bio"},
		{"missing bio", func(in *SignupInput) { in.Bio = "" }, "Invalid name or bio"},
		{"short password", func(in *SignupInput) { in.Password = "pw12" }, "Invalid password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, userRepo, _, _ := newSignupFixture()

			input := validSignupInput()
			tt.mutate(&input)

			p, err := uc.Execute(context.Background(), input)
			require.NoError(t, err)

			require.Len(t, p.UserErrors, 1)
			assert.Equal(t, tt.wantMsg, p.UserErrors[0].Message)
			assert.Empty(t, p.Token)
			assert.Empty(t, userRepo.users, "no user should be created on validation failure")
		})
	}
}

func TestSignupShortCircuitsAtFirstFailure(t *testing.T) {
	uc, _, _, _ := newSignupFixture()

	// email and password both invalid: only the email error is reported
	p, err := uc.Execute(context.Background(), SignupInput{
		Email:    "broken",
		Password: "x",
		Name:     "Ann",
		Bio:      "bio",
	})
	require.NoError(t, err)

	require.Len(t, p.UserErrors, 1)
	assert.Equal(t, "Invalid email", p.UserErrors[0].Message)
}

func TestSignupSuccess(t *testing.T) {
	uc, userRepo, profileRepo, jwtSvc := newSignupFixture()

	p, err := uc.Execute(context.Background(), validSignupInput())
	require.NoError(t, err)

	assert.Empty(t, p.UserErrors, "success is signalled by an empty error list")
	require.NotEmpty(t, p.Token)

	created, err := userRepo.FindByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", created.Name)
	assert.NotEqual(t, "pw123", created.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("pw123", created.PasswordHash))

	prof, err := profileRepo.GetByUserID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "writes about Go", prof.Bio)

	identity := jwtSvc.DecodeHeader("Bearer " + p.Token)
	require.NotNil(t, identity)
	assert.Equal(t, created.ID, identity.UserID)
	assert.Equal(t, created.Email, identity.Email)
}

func TestSignupPasswordBoundary(t *testing.T) {
	uc, _, _, _ := newSignupFixture()

	input := validSignupInput()
	input.Password = "12345"

	p, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Empty(t, p.UserErrors)
	assert.NotEmpty(t, p.Token)
}

func TestSignupDuplicateEmailPropagatesAsError(t *testing.T) {
	uc, _, _, _ := newSignupFixture()

	_, err := uc.Execute(context.Background(), validSignupInput())
	require.NoError(t, err)

	p, err := uc.Execute(context.Background(), validSignupInput())
	require.Error(t, err, "uniqueness violations travel the unexpected-error channel")
	assert.Nil(t, p)
}
