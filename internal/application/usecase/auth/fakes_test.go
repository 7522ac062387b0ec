package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/minhvu/blogspace/internal/domain/profile"
	"github.com/minhvu/blogspace/internal/domain/user"
	"github.com/minhvu/blogspace/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...zap.Field)         {}
func (nopLogger) Warn(string, ...zap.Field)         {}
func (nopLogger) Error(string, error, ...zap.Field) {}
func (nopLogger) Fatal(string, error, ...zap.Field) {}
func (l nopLogger) With(...zap.Field) logger.Logger { return l }
func (nopLogger) Sync() error                       { return nil }

type fakeUserRepo struct {
	users  map[string]*user.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if _, exists := r.users[u.Email]; exists {
		return user.ErrEmailTaken
	}
	r.nextID++
	u.ID = r.nextID
	stored := *u
	r.users[u.Email] = &stored
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	found := *u
	return &found, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, user.ErrUserNotFound
}

type fakeProfileRepo struct {
	profiles []*profile.Profile
	nextID   int64
}

func (r *fakeProfileRepo) Create(_ context.Context, p *profile.Profile) error {
	r.nextID++
	p.ID = r.nextID
	stored := *p
	r.profiles = append(r.profiles, &stored)
	return nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID int64) (*profile.Profile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			found := *p
			return &found, nil
		}
	}
	return nil, profile.ErrProfileNotFound
}
