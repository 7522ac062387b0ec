package profile

import (
	"context"
	"errors"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")

// Profile is created together with its user during signup; its lifetime is
// coupled to the user row (ON DELETE CASCADE).
type Profile struct {
	ID        int64     `json:"id"`
	Bio       string    `json:"bio"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByUserID(ctx context.Context, userID int64) (*Profile, error)
}
