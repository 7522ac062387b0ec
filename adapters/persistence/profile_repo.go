package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhvu/blogspace/internal/domain/profile"
)

type postgresProfileRepo struct {
	db *pgxpool.Pool
}

func NewPostgresProfileRepo(db *pgxpool.Pool) profile.Repository {
	return &postgresProfileRepo{db: db}
}

func (r *postgresProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (bio, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, p.Bio, p.UserID).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("error when insert profile: %w", err)
	}
	return nil
}

func (r *postgresProfileRepo) GetByUserID(ctx context.Context, userID int64) (*profile.Profile, error) {
	query := `
		SELECT id, bio, user_id, created_at
		FROM profiles
		WHERE user_id = $1
	`
	p := &profile.Profile{}
	err := r.db.QueryRow(ctx, query, userID).Scan(&p.ID, &p.Bio, &p.UserID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error when query profile: %w", err)
	}
	return p, nil
}
