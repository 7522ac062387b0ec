package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhvu/blogspace/internal/domain/post"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const postColumns = "id, title, content, published, author_id, created_at, updated_at"

type postgresPostRepo struct {
	db *pgxpool.Pool
}

func NewPostgresPostRepo(db *pgxpool.Pool) post.Repository {
	return &postgresPostRepo{db: db}
}

func scanPost(row pgx.Row) (*post.Post, error) {
	p := &post.Post{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Published,
		&p.AuthorID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to scan post row: %w", err)
	}
	return p, nil
}

func scanPosts(rows pgx.Rows) ([]*post.Post, error) {
	posts := make([]*post.Post, 0)
	defer rows.Close()

	for rows.Next() {
		p := &post.Post{}
		err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Content,
			&p.Published,
			&p.AuthorID,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row during iteration: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}
	return posts, nil
}

func (r *postgresPostRepo) Create(ctx context.Context, p *post.Post) error {
	query := `
		INSERT INTO posts (title, content, published, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, p.Title, p.Content, p.Published, p.AuthorID).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

func (r *postgresPostRepo) FindByID(ctx context.Context, id int64) (*post.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE id = $1`, postColumns)
	return scanPost(r.db.QueryRow(ctx, query, id))
}

// UpdatePartial writes only the fields present in the patch. The author_id
// condition makes the write a no-op for anyone but the owner, whatever the
// guard concluded earlier.
func (r *postgresPostRepo) UpdatePartial(ctx context.Context, id, authorID int64, patch post.UpdatePatch) (*post.Post, error) {
	builder := psql.Update("posts").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "author_id": authorID}).
		Suffix("RETURNING " + postColumns)

	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.Content != nil {
		builder = builder.Set("content", *patch.Content)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	return scanPost(r.db.QueryRow(ctx, query, args...))
}

func (r *postgresPostRepo) SetPublished(ctx context.Context, id, authorID int64, published bool) (*post.Post, error) {
	query := fmt.Sprintf(`
		UPDATE posts SET published = $3, updated_at = NOW()
		WHERE id = $1 AND author_id = $2
		RETURNING %s
	`, postColumns)
	return scanPost(r.db.QueryRow(ctx, query, id, authorID, published))
}

func (r *postgresPostRepo) Delete(ctx context.Context, id, authorID int64) error {
	query := `DELETE FROM posts WHERE id = $1 AND author_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, authorID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*post.Post, error) {
	builder := psql.Select(postColumns).
		From("posts").
		Where(sq.Eq{"author_id": authorID}).
		OrderBy("created_at DESC")

	query, args, _ := builder.ToSql()
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts by author: %w", err)
	}
	return scanPosts(rows)
}

func (r *postgresPostRepo) ListPublished(ctx context.Context) ([]*post.Post, error) {
	builder := psql.Select(postColumns).
		From("posts").
		Where(sq.Eq{"published": true}).
		OrderBy("created_at DESC")

	query, args, _ := builder.ToSql()
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query published posts: %w", err)
	}
	return scanPosts(rows)
}
