package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/minhvu/blogspace/internal/domain/post"
	"github.com/minhvu/blogspace/internal/domain/profile"
	"github.com/minhvu/blogspace/internal/domain/user"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	postRepo    post.Repository
	userRepo    user.Repository
	profileRepo profile.Repository
	author      *user.User
	other       *user.User
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.postRepo = NewPostgresPostRepo(pool)
	s.userRepo = NewPostgresUserRepo(pool)
	s.profileRepo = NewPostgresProfileRepo(pool)

	s.author = &user.User{Email: "author@example.com", Name: "Author", PasswordHash: "hashedpassword"}
	if err := s.userRepo.Create(ctx, s.author); err != nil {
		s.T().Fatalf("Failed to seed author: %s", err)
	}
	s.other = &user.User{Email: "other@example.com", Name: "Other", PasswordHash: "hashedpassword"}
	if err := s.userRepo.Create(ctx, s.other); err != nil {
		s.T().Fatalf("Failed to seed second user: %s", err)
	}
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func (s *RepoIntegrationTestSuite) Test_CreateUser_DuplicateEmail() {
	ctx := context.Background()

	dup := &user.User{Email: s.author.Email, Name: "Imposter", PasswordHash: "x"}
	err := s.userRepo.Create(ctx, dup)

	s.ErrorIs(err, user.ErrEmailTaken)
}

func (s *RepoIntegrationTestSuite) Test_ProfileRoundTrip() {
	ctx := context.Background()

	p := &profile.Profile{Bio: "hello", UserID: s.other.ID}
	s.NoError(s.profileRepo.Create(ctx, p))
	s.NotZero(p.ID)

	found, err := s.profileRepo.GetByUserID(ctx, s.other.ID)
	s.NoError(err)
	s.Equal("hello", found.Bio)
}

func (s *RepoIntegrationTestSuite) Test_CreatePost_And_FindByID() {
	ctx := context.Background()

	newPost := &post.Post{Title: "My First Post", Content: "Hello world", AuthorID: s.author.ID}
	s.NoError(s.postRepo.Create(ctx, newPost))
	s.NotZero(newPost.ID)

	found, err := s.postRepo.FindByID(ctx, newPost.ID)
	s.NoError(err)
	s.Equal("My First Post", found.Title)
	s.False(found.Published)
}

func (s *RepoIntegrationTestSuite) Test_UpdatePartial_KeepsOmittedFields() {
	ctx := context.Background()

	newPost := &post.Post{Title: "Original", Content: "Body", AuthorID: s.author.ID}
	s.NoError(s.postRepo.Create(ctx, newPost))

	title := "Renamed"
	updated, err := s.postRepo.UpdatePartial(ctx, newPost.ID, s.author.ID, post.UpdatePatch{Title: &title})
	s.NoError(err)
	s.Equal("Renamed", updated.Title)
	s.Equal("Body", updated.Content)
}

func (s *RepoIntegrationTestSuite) Test_Mutations_ConditionalOnAuthor() {
	ctx := context.Background()

	newPost := &post.Post{Title: "Mine", Content: "Body", AuthorID: s.author.ID}
	s.NoError(s.postRepo.Create(ctx, newPost))

	title := "Stolen"
	_, err := s.postRepo.UpdatePartial(ctx, newPost.ID, s.other.ID, post.UpdatePatch{Title: &title})
	s.ErrorIs(err, post.ErrPostNotFound)

	_, err = s.postRepo.SetPublished(ctx, newPost.ID, s.other.ID, true)
	s.ErrorIs(err, post.ErrPostNotFound)

	err = s.postRepo.Delete(ctx, newPost.ID, s.other.ID)
	s.ErrorIs(err, post.ErrPostNotFound)

	found, err := s.postRepo.FindByID(ctx, newPost.ID)
	s.NoError(err)
	s.Equal("Mine", found.Title)
	s.False(found.Published)
}

func (s *RepoIntegrationTestSuite) Test_ListPublished() {
	ctx := context.Background()

	draft := &post.Post{Title: "Draft", Content: "x", AuthorID: s.author.ID}
	s.NoError(s.postRepo.Create(ctx, draft))

	public := &post.Post{Title: "Public", Content: "x", AuthorID: s.author.ID}
	s.NoError(s.postRepo.Create(ctx, public))
	_, err := s.postRepo.SetPublished(ctx, public.ID, s.author.ID, true)
	s.NoError(err)

	published, err := s.postRepo.ListPublished(ctx)
	s.NoError(err)
	for _, p := range published {
		s.True(p.Published)
		s.NotEqual(draft.ID, p.ID)
	}
}
