package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/minhvu/blogspace/adapters/event"
	"github.com/minhvu/blogspace/adapters/graphql"
	httpAdapter "github.com/minhvu/blogspace/adapters/http"
	"github.com/minhvu/blogspace/adapters/persistence"
	authUC "github.com/minhvu/blogspace/internal/application/usecase/auth"
	postUC "github.com/minhvu/blogspace/internal/application/usecase/post"
	"github.com/minhvu/blogspace/internal/config"
	"github.com/minhvu/blogspace/pkg/auth"
	"github.com/minhvu/blogspace/pkg/logger"
	"github.com/minhvu/blogspace/pkg/tracing"
)

func main() {
	fmt.Println("Start Blogspace API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	// The signing secret is the one process-wide credential; running without
	// it would issue unverifiable tokens.
	if cfg.Auth.JWTSecret == "" {
		appLogger.Fatal("JWT_SECRET is not set", nil)
	}

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "blogspace-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	var publisher event.Publisher = event.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool)
	postRepo := persistence.NewPostgresPostRepo(dbPool)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use Cases
	signupUseCase := authUC.NewSignupUseCase(userRepo, profileRepo, jwtSvc, appLogger)
	signinUseCase := authUC.NewSigninUseCase(userRepo, jwtSvc, appLogger)
	guard := postUC.NewOwnershipGuard(postRepo)
	createPostUseCase := postUC.NewCreatePostUseCase(postRepo, publisher, appLogger)
	updatePostUseCase := postUC.NewUpdatePostUseCase(postRepo, guard, publisher, appLogger)
	deletePostUseCase := postUC.NewDeletePostUseCase(postRepo, guard, publisher, appLogger)
	publishPostUseCase := postUC.NewPublishPostUseCase(postRepo, guard, publisher, appLogger)
	listPostsUseCase := postUC.NewListPostsUseCase(postRepo)

	// GraphQL schema
	resolver := graphql.NewResolver(
		signupUseCase,
		signinUseCase,
		createPostUseCase,
		updatePostUseCase,
		deletePostUseCase,
		publishPostUseCase,
		listPostsUseCase,
		userRepo,
		profileRepo,
	)
	schema := graphql.MustParseSchema(resolver)

	router := httpAdapter.NewRouter(schema, jwtSvc)

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
