// Package bootstrap wires configuration, storage, services and HTTP
// routing together for the API server.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/motorlab/apexhub/internal/app/controllers"
	"github.com/motorlab/apexhub/internal/app/migrations"
	"github.com/motorlab/apexhub/internal/app/repositories"
	"github.com/motorlab/apexhub/internal/app/routes"
	"github.com/motorlab/apexhub/internal/app/services"
	"github.com/motorlab/apexhub/internal/config"
	"github.com/motorlab/apexhub/internal/db"
	"github.com/motorlab/apexhub/internal/middleware"
	"github.com/motorlab/apexhub/internal/pkg/auth"
	"github.com/motorlab/apexhub/internal/pkg/filestorage"
	"github.com/motorlab/apexhub/internal/pkg/helpers"
	"github.com/motorlab/apexhub/internal/pkg/logger"
	"github.com/motorlab/apexhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *repositories.Repositories
	JWTService  *auth.JWTService
	FileStorage *filestorage.LocalStorage

	AuthService      *services.AuthService
	UserService      *services.UserService
	ResearchService  *services.ResearchService
	NewsService      *services.NewsService
	ForumService     *services.ForumService
	GroupService     *services.GroupService
	EventService     *services.EventService
	CommunityService *services.CommunityService

	AuthController      *controllers.AuthController
	UserController      *controllers.UserController
	ResearchController  *controllers.ResearchController
	NewsController      *controllers.NewsController
	ForumController     *controllers.ForumController
	CommunityController *controllers.CommunityController

	AuthMiddleware *middleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")

	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.ApplyDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(ctx, database); err != nil {
		// Seed failures are not fatal, the API can run without defaults
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services, controllers and
// the authentication middleware.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = repositories.NewRepositories(database)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = services.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.UserService = services.NewUserService(deps.Repos.UserRepository)
	deps.ResearchService = services.NewResearchService(deps.Repos.ResearchRepository, deps.FileStorage)
	deps.NewsService = services.NewNewsService(deps.Repos.NewsRepository)
	deps.ForumService = services.NewForumService(deps.Repos.ForumRepository)
	deps.GroupService = services.NewGroupService(deps.Repos.GroupRepository)
	deps.EventService = services.NewEventService(deps.Repos.EventRepository)
	deps.CommunityService = services.NewCommunityService(
		deps.Repos.ForumRepository,
		deps.Repos.GroupRepository,
		deps.Repos.EventRepository,
	)

	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = controllers.NewAuthController(deps.AuthService)
	deps.UserController = controllers.NewUserController(deps.UserService)
	deps.ResearchController = controllers.NewResearchController(deps.ResearchService)
	deps.NewsController = controllers.NewNewsController(deps.NewsService)
	deps.ForumController = controllers.NewForumController(deps.ForumService)
	deps.CommunityController = controllers.NewCommunityController(
		deps.GroupService,
		deps.EventService,
		deps.CommunityService,
	)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	if cfg.Server.MaxUploadBytes > 0 {
		router.Use(middleware.BodySizeLimit(cfg.Server.MaxUploadBytes))
	}

	routes.SetupSwagger(router)

	routes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ResearchController,
		deps.NewsController,
		deps.ForumController,
		deps.CommunityController,
		deps.AuthMiddleware,
	)

	return router
}
