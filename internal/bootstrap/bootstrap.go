package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsync/skillsync/internal/app/controllers"
	"github.com/skillsync/skillsync/internal/app/migrations"
	"github.com/skillsync/skillsync/internal/app/repositories"
	"github.com/skillsync/skillsync/internal/app/routes"
	"github.com/skillsync/skillsync/internal/app/services"
	"github.com/skillsync/skillsync/internal/config"
	"github.com/skillsync/skillsync/internal/db"
	"github.com/skillsync/skillsync/internal/middleware"
	"github.com/skillsync/skillsync/internal/pkg/auth"
	"github.com/skillsync/skillsync/internal/pkg/filestorage"
	"github.com/skillsync/skillsync/internal/pkg/helpers"
	"github.com/skillsync/skillsync/internal/pkg/logger"
)

// Dependencies holds everything the server needs to run.
type Dependencies struct {
	Config      *config.Config
	DB          *db.PostgresDB
	Repos       *repositories.Repositories
	JWTService  *auth.JWTService
	FileStorage *filestorage.LocalStorage

	AuthService        *services.AuthService
	UserService        services.UserService
	PostService        services.PostService
	CourseService      services.CourseService
	ForumService       services.ForumService
	NoteService        services.NoteService
	PodcastService     services.PodcastService
	ProjectService     services.ProjectService
	HackathonService   services.HackathonService
	LeaderboardService services.LeaderboardService

	AuthController        *controllers.AuthController
	UserController        *controllers.UserController
	PostController        *controllers.PostController
	CourseController      *controllers.CourseController
	ForumController       *controllers.ForumController
	NoteController        *controllers.NoteController
	PodcastController     *controllers.PodcastController
	ProjectController     *controllers.ProjectController
	HackathonController   *controllers.HackathonController
	LeaderboardController *controllers.LeaderboardController

	AuthMiddleware *middleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads the configuration and configures the
// process-wide logger from it.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	logger.Info().
		Str("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Msg("Configuration loaded")

	return cfg, nil
}

// SetupDatabase connects to PostgreSQL and applies pending migrations.
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory("migrations"); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info().Str("database", cfg.Database.DBName).Msg("Database ready")
	return database, nil
}

// BuildDependencies wires repositories, services and controllers together.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) (*Dependencies, error) {
	repos := repositories.NewRepositories(database.Pool)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 30*24*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, strings.TrimRight(baseURL, "/")+"/uploads")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	authService := services.NewAuthService(
		repos.UserRepository,
		repos.TokenRepository,
		jwtService,
		logger.WithField("service", "auth"),
	)
	userService := services.NewUserService(repos.UserRepository, storage)
	postService := services.NewPostService(repos.PostRepository, repos.UserRepository)
	courseService := services.NewCourseService(repos.CourseRepository, repos.EnrollmentRepository, repos.UserRepository)
	forumService := services.NewForumService(repos.ForumRepository, repos.UserRepository)
	noteService := services.NewNoteService(repos.NoteRepository, repos.NoteRatingRepository, repos.UserRepository, storage)
	podcastService := services.NewPodcastService(repos.PodcastRepository, repos.UserRepository, storage)
	projectService := services.NewProjectService(repos.ProjectRepository, repos.ProjectMemberRepository, repos.UserRepository)
	hackathonService := services.NewHackathonService(repos.HackathonRepository, repos.HackathonParticipantRepository)
	leaderboardService := services.NewLeaderboardService(repos.ContributionRepository)

	deps := &Dependencies{
		Config:      cfg,
		DB:          database,
		Repos:       repos,
		JWTService:  jwtService,
		FileStorage: storage,

		AuthService:        authService,
		UserService:        userService,
		PostService:        postService,
		CourseService:      courseService,
		ForumService:       forumService,
		NoteService:        noteService,
		PodcastService:     podcastService,
		ProjectService:     projectService,
		HackathonService:   hackathonService,
		LeaderboardService: leaderboardService,

		AuthController:        controllers.NewAuthController(authService),
		UserController:        controllers.NewUserController(userService),
		PostController:        controllers.NewPostController(postService),
		CourseController:      controllers.NewCourseController(courseService),
		ForumController:       controllers.NewForumController(forumService),
		NoteController:        controllers.NewNoteController(noteService),
		PodcastController:     controllers.NewPodcastController(podcastService),
		ProjectController:     controllers.NewProjectController(projectService),
		HackathonController:   controllers.NewHackathonController(hackathonService),
		LeaderboardController: controllers.NewLeaderboardController(leaderboardService),

		AuthMiddleware: middleware.NewAuthMiddleware(jwtService),
	}

	return deps, nil
}

// SetupRouter builds the gin engine and registers all routes.
func SetupRouter(deps *Dependencies) *gin.Engine {
	if deps.Config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	routes.SetupRouter(
		router,
		deps.AuthController,
		deps.UserController,
		deps.PostController,
		deps.CourseController,
		deps.ForumController,
		deps.NoteController,
		deps.PodcastController,
		deps.ProjectController,
		deps.HackathonController,
		deps.LeaderboardController,
		deps.AuthMiddleware,
	)

	return router
}
