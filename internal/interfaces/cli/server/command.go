package server

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	issueusecases "zenmai/internal/application/issue/usecases"
	userusecases "zenmai/internal/application/user/usecases"
	"zenmai/internal/infrastructure/auth"
	"zenmai/internal/infrastructure/config"
	"zenmai/internal/infrastructure/database"
	"zenmai/internal/infrastructure/migration"
	"zenmai/internal/infrastructure/repository"
	issuehandlers "zenmai/internal/interfaces/http/handlers/issue"
	userhandlers "zenmai/internal/interfaces/http/handlers/user"
	"zenmai/internal/interfaces/http/middleware"
	"zenmai/internal/interfaces/http/routes"
	"zenmai/internal/shared/db"
	"zenmai/internal/shared/logger"
	"zenmai/internal/shared/services/markdown"
)

var (
	env          string
	autoMigrate  bool
	templateGlob string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the issue tracker HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", true, "Run pending database migrations on startup")
	cmd.Flags().StringVar(&templateGlob, "templates", "web/templates/*.html", "Glob of HTML templates to load")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if err := handleMigrations(); err != nil {
		logger.Fatal("migration handling failed", "error", err)
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		logger.Fatal("failed to build HTTP engine", "error", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

// buildEngine wires the full request path: middleware chain, repositories,
// use cases, handlers, and routes.
func buildEngine(cfg *config.Config) (*gin.Engine, error) {
	engine := gin.New()
	engine.Use(middleware.Logger(logger.NewLogger()))
	engine.Use(middleware.Recovery())

	if err := engine.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	secret := []byte(cfg.Auth.Session.Secret)
	if len(secret) == 0 {
		logger.Warn("session secret not configured, generating a volatile one; sessions will not survive restarts")
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
	}

	store := cookie.NewStore(secret)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * cfg.Auth.Session.MaxAgeDays,
		HttpOnly: true,
		Secure:   cfg.Auth.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	engine.Use(sessions.Sessions(cfg.Auth.Session.CookieName, store))

	engine.Use(middleware.LimitRequestBody(cfg.Upload.MaxRequestBytes))
	engine.Use(middleware.CSRF())

	engine.MaxMultipartMemory = cfg.Upload.MaxRequestBytes
	engine.LoadHTMLGlob(templateGlob)

	gdb := database.Get()
	txMgr := db.NewTransactionManager(gdb)
	log := logger.NewLogger()

	issueRepo := repository.NewIssueRepository(gdb)
	commentRepo := repository.NewCommentRepository(gdb)
	stateRepo := repository.NewStateRepository(gdb)
	fileRepo := repository.NewAttachedFileRepository(gdb)
	userRepo := repository.NewUserRepository(gdb)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	markdownSvc := markdown.NewService()

	issueHandler := issuehandlers.NewIssueHandler(
		issueusecases.NewCreateIssueUseCase(issueRepo, stateRepo, txMgr, log),
		issueusecases.NewAddCommentUseCase(issueRepo, commentRepo, stateRepo, txMgr, log),
		issueusecases.NewGetIssueUseCase(issueRepo, stateRepo, userRepo, markdownSvc, log),
		issueusecases.NewListIssuesUseCase(issueRepo, stateRepo, log),
		issueusecases.NewListStatesUseCase(stateRepo, log),
		issueusecases.NewDownloadAttachmentUseCase(fileRepo, log),
	)

	userHandler := userhandlers.NewUserHandler(
		userusecases.NewRegisterUserUseCase(userRepo, hasher, log),
		userusecases.NewAuthenticateUserUseCase(userRepo, hasher, log),
		userusecases.NewGetUserUseCase(userRepo, log),
		userusecases.NewUpdateProfileUseCase(userRepo, hasher, log),
	)

	routes.SetupIssueRoutes(engine, &routes.IssueRouteConfig{IssueHandler: issueHandler})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{UserHandler: userHandler})

	return engine, nil
}

func handleMigrations() error {
	if autoMigrate {
		logger.Info("running pending migrations")
		if err := migration.Up(database.Get()); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		return nil
	}

	version, err := migration.Version(database.Get())
	if err != nil {
		logger.Warn("failed to check migration status", "error", err)
		return nil
	}
	logger.Info("current migration version", "version", version)
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
