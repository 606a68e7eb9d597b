package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"developer-service/config"
	deliveryHttp "developer-service/internal/delivery/http"
	"developer-service/internal/delivery/http/handler"
	"developer-service/internal/delivery/http/middleware"
	"developer-service/internal/infrastructure/cache"
	"developer-service/internal/infrastructure/database"
	"developer-service/internal/repository"
	"developer-service/internal/service"
	"developer-service/internal/usecase"
	"developer-service/pkg/jwt"
	"developer-service/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized.
// Pending migrations are applied before the server is built.
func New(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	// Initialize database
	db, err := ConnectDatabase(cfg)
	if err != nil {
		return nil, err
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.MigrateUp(database.DSN(cfg.DB)); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Redis is optional; without it the developer cache is a no-op
	developerCache := service.NewNoopDeveloperCache()
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		developerCache = service.NewRedisDeveloperCache(redisClient, cfg.Redis.CacheTTL, logrus.StandardLogger())
		logrus.Info("Redis connected successfully")
	} else {
		logrus.Info("REDIS_HOST not set, developer cache disabled")
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, db, developerCache)

	return app, nil
}

// SetupLogger configures the logrus logger
func SetupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// ConnectDatabase opens the gorm connection with SQL logging tuned to the
// environment.
func ConnectDatabase(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Info
	if cfg.App.IsProduction() {
		logLevel = logger.Warn
	}

	return database.NewPostgresConnection(cfg.DB, logLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, developerCache service.DeveloperCache) *http.Server {
	// Auth is only enforced when a signing secret is configured
	var jwtService *jwt.JWTService
	if cfg.JWT.Enabled() {
		jwtService = jwt.NewJWTService(cfg.JWT)
	} else {
		logrus.Warn("JWT_SECRET not set, API authentication disabled")
	}

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	developerRepo := repository.NewDeveloperRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	developerUsecase := usecase.NewDeveloperUsecase(log, developerRepo, auditService, developerCache)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	developerHandler := handler.NewDeveloperHandler(developerUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware("")
	accessLogMiddleware := middleware.NewAccessLogMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(developerHandler, auditLogHandler, authMiddleware, corsMiddleware, accessLogMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
