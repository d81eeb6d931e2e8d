package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-doctor-directory/config"
	deliveryHttp "go-doctor-directory/internal/delivery/http"
	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"
	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/events"
	"go-doctor-directory/internal/infrastructure/cache"
	"go-doctor-directory/internal/infrastructure/database"
	"go-doctor-directory/internal/infrastructure/seed"
	"go-doctor-directory/internal/repository"
	"go-doctor-directory/internal/service"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/jwt"
	"go-doctor-directory/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	RedisClient *redis.Client
	Publisher   events.Publisher
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config, log *logrus.Logger) (*App, error) {
	app := &App{Config: cfg, Log: log}

	customValidator := validator.NewValidator()

	// Load the directory
	doctorRepo, err := LoadDirectory(context.Background(), cfg, log, customValidator)
	if err != nil {
		return nil, err
	}

	// Queue counters live in Redis when configured, otherwise in process
	var queueService service.QueueService = service.NewMemoryQueueService()
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		queueService = service.NewRedisQueueService(redisClient, log, cfg.Queue.TTL)
		log.Info("Using Redis queue counters")
	}

	// Events
	app.Publisher = &events.NoopPublisher{}
	if cfg.NATS.URL != "" {
		publisher, err := events.NewNATSPublisher(cfg.NATS.URL)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Publisher = publisher
		log.Infof("Publishing appointment events to %s", cfg.NATS.URL)
	}

	app.Server = initializeServer(cfg, log, customValidator, doctorRepo, queueService, app.Publisher)

	return app, nil
}

// LoadDirectory reads the dataset from the configured source into the
// in-memory catalog. A postgres source is only read here; its connection is
// closed before returning.
func LoadDirectory(
	ctx context.Context,
	cfg *config.Config,
	log *logrus.Logger,
	v *validator.CustomValidator,
) (domainRepo.DoctorRepository, error) {
	var (
		doctors []entity.Doctor
		err     error
	)

	switch cfg.Directory.Source {
	case config.SourceEmbedded:
		doctors, err = seed.NewEmbeddedLoader().Load(ctx)
	case config.SourceFile:
		if cfg.Directory.SeedFile == "" {
			return nil, fmt.Errorf("directory source %q requires DIRECTORY_SEED_FILE", config.SourceFile)
		}
		doctors, err = seed.NewFileLoader(cfg.Directory.SeedFile).Load(ctx)
	case config.SourcePostgres:
		db, connErr := database.NewPostgresConnection(cfg.DB)
		if connErr != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", connErr)
		}
		doctors, err = loadFromDatabase(ctx, db)
	default:
		return nil, fmt.Errorf("unknown directory source %q", cfg.Directory.Source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load directory: %w", err)
	}

	doctorRepo, err := repository.NewCatalogDoctorRepository(doctors, v)
	if err != nil {
		return nil, fmt.Errorf("failed to build directory: %w", err)
	}

	log.Infof("Loaded %d doctors from %s source", len(doctors), cfg.Directory.Source)
	return doctorRepo, nil
}

// loadFromDatabase reads the doctors table once and closes db. The catalog
// never queries the database after startup.
func loadFromDatabase(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	defer closeDB(db)
	return repository.NewPostgresDoctorLoader(db).Load(ctx)
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	customValidator *validator.CustomValidator,
	doctorRepo domainRepo.DoctorRepository,
	queueService service.QueueService,
	publisher events.Publisher,
) *http.Server {
	// Initialize usecases
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, doctorRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, doctorRepo, queueService, publisher)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directoryUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase)

	// Initialize middleware
	var authMiddleware *middleware.AuthMiddleware
	if cfg.Auth.Enabled() {
		authMiddleware = middleware.NewAuthMiddleware(jwt.NewJWTService(cfg.Auth))
		log.Info("Booking requires a patient token")
	}
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, appointmentHandler, authMiddleware, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (redis, nats)
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	if app.Publisher != nil {
		if err := app.Publisher.Close(); err != nil {
			app.Log.Warnf("Failed to close event publisher: %+v", err)
		}
	}
}

func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
