package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinica-turnos/config"
	deliveryHttp "clinica-turnos/internal/delivery/http"
	"clinica-turnos/internal/delivery/http/handler"
	"clinica-turnos/internal/delivery/http/middleware"
	"clinica-turnos/internal/infrastructure/cache"
	"clinica-turnos/internal/infrastructure/database"
	"clinica-turnos/internal/repository"
	"clinica-turnos/internal/scheduling"
	"clinica-turnos/internal/service"
	"clinica-turnos/internal/usecase"
	"clinica-turnos/pkg/jwt"
	"clinica-turnos/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config       *config.Config
	DB           *gorm.DB
	RedisClient  *redis.Client
	SessionStore *service.BookingSessionStore
	Server       *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = app.initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer wires every layer and returns the HTTP server
func (app *App) initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	cal := scheduling.NewCalendar(cfg.Clinic)

	// Repositories
	userRepo := repository.NewUserRepository()
	specialtyRepo := repository.NewSpecialtyRepository()
	specialistProfileRepo := repository.NewSpecialistProfileRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	clinicalRecordRepo := repository.NewClinicalRecordRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	log := logrus.StandardLogger()

	// Services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	sessionStore := service.NewBookingSessionStore(log)
	app.SessionStore = sessionStore

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, specialtyRepo, specialistProfileRepo, patientProfileRepo, jwtService, redisClient)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, specialtyRepo, specialistProfileRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, cal, appointmentRepo, patientProfileRepo, specialistProfileRepo, auditService)
	bookingSessionUsecase := usecase.NewBookingSessionUsecase(log, cal, sessionStore, appointmentUsecase)
	clinicalRecordUsecase := usecase.NewClinicalRecordUsecase(db, log, clinicalRecordRepo, appointmentRepo, userRepo, patientProfileRepo, auditService)
	reportUsecase := usecase.NewReportUsecase(db, log, cal, appointmentRepo, userRepo, auditLogRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase, appointmentUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	bookingSessionHandler := handler.NewBookingSessionHandler(bookingSessionUsecase, customValidator)
	clinicalRecordHandler := handler.NewClinicalRecordHandler(clinicalRecordUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(
		authHandler,
		catalogHandler,
		appointmentHandler,
		bookingSessionHandler,
		clinicalRecordHandler,
		reportHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections and background workers
func (app *App) Close() {
	if app.SessionStore != nil {
		app.SessionStore.Stop()
	}

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
