package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smarthire/interview/internal/assessment"
	"smarthire/interview/internal/config"
	"smarthire/interview/internal/handlers"
	"smarthire/interview/internal/jobs"
	"smarthire/interview/internal/llm"
	_ "smarthire/interview/internal/llm/gemini"
	"smarthire/interview/internal/metrics"
	"smarthire/interview/internal/models"
	"smarthire/interview/internal/prompts"
	"smarthire/interview/internal/repositories"
	"smarthire/interview/internal/routers"
	"smarthire/interview/internal/session"
	"smarthire/interview/internal/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func registerRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler, assessmentHandler *handlers.AssessmentHandler, profileHandler *handlers.ProfileHandler, speechHandler *handlers.SpeechHandler, healthHandler *handlers.HealthHandler) {
	routers.HealthRoutes(router, healthHandler)
	routers.InterviewRoutes(router, interviewHandler, assessmentHandler)
	routers.ProfileRoutes(router, profileHandler)
	routers.SpeechRoutes(router, speechHandler)
}

// Helper function for environment variables
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// initDatabase opens the configured database and migrates the interview tables
func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch cfg.Database {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	default:
		host := getEnv("POSTGRES_HOST", "localhost")
		user := getEnv("POSTGRES_USER", "postgres")
		password := getEnv("POSTGRES_PASSWORD", "postgres")
		dbname := getEnv("POSTGRES_DB", "postgres")
		port := getEnv("POSTGRES_PORT", "5432")
		sslmode := getEnv("POSTGRES_SSLMODE", "disable")

		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			host, user, password, dbname, port, sslmode)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.RecruiterProfile{}, &models.InterviewQuestion{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded, using system environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider),
		zap.String("database", cfg.Database))

	renderer, err := prompts.NewRenderer()
	if err != nil {
		logger.Fatal("Failed to load prompt templates", zap.Error(err))
	}

	// AI provider based on configuration
	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	db, err := initDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	profileRepo := &repositories.ProfileRepository{DB: db}
	questionRepo := &repositories.QuestionRepository{DB: db}

	registry := session.NewRegistry(cfg.SessionTTL)
	generator := assessment.NewGenerator(aiProvider, renderer)

	// speech is best-effort: without a key the UI falls back to text entry
	var synthesizer speech.Synthesizer = speech.Disabled{}
	if cfg.TTSAPIKey != "" {
		synthesizer = speech.NewGoogleSynthesizer(cfg.TTSAPIKey, cfg.TTSVoice, cfg.TTSLanguage)
		logger.Info("speech synthesis enabled", zap.String("voice", cfg.TTSVoice))
	}

	interviewHandler := handlers.NewInterviewHandler(registry, profileRepo, questionRepo, aiProvider, renderer, logger, cfg.ExclusionLimit)
	assessmentHandler := handlers.NewAssessmentHandler(registry, generator, logger)
	profileHandler := handlers.NewProfileHandler(profileRepo, logger)
	speechHandler := handlers.NewSpeechHandler(speech.Disabled{}, synthesizer, logger)
	healthHandler := handlers.NewHealthHandler(aiProvider, renderer, cfg, db)

	exporterJob := jobs.NewQuestionExporterJob(questionRepo, &jobs.ExporterConfig{
		Schedule:  cfg.ExportSchedule,
		ExportDir: cfg.ExportDir,
		Enabled:   cfg.ExportEnabled,
	}, logger)
	if err := exporterJob.Start(); err != nil {
		logger.Error("Failed to start question exporter job", zap.Error(err))
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware("interview"))

	registerRoutes(router, interviewHandler, assessmentHandler, profileHandler, speechHandler, healthHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Interview service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interview service shutting down...")

	exporterJob.Stop()

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Interview service exited")
}
