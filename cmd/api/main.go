package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ross7390/meeting-maestro/internal/adapter/handler"
	"github.com/ross7390/meeting-maestro/internal/infrastructure/cache"
	"github.com/ross7390/meeting-maestro/internal/infrastructure/external/emailjs"
	"github.com/ross7390/meeting-maestro/internal/usecase/compose"
	"github.com/ross7390/meeting-maestro/internal/usecase/delivery"
	"github.com/ross7390/meeting-maestro/internal/usecase/extract"
	"github.com/ross7390/meeting-maestro/internal/usecase/meeting"
	"github.com/ross7390/meeting-maestro/internal/usecase/transcript"
	pkgai "github.com/ross7390/meeting-maestro/pkg/ai"
	"github.com/ross7390/meeting-maestro/pkg/config"
	pkgvalidator "github.com/ross7390/meeting-maestro/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	validator := pkgvalidator.New()
	e.Validator = validator

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize session store
	var store cache.SessionStore
	switch cfg.Sessions.Backend {
	case "redis":
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
	default:
		log.Println("📦 Using in-memory session store...")
		store = cache.NewMemoryStore(cfg.Sessions.TTL)
	}

	// Initialize AI components
	log.Println("🤖 Initializing AI components...")
	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)
	extractService := extract.NewService(geminiClient)

	// Initialize meeting components
	log.Println("📋 Initializing meeting service...")
	normalizer := transcript.NewNormalizer()
	meetingService := meeting.NewService(store, validator, logger)

	// Initialize email components
	log.Println("✉️  Initializing email delivery...")
	composer := compose.NewComposer()
	mailer := emailjs.NewClient(&cfg.EmailJS)
	deliveryService := delivery.NewService(mailer, composer, validator, logger)

	// Initialize handlers
	meetingHandler := handler.NewMeetingHandler(normalizer, extractService, meetingService, logger)
	emailHandler := handler.NewEmailHandler(meetingService, composer, deliveryService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, emailHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server exited")
}
