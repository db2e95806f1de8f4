package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-notes/pkg/validator"

	_ "github.com/johnquangdev/meeting-notes/docs"
	"github.com/johnquangdev/meeting-notes/internal/adapter/handler"
	"github.com/johnquangdev/meeting-notes/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/external/github"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-notes/internal/usecase/analytics"
	"github.com/johnquangdev/meeting-notes/internal/usecase/export"
	"github.com/johnquangdev/meeting-notes/internal/usecase/ingest"
	"github.com/johnquangdev/meeting-notes/internal/usecase/jobs"
	"github.com/johnquangdev/meeting-notes/internal/usecase/query"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/jwt"
	"github.com/johnquangdev/meeting-notes/pkg/metrics"
)

// @title           Meeting Notes API
// @version         1.0
// @description     API for ingesting meeting notes, extracting structured records and querying the archive

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

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
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run AutoMigrate only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running GORM AutoMigrate (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run AutoMigrate: %v", err)
		}
	} else {
		log.Println("🔄 Skipping GORM AutoMigrate; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize cache
	var cacheStore cache.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		cacheStore = redisStore
	} else {
		log.Println("📦 Redis disabled, using in-memory cache")
		cacheStore = cache.NewMemoryStore()
	}
	defer cacheStore.Close()

	// Initialize object storage for source archiving
	log.Println("🗄️  Connecting to object storage...")
	store, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Printf("⚠️  Object storage unavailable, source archiving disabled: %v", err)
		store = nil
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	personRepo := repository.NewPersonRepository(db)
	actionRepo := repository.NewActionItemRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	jobRepo := repository.NewJobRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize AI clients
	log.Println("🤖 Initializing AI components...")
	groqClient := pkgai.NewGroqClient(&cfg.Groq)

	var aaiClient *aai.Client
	if cfg.Assembly.APIKey != "" {
		aaiClient = aai.NewClient(cfg.Assembly.APIKey)
		log.Println("✅ AssemblyAI transcription enabled")
	} else {
		log.Println("⚠️  ASSEMBLYAI_API_KEY not set, audio ingestion disabled")
	}

	// Initialize GitHub client for issue export
	var ghClient *github.Client
	if cfg.GitHub.Token != "" {
		ghClient, err = github.NewClient(&cfg.GitHub)
		if err != nil {
			log.Fatalf("Failed to initialize GitHub client: %v", err)
		}
		log.Printf("✅ GitHub export target: %s/%s", cfg.GitHub.Owner, cfg.GitHub.Repo)
	} else {
		log.Println("⚠️  GITHUB_TOKEN not set, issue export disabled")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	m := metrics.NewMetrics()

	// Initialize usecases
	log.Println("📥 Initializing ingestion service...")
	ingestService := ingest.NewIngestService(meetingRepo, personRepo, documentRepo, store, cacheStore, m, logger)

	log.Println("🔍 Initializing query services...")
	queryService := query.NewQueryService(meetingRepo, actionRepo, personRepo, documentRepo, cacheStore, m, logger)
	queryEngine := query.NewEngine(groqClient, queryService, analyticsRepo, m, logger)

	log.Println("📊 Initializing analytics service...")
	analyticsService := analytics.NewAnalyticsService(analyticsRepo, actionRepo, groqClient, store, cacheStore, m, logger)

	log.Println("📤 Initializing export service...")
	exportService := export.NewExportService(actionRepo, meetingRepo, ghClient, m, logger)

	// Initialize job queue and workers
	log.Println("👷 Initializing job service...")
	transcriber := jobs.NewTranscriber(aaiClient, groqClient, ingestService, m, logger)
	jobService := jobs.NewJobService(jobRepo, exportService, analyticsService, transcriber, &cfg.Worker, m, logger)

	if cfg.Worker.Enabled {
		if err := jobService.StartWorkerPool(cfg.Worker.Count); err != nil {
			log.Fatalf("Failed to start worker pool: %v", err)
		}
		defer jobService.StopWorkerPool()
		log.Printf("👷 Worker pool started with %d workers", cfg.Worker.Count)
	} else {
		log.Println("⚠️  Background workers disabled")
	}

	// Initialize JWT manager for service tokens
	log.Println("🔑 Initializing JWT manager...")
	if cfg.Auth.Enabled && cfg.Auth.JWTSecret == "" {
		log.Fatalf("AUTH_ENABLED requires JWT_SECRET to be set")
	}
	jwtManager := jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	documentHandler := handler.NewDocumentHandler(ingestService, jobService, documentRepo, store, logger)
	meetingHandler := handler.NewMeetingHandler(queryService)
	actionHandler := handler.NewActionHandler(queryService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	queryHandler := handler.NewQueryHandler(queryEngine, logger)
	jobHandler := handler.NewJobHandler(jobService, exportService)
	log.Println("✅ Handlers initialized successfully")

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, documentHandler, meetingHandler, actionHandler, analyticsHandler, queryHandler, jobHandler, jwtManager)
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
