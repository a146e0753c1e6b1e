package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"iamove/internal/adapter"
	"iamove/internal/adapter/translator"
	"iamove/internal/cache"
	"iamove/internal/config"
	"iamove/internal/database"
	"iamove/internal/domain"
	"iamove/internal/handler"
	"iamove/internal/logger"
	"iamove/internal/middleware"
	"iamove/internal/repository"
	"iamove/internal/service"
	"iamove/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

// newTranslator builds the configured translation backend.
func newTranslator(cfg *config.Config) (domain.Translator, error) {
	switch cfg.Translation.Source {
	case "ollama":
		return translator.NewOllamaTranslator(cfg.Translation.Ollama.ServerURL, cfg.Translation.Ollama.Model)
	default:
		return translator.NewDeepLTranslator(cfg.Translation.DeepL.APIKey, cfg.Translation.DeepL.BaseURL, cfg.Translation.RequestTimeout)
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("Successfully connected to Redis")

	// Translation backend
	translatorClient, err := newTranslator(cfg)
	if err != nil {
		appLogger.Fatal("Failed to create translator",
			zap.String("source", cfg.Translation.Source), zap.Error(err))
	}
	appLogger.Info("Translator initialized", zap.String("source", cfg.Translation.Source))

	// Initialize repositories
	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	translationRepository := repository.NewTranslationDatabaseAdapter(db)
	personRepository := repository.NewPersonDatabaseAdapter(db)
	siteRepository := repository.NewSiteDatabaseAdapter(db)
	answerEventRepository := repository.NewAnswerEventDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize services
	sessionStore := service.NewRedisSessionStore(cacheAdapter, cfg.Session.TTL)
	selectorService := service.NewSelectorService(questionRepository, translationRepository, siteRepository)
	progressionService := service.NewProgressionService(personRepository)
	pointsService := service.NewPointsService(personRepository, cacheAdapter, cfg.Points.DiscoveryTTL)
	sessionService := service.NewQuizSessionService(selectorService, sessionStore, personRepository, answerEventRepository, progressionService, pointsService)
	assessmentService := service.NewAssessmentService(personRepository, pointsService)
	backfillService := service.NewBackfillService(questionRepository, translationRepository, siteRepository, translatorClient, cfg.Translation.BatchSize)
	questionAdminService := service.NewQuestionAdminService(questionRepository, translationRepository, txManager)

	validator := validation.NewValidator()

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(sessionService, validator)
	pointsHandler := handler.NewPointsHandler(pointsService, validator)
	assessmentHandler := handler.NewAssessmentHandler(assessmentService, validator)
	personHandler := handler.NewPersonHandler(personRepository)
	adminHandler := handler.NewAdminHandler(questionAdminService, backfillService, validator)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	// Public routes
	apiGroup.Get("/levels", personHandler.GetLevelCatalog)
	apiGroup.Get("/points/catalog", pointsHandler.GetPointCatalog)

	// Member routes
	protected := middleware.Protected(cfg.Auth.JWTSecret)
	apiGroup.Get("/persons/me", protected, personHandler.GetMyProfile)
	apiGroup.Get("/assessment", protected, assessmentHandler.GetGateStatus)
	apiGroup.Post("/assessment", protected, assessmentHandler.SubmitSelfAssessment)
	apiGroup.Post("/quiz/start", protected, quizHandler.StartQuiz)
	apiGroup.Post("/quiz/answer", protected, quizHandler.SubmitAnswer)
	apiGroup.Get("/quiz/session/:id", protected, quizHandler.GetSession)
	apiGroup.Post("/points/award", protected, pointsHandler.AwardPoints)
	apiGroup.Get("/points/scoreboard", protected, pointsHandler.GetScoreboard)

	// Admin routes
	adminGroup := apiGroup.Group("/admin", middleware.AdminOnly(cfg.Auth.JWTSecret))
	adminGroup.Get("/questions", adminHandler.ListQuestions)
	adminGroup.Post("/questions", adminHandler.CreateQuestion)
	adminGroup.Put("/questions/:id", adminHandler.UpdateQuestion)
	adminGroup.Delete("/questions/:id", adminHandler.DeleteQuestion)
	adminGroup.Get("/translations/status", adminHandler.GetBackfillStatus)
	adminGroup.Post("/translations/backfill", adminHandler.RunBackfillBatch)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
