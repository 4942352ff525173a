package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-admin/adapters/event"
	httpAdapter "portfolio-admin/adapters/http"
	"portfolio-admin/adapters/llm"
	"portfolio-admin/adapters/media_storage"
	"portfolio-admin/adapters/persistence"
	authUC "portfolio-admin/internal/application/usecase/auth"
	brochureUC "portfolio-admin/internal/application/usecase/brochure"
	"portfolio-admin/internal/application/usecase/content"
	mediaUC "portfolio-admin/internal/application/usecase/media"
	personalUC "portfolio-admin/internal/application/usecase/personal"
	"portfolio-admin/internal/config"
	"portfolio-admin/pkg/auth"
	"portfolio-admin/pkg/logger"
	"portfolio-admin/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Portfolio Admin API Server...")

	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-admin-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer provider", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	eventPublisher, err := event.NewKafkaContentPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	personalRepo := persistence.NewPostgresPersonalRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	testimonialRepo := persistence.NewPostgresTestimonialRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("failed to initialize uploader", err)
	}
	llmService, err := llm.NewOpenAILLMAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("failed to initialize LLM service", err)
	}
	brochureCache := persistence.NewRedisBrochureCache(redisClient)

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	personalUseCase := personalUC.NewUseCase(personalRepo, eventPublisher, appLogger)
	projects := content.NewProjects(projectRepo, eventPublisher, appLogger)
	skills := content.NewSkills(skillRepo, eventPublisher, appLogger)
	testimonials := content.NewTestimonials(testimonialRepo, eventPublisher, appLogger)
	brochureUseCase := brochureUC.NewUseCase(
		personalUseCase, projects, skills, testimonials,
		llmService, brochureCache, appLogger,
	)
	uploadUseCase := mediaUC.NewUploadImageUseCase(uploader, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	personalHandler := httpAdapter.NewPersonalHandler(personalUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(projects, appLogger)
	skillHandler := httpAdapter.NewSkillHandler(skills, appLogger)
	testimonialHandler := httpAdapter.NewTestimonialHandler(testimonials, appLogger)
	brochureHandler := httpAdapter.NewBrochureHandler(brochureUseCase, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(uploadUseCase, appLogger)

	// Setup Gin router
	router := gin.Default()
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(httpAdapter.AuthMiddleware(jwtSvc))
			{
				personalHandler.RegisterRoutes(adminPrivate)
				projectHandler.RegisterRoutes(adminPrivate)
				skillHandler.RegisterRoutes(adminPrivate)
				testimonialHandler.RegisterRoutes(adminPrivate)
				brochureHandler.RegisterRoutes(adminPrivate)
				mediaHandler.RegisterRoutes(adminPrivate)
			}
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
