package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/loreweave/loreweave-backend/internal/db"
	"github.com/loreweave/loreweave-backend/internal/handlers"
	"github.com/loreweave/loreweave-backend/internal/middleware"
	"github.com/loreweave/loreweave-backend/internal/observability"
	"github.com/loreweave/loreweave-backend/internal/platform/envutil"
	"github.com/loreweave/loreweave-backend/internal/platform/logger"
	"github.com/loreweave/loreweave-backend/internal/repos"
	"github.com/loreweave/loreweave-backend/internal/server"
	"github.com/loreweave/loreweave-backend/internal/services"
)

func main() {
	// Logger
	logMode := envutil.String("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "loreweave-backend",
		Environment: logMode,
		Version:     envutil.String("SERVICE_VERSION", "dev"),
	})
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = otelShutdown(ctx)
	}()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := envutil.String("JWT_SECRET_KEY", "defaultsecret")
	accessTokenTTL := envutil.Int("ACCESS_TOKEN_TTL", 3600)
	refreshTokenTTL := envutil.Int("REFRESH_TOKEN_TTL", 86400)

	// Database
	dbService, err := db.New(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Database auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	userRepo := repos.NewUserRepo(theDB, log)
	userTokenRepo := repos.NewUserTokenRepo(theDB, log)
	projectRepo := repos.NewProjectRepo(theDB, log)

	// Services
	log.Info("Setting up services from main...")
	authService := services.NewAuthService(
		theDB,
		log,
		userRepo,
		userTokenRepo,
		jwtSecretKey,
		time.Duration(accessTokenTTL)*time.Second,
		time.Duration(refreshTokenTTL)*time.Second,
	)
	projectService := services.NewProjectService(log, projectRepo)
	characterService := services.NewCharacterService(log, projectRepo)
	worldService := services.NewWorldService(log, projectRepo)
	writingService := services.NewWritingService(log, projectRepo)
	eraService := services.NewEraService(log, projectRepo)
	timelineService := services.NewTimelineService(log, projectRepo)
	catalogueService := services.NewCatalogueService(log, projectRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(log, authService)
	projectHandler := handlers.NewProjectHandler(log, projectService)
	characterHandler := handlers.NewCharacterHandler(log, characterService)
	worldHandler := handlers.NewWorldHandler(log, worldService)
	writingHandler := handlers.NewWritingHandler(log, writingService)
	eraHandler := handlers.NewEraHandler(log, eraService)
	timelineHandler := handlers.NewTimelineHandler(log, timelineService)
	catalogueHandler := handlers.NewCatalogueHandler(log, catalogueService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:      authHandler,
		AuthMiddleware:   authMiddleware,
		ProjectHandler:   projectHandler,
		CharacterHandler: characterHandler,
		WorldHandler:     worldHandler,
		WritingHandler:   writingHandler,
		EraHandler:       eraHandler,
		TimelineHandler:  timelineHandler,
		CatalogueHandler: catalogueHandler,
	})

	port := envutil.String("PORT", "8080")
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}
