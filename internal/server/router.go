package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/loreweave/loreweave-backend/internal/handlers"
	"github.com/loreweave/loreweave-backend/internal/middleware"
	"github.com/loreweave/loreweave-backend/internal/platform/envutil"
)

type RouterConfig struct {
	AuthHandler      *handlers.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleware
	ProjectHandler   *handlers.ProjectHandler
	CharacterHandler *handlers.CharacterHandler
	WorldHandler     *handlers.WorldHandler
	WritingHandler   *handlers.WritingHandler
	EraHandler       *handlers.EraHandler
	TimelineHandler  *handlers.TimelineHandler
	CatalogueHandler *handlers.CatalogueHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware("loreweave-backend"))

	allowOrigins := strings.Split(envutil.String("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173"), ",")
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)

	// Protected
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)

	api := protected.Group("/api")
	{
		api.GET("/projects", cfg.ProjectHandler.List)
		api.POST("/projects", cfg.ProjectHandler.Create)
		api.GET("/projects/:projectID", cfg.ProjectHandler.Get)
		api.PUT("/projects/:projectID", cfg.ProjectHandler.Update)
		api.DELETE("/projects/:projectID", cfg.ProjectHandler.Delete)

		api.GET("/projects/:projectID/characters", cfg.CharacterHandler.List)
		api.POST("/projects/:projectID/characters", cfg.CharacterHandler.Create)
		api.PUT("/projects/:projectID/characters/:characterID", cfg.CharacterHandler.Update)
		api.DELETE("/projects/:projectID/characters/:characterID", cfg.CharacterHandler.Delete)

		api.GET("/projects/:projectID/worlds", cfg.WorldHandler.List)
		api.POST("/projects/:projectID/worlds", cfg.WorldHandler.Create)
		api.PUT("/projects/:projectID/worlds/:worldID", cfg.WorldHandler.Update)
		api.DELETE("/projects/:projectID/worlds/:worldID", cfg.WorldHandler.Delete)

		api.GET("/projects/:projectID/writings", cfg.WritingHandler.List)
		api.POST("/projects/:projectID/writings", cfg.WritingHandler.Create)
		api.PUT("/projects/:projectID/writings/:writingID", cfg.WritingHandler.Update)
		api.DELETE("/projects/:projectID/writings/:writingID", cfg.WritingHandler.Delete)

		api.GET("/projects/:projectID/eras", cfg.EraHandler.List)
		api.POST("/projects/:projectID/eras", cfg.EraHandler.Create)
		api.PUT("/projects/:projectID/eras/order", cfg.EraHandler.Reorder)
		api.PUT("/projects/:projectID/eras/:eraID", cfg.EraHandler.Update)
		api.DELETE("/projects/:projectID/eras/:eraID", cfg.EraHandler.Delete)

		api.GET("/projects/:projectID/events", cfg.TimelineHandler.List)
		api.POST("/projects/:projectID/events", cfg.TimelineHandler.Create)
		api.PUT("/projects/:projectID/events/order", cfg.TimelineHandler.Reorder)
		api.PUT("/projects/:projectID/events/:eventID", cfg.TimelineHandler.Update)
		api.DELETE("/projects/:projectID/events/:eventID", cfg.TimelineHandler.Delete)

		api.GET("/projects/:projectID/catalogue", cfg.CatalogueHandler.List)
		api.POST("/projects/:projectID/catalogue", cfg.CatalogueHandler.Create)
		api.PUT("/projects/:projectID/catalogue/:itemID", cfg.CatalogueHandler.Update)
		api.DELETE("/projects/:projectID/catalogue/:itemID", cfg.CatalogueHandler.Delete)
	}

	return router
}
