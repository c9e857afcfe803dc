package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"idocx/config"
	"idocx/controllers"
	"idocx/dao"
	"idocx/database"
	"idocx/middleware"
	"idocx/services"
	"idocx/storage"
)

// SetupRoutes wires middleware, repositories, services and handlers onto the
// engine.
func SetupRoutes(router *gin.Engine, store storage.Adapter) {
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	router.GET("/health", func(c *gin.Context) {
		health := gin.H{"status": "healthy", "database": "healthy"}
		if err := database.GetManager().HealthCheck(); err != nil {
			health["status"] = "degraded"
			health["database"] = "unreachable"
		}
		c.JSON(http.StatusOK, health)
	})
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    config.AppConfig.AppName,
			"version": config.AppConfig.AppVersion,
		})
	})

	files := dao.NewFileMetadataRepository()
	folders := dao.NewFolderMetadataRepository()

	workspace := controllers.NewWorkspaceController(
		services.NewWorkspaceService(files, folders, store))
	resources := controllers.NewResourceController(
		services.NewResourceService(files, folders, store))
	search := controllers.NewSearchController(
		services.NewSearchService(dao.NewSearchDao()))
	conversions := controllers.NewConversionController(
		services.NewConversionService(files, store, config.AppConfig.MaxConversionPages))
	notifications := controllers.NewNotificationController(
		services.NewSendGridNotificationService(config.AppConfig.SendGridAPIKey, store))

	v1 := router.Group("/api/v1")
	WorkspaceRoutes(v1, workspace)
	ResourceRoutes(v1, resources, notifications)
	SearchRoutes(v1, search)
	ConversionRoutes(v1, conversions)
}
