package routes

import (
	"github.com/gin-gonic/gin"

	"idocx/controllers"
)

// ResourceRoutes registers status management, listing, deletion and mailing
// endpoints.
func ResourceRoutes(rg *gin.RouterGroup, rc *controllers.ResourceController, nc *controllers.NotificationController) {
	rg.PUT("/update", rc.UpdateStatus)
	rg.GET("/list", rc.List)
	rg.DELETE("/delete-resource", rc.Delete)
	rg.POST("/send-email", nc.SendEmail)
}
