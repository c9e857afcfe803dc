package routes

import (
	"github.com/gin-gonic/gin"

	"idocx/controllers"
)

// ConversionRoutes registers the document conversion endpoint.
func ConversionRoutes(rg *gin.RouterGroup, cc *controllers.ConversionController) {
	rg.GET("/conversions/:id", cc.Convert)
}
