package routes

import (
	"github.com/gin-gonic/gin"

	"idocx/controllers"
)

// SearchRoutes registers the metadata search endpoint.
func SearchRoutes(rg *gin.RouterGroup, sc *controllers.SearchController) {
	rg.GET("/search", sc.Search)
}
