package routes

import (
	"github.com/gin-gonic/gin"

	"idocx/controllers"
)

// WorkspaceRoutes registers upload, download, rename and structure endpoints.
func WorkspaceRoutes(rg *gin.RouterGroup, wc *controllers.WorkspaceController) {
	workspace := rg.Group("/workspace")
	{
		workspace.POST("/upload", wc.Upload)
		workspace.GET("/download/:id", wc.Download)
		workspace.GET("/documents", wc.Documents)
		workspace.PUT("/update-file/:id", wc.UpdateFileName)
		workspace.PUT("/update-folder/:id", wc.UpdateFolderName)
		workspace.POST("/create-directory", wc.CreateDirectory)
		workspace.GET("/:workspacename", wc.FolderStructure)
	}
}
