package controllers

import (
	"mime"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"idocx/models"
	"idocx/services"
	"idocx/utils"
)

// WorkspaceController exposes the upload, download, rename and structure
// endpoints.
type WorkspaceController struct {
	workspace *services.WorkspaceService
}

func NewWorkspaceController(workspace *services.WorkspaceService) *WorkspaceController {
	return &WorkspaceController{workspace: workspace}
}

// Upload stores a batch of files under a target directory.
// POST /api/v1/workspace/upload
func (wc *WorkspaceController) Upload(c *gin.Context) {
	var req models.FileUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequest(c, "invalid upload request: "+err.Error())
		return
	}

	if err := wc.workspace.Store(&req); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OK(c, "files uploaded successfully")
}

// Download streams a stored file back to the caller.
// GET /api/v1/workspace/download/:id
func (wc *WorkspaceController) Download(c *gin.Context) {
	file, data, err := wc.workspace.LoadFile(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(file.FileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(200, contentType, data)
}

// FolderStructure lists the active folders of a workspace with their
// embedded documents.
// GET /api/v1/workspace/:workspacename
func (wc *WorkspaceController) FolderStructure(c *gin.Context) {
	folders, err := wc.workspace.GetAllFolderStructure(c.Param("workspacename"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OK(c, folders)
}

// Documents lists one page of active files under a directory.
// GET /api/v1/workspace/documents
func (wc *WorkspaceController) Documents(c *gin.Context) {
	filePath := c.Query("filePath")
	if filePath == "" {
		utils.BadRequest(c, "filePath is required")
		return
	}
	pageNo, pageSize := utils.PageParams(c)

	files, total, err := wc.workspace.GetFilesMetadata(filePath, pageNo, pageSize)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Paged(c, files, total, int64(len(files)), pageNo)
}

// UpdateFileName renames one file.
// PUT /api/v1/workspace/update-file/:id
func (wc *WorkspaceController) UpdateFileName(c *gin.Context) {
	newName := c.Query("fileName")
	if newName == "" {
		utils.BadRequest(c, "fileName is required")
		return
	}

	file, err := wc.workspace.UpdateFileName(c.Param("id"), newName)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OK(c, file)
}

// UpdateFolderName renames one folder and propagates the rename.
// PUT /api/v1/workspace/update-folder/:id
func (wc *WorkspaceController) UpdateFolderName(c *gin.Context) {
	newName := c.Query("folderName")
	if newName == "" {
		utils.BadRequest(c, "folderName is required")
		return
	}

	folder, err := wc.workspace.UpdateFolderName(c.Param("id"), newName)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OK(c, folder)
}

// CreateDirectory creates an explicit directory plus its folder record.
// POST /api/v1/workspace/create-directory
func (wc *WorkspaceController) CreateDirectory(c *gin.Context) {
	var req models.FolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid folder request: "+err.Error())
		return
	}

	folder, err := wc.workspace.GenerateDirectory(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OK(c, folder)
}
