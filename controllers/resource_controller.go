package controllers

import (
	"github.com/gin-gonic/gin"

	"idocx/models"
	"idocx/services"
	"idocx/utils"
)

// ResourceController exposes status management, flag-based listing and
// deletion.
type ResourceController struct {
	resources *services.ResourceService
}

func NewResourceController(resources *services.ResourceService) *ResourceController {
	return &ResourceController{resources: resources}
}

// UpdateStatus flips one status flag on a batch of resources.
// PUT /api/v1/update
func (rc *ResourceController) UpdateStatus(c *gin.Context) {
	var req models.ResourceManagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid resource management request: "+err.Error())
		return
	}

	updated, err := rc.resources.UpdateResourceStatus(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OK(c, updated)
}

// List returns one page of resources whose given flag is set.
// GET /api/v1/list
func (rc *ResourceController) List(c *gin.Context) {
	action := c.Query("action")
	resourceType := c.Query("resourceType")
	pageNo, pageSize := utils.PageParams(c)

	resources, total, err := rc.resources.GetResources(action, resourceType, pageNo, pageSize)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Paged(c, resources, total, utils.SliceLen(resources), pageNo)
}

// Delete removes a batch of resources, content and metadata both.
// POST /api/v1/delete-resource
func (rc *ResourceController) Delete(c *gin.Context) {
	var req models.IdsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid delete request: "+err.Error())
		return
	}

	if err := rc.resources.DeleteResource(&req); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OK(c, "resource deleted successfully")
}
