package controllers

import (
	"github.com/gin-gonic/gin"

	"idocx/services"
	"idocx/utils"
)

// SearchController exposes field-level metadata search.
type SearchController struct {
	search *services.SearchService
}

func NewSearchController(search *services.SearchService) *SearchController {
	return &SearchController{search: search}
}

// Search queries either metadata collection by field, filter and value.
// GET /api/v1/search
func (sc *SearchController) Search(c *gin.Context) {
	pageNo, pageSize := utils.PageParams(c)

	results, total, err := sc.search.Search(
		c.Query("searchOn"),
		c.Query("field"),
		c.Query("workspace"),
		c.Query("filter"),
		c.Query("value"),
		pageNo, pageSize,
	)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Paged(c, results, total, utils.SliceLen(results), pageNo)
}
