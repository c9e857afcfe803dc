package controllers

import (
	"github.com/gin-gonic/gin"

	"idocx/services"
	"idocx/utils"
)

// ConversionController exposes on-the-fly PDF conversion. Payloads are
// returned base64-encoded inside the standard envelope, one element per
// output file.
type ConversionController struct {
	conversions *services.ConversionService
}

func NewConversionController(conversions *services.ConversionService) *ConversionController {
	return &ConversionController{conversions: conversions}
}

// Convert renders a stored document into the requested format.
// GET /api/v1/conversions/:id
func (cc *ConversionController) Convert(c *gin.Context) {
	format := c.Query("format")
	if format == "" {
		utils.BadRequest(c, "format is required")
		return
	}
	pageNo, pageSize := utils.PageParams(c)

	payloads, err := cc.conversions.Convert(c.Param("id"), format, pageNo, pageSize)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Paged(c, payloads, int64(len(payloads)), int64(len(payloads)), pageNo)
}
