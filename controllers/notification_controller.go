package controllers

import (
	"github.com/gin-gonic/gin"

	"idocx/models"
	"idocx/services"
	"idocx/utils"
)

// NotificationController exposes mailing a stored document to a recipient.
type NotificationController struct {
	sender services.NotificationSender
}

func NewNotificationController(sender services.NotificationSender) *NotificationController {
	return &NotificationController{sender: sender}
}

// SendEmail mails the referenced document as an attachment.
// POST /api/v1/send-email
func (nc *NotificationController) SendEmail(c *gin.Context) {
	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid email request: "+err.Error())
		return
	}

	status, err := nc.sender.SendEmailWithAttachment(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OK(c, gin.H{"providerStatus": status})
}
