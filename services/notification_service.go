package services

import (
	"encoding/base64"
	"path"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"

	"idocx/errs"
	"idocx/models"
	"idocx/storage"
)

// NotificationSender delivers a workspace document to a recipient by email.
type NotificationSender interface {
	SendEmailWithAttachment(req *models.EmailRequest) (int, error)
}

// SendGridNotificationService sends mail through the SendGrid v3 API with the
// referenced document attached.
type SendGridNotificationService struct {
	apiKey string
	store  storage.Adapter
}

func NewSendGridNotificationService(apiKey string, store storage.Adapter) *SendGridNotificationService {
	return &SendGridNotificationService{
		apiKey: apiKey,
		store:  store,
	}
}

// SendEmailWithAttachment reads the document at req.FilePath, attaches it and
// sends. Returns the provider's HTTP status code.
func (ns *SendGridNotificationService) SendEmailWithAttachment(req *models.EmailRequest) (int, error) {
	data, err := ns.store.Read(req.FilePath)
	if err != nil {
		return 0, errs.Wrap(errs.CodeFileReading, "could not read file: "+req.FilePath, err)
	}

	from := mail.NewEmail("", req.FromEmail)
	to := mail.NewEmail("", req.ToEmail)
	message := mail.NewSingleEmail(from, req.Subject, to, req.Body, req.Body)

	attachment := mail.NewAttachment()
	attachment.SetContent(base64.StdEncoding.EncodeToString(data))
	attachment.SetType("application/octet-stream")
	attachment.SetFilename(path.Base(req.FilePath))
	attachment.SetDisposition("attachment")
	message.AddAttachment(attachment)

	client := sendgrid.NewSendClient(ns.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"to":     req.ToEmail,
		"status": response.StatusCode,
	}).Info("Email dispatched")

	return response.StatusCode, nil
}
