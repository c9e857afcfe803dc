package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware logs one structured entry per request.
func LoggingMiddleware() gin.HandlerFunc {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method

		if raw != "" {
			path = path + "?" + raw
		}

		entry := logger.WithFields(logrus.Fields{
			"status_code":  statusCode,
			"latency":      latency.String(),
			"client_ip":    c.ClientIP(),
			"method":       method,
			"path":         path,
			"user_agent":   c.Request.UserAgent(),
			"request_id":   c.GetString("request_id"),
			"content_type": c.ContentType(),
		})

		message := fmt.Sprintf("%s %s %d", method, path, statusCode)

		switch {
		case statusCode >= 500:
			entry.Error(message)
		case statusCode >= 400:
			entry.Warn(message)
		default:
			entry.Info(message)
		}
	}
}

// RequestIDMiddleware tags each request with a unique id, honoring one the
// caller already sent.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}
