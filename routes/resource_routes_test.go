package routes

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"idocx/controllers"
	"idocx/services"
)

func TestResourceRouteMethods(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	rc := controllers.NewResourceController(services.NewResourceService(nil, nil, nil))
	nc := controllers.NewNotificationController(services.NewSendGridNotificationService("", nil))
	ResourceRoutes(router.Group("/api/v1"), rc, nc)

	methods := make(map[string]string)
	for _, route := range router.Routes() {
		methods[route.Path] = route.Method
	}

	assert.Equal(t, http.MethodPut, methods["/api/v1/update"])
	assert.Equal(t, http.MethodGet, methods["/api/v1/list"])
	assert.Equal(t, http.MethodDelete, methods["/api/v1/delete-resource"])
	assert.Equal(t, http.MethodPost, methods["/api/v1/send-email"])
}
