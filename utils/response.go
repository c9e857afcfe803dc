package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"idocx/errs"
	"idocx/models"
)

// OK writes a success envelope around data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, models.NewGenericResponse(data))
}

// Paged writes a success envelope with paging totals.
func Paged(c *gin.Context, data interface{}, total, count int64, currentPage int) {
	c.JSON(http.StatusOK, models.NewPagedResponse(data, total, count, currentPage))
}

// BadRequest reports a malformed or unbindable request.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.GenericErrorResponse{
		ErrorCode: http.StatusBadRequest,
		Message:   message,
	})
}

// HandleError maps a service error onto its HTTP status. This is the single
// place where error codes meet HTTP; services never see status codes.
func HandleError(c *gin.Context, err error) {
	code := errs.CodeOf(err)
	status := httpStatus(code)

	logrus.WithFields(logrus.Fields{
		"status": status,
		"code":   int(code),
		"path":   c.Request.URL.Path,
	}).WithError(err).Error("Request failed")

	c.JSON(status, models.GenericErrorResponse{
		ErrorCode: int(code),
		Message:   err.Error(),
	})
}

func httpStatus(code errs.Code) int {
	switch code {
	case errs.CodeResourceNotFound, errs.CodeFileNotFound:
		return http.StatusNotFound
	case errs.CodeFolderAlreadyExists:
		return http.StatusConflict
	case errs.CodeUnsupported:
		return http.StatusUnprocessableEntity
	case errs.CodeLimitExceeding:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
