package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"idocx/errs"
)

func TestHandleErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{errs.New(errs.CodeResourceNotFound, "missing"), http.StatusNotFound},
		{errs.New(errs.CodeFileNotFound, "missing"), http.StatusNotFound},
		{errs.New(errs.CodeFolderAlreadyExists, "dup"), http.StatusConflict},
		{errs.New(errs.CodeUnsupported, "bad enum"), http.StatusUnprocessableEntity},
		{errs.New(errs.CodeLimitExceeding, "too big"), http.StatusRequestEntityTooLarge},
		{errs.New(errs.CodeFailedToDelete, "boom"), http.StatusInternalServerError},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest("GET", "/test", nil)

		HandleError(c, tc.err)
		assert.Equal(t, tc.want, recorder.Code, "error %v", tc.err)
	}
}

func TestPageParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/test?pageNo=2&pageSize=25", nil)
	pageNo, pageSize := PageParams(c)
	assert.Equal(t, 2, pageNo)
	assert.Equal(t, 25, pageSize)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/test?pageNo=-1&pageSize=abc", nil)
	pageNo, pageSize = PageParams(c)
	assert.Equal(t, 0, pageNo)
	assert.Equal(t, 10, pageSize)
}

func TestSliceLen(t *testing.T) {
	assert.EqualValues(t, 3, SliceLen([]int{1, 2, 3}))
	assert.EqualValues(t, 0, SliceLen(nil))
	assert.EqualValues(t, 0, SliceLen("not a slice"))
}
