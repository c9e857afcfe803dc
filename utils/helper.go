package utils

import (
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageNo   = 0
	defaultPageSize = 10
)

// PageParams reads pageNo and pageSize from the query string, falling back
// to the defaults on absent or malformed values.
func PageParams(c *gin.Context) (int, int) {
	pageNo := queryInt(c, "pageNo", defaultPageNo)
	pageSize := queryInt(c, "pageSize", defaultPageSize)
	if pageNo < 0 {
		pageNo = defaultPageNo
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return pageNo, pageSize
}

// SliceLen returns the element count of a slice held in an interface, or 0.
// Used for the count field of paged envelopes whose element type varies.
func SliceLen(data interface{}) int64 {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Slice {
		return int64(v.Len())
	}
	return 0
}

func queryInt(c *gin.Context, key string, fallback int) int {
	value := c.Query(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
