package models

import "net/http"

const (
	ResponseSuccess = "success"
	ResponseError   = "error"
)

// GenericResponse is the envelope returned by every API endpoint.
type GenericResponse struct {
	Status      int         `json:"status"`
	Message     string      `json:"message"`
	Data        interface{} `json:"data,omitempty"`
	Total       int64       `json:"total,omitempty"`
	Count       int64       `json:"count,omitempty"`
	CurrentPage int         `json:"currentPage,omitempty"`
}

// GenericErrorResponse is the envelope for failed requests.
type GenericErrorResponse struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
}

// NewGenericResponse wraps data in a success envelope.
func NewGenericResponse(data interface{}) GenericResponse {
	return GenericResponse{
		Status:  http.StatusOK,
		Message: ResponseSuccess,
		Data:    data,
	}
}

// NewPagedResponse wraps a page of data with its totals.
func NewPagedResponse(data interface{}, total, count int64, currentPage int) GenericResponse {
	return GenericResponse{
		Status:      http.StatusOK,
		Message:     ResponseSuccess,
		Data:        data,
		Total:       total,
		Count:       count,
		CurrentPage: currentPage,
	}
}
