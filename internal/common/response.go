package common

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pageable page cursor of the page envelope
type Pageable struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// Page is the pagination envelope the frontend expects:
// {content, pageable, totalElements, totalPages}
type Page[T any] struct {
	Content       []T      `json:"content"`
	Pageable      Pageable `json:"pageable"`
	TotalElements int      `json:"totalElements"`
	TotalPages    int      `json:"totalPages"`
}

// DefaultPageSize applies when the size query parameter is absent
const DefaultPageSize = 10

// Paginate slices items into a zero-based page envelope.
// Out-of-range pages yield an empty content slice, not an error.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 0 {
		page = 0
	}

	total := len(items)
	totalPages := int(math.Ceil(float64(total) / float64(size)))

	content := []T{}
	start := page * size
	if start < total {
		end := start + size
		if end > total {
			end = total
		}
		content = append(content, items[start:end]...)
	}

	return Page[T]{
		Content:       content,
		Pageable:      Pageable{PageNumber: page, PageSize: size},
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// ErrorInfo error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorResponse returns an error JSON response
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	errInfo := &ErrorInfo{
		Code:    getErrorCode(status),
		Message: message,
	}
	if err != nil {
		errInfo.Details = err.Error()
	}

	c.JSON(status, gin.H{
		"error": errInfo,
	})
}

// getErrorCode generates error code from HTTP status
func getErrorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	default:
		return "INTERNAL_ERROR"
	}
}
