// Package ginutil has small parsing helpers for the int ids every entity
// route carries (workId, lorebookId, manuscriptId, proposalId).
package ginutil

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// QueryInt reads an integer query parameter. Absent or unparsable values
// fall back to the default; lorebook routes lean on this to resolve a
// missing workId to the flagship work.
func QueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// ParamInt reads an integer path parameter. Unlike QueryInt there is no
// fallback: a malformed id segment is the caller's 400.
func ParamInt(c *gin.Context, key string) (int, error) {
	valueStr := c.Param(key)
	return strconv.Atoi(valueStr)
}
