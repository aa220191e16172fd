package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glodam/glodam-mock-api/internal/common"
	"github.com/glodam/glodam-mock-api/internal/store"
	"github.com/glodam/glodam-mock-api/pkg/ginutil"
)

// AuthorHandler handles the manager author-roster endpoints
type AuthorHandler struct {
	store *store.Store
}

// NewAuthorHandler creates a new AuthorHandler
func NewAuthorHandler(s *store.Store) *AuthorHandler {
	return &AuthorHandler{store: s}
}

// List handles GET /api/v1/manager/authors and its /list alias.
// The full 50-author roster is regenerated before slicing, so paging is
// stable while the rolled fields churn per request.
func (h *AuthorHandler) List(c *gin.Context) {
	page := ginutil.QueryInt(c, "page", 0)
	size := ginutil.QueryInt(c, "size", common.DefaultPageSize)

	authors := h.store.ListAuthors()
	c.JSON(http.StatusOK, common.Paginate(authors, page, size))
}
