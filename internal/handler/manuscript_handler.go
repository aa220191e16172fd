package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glodam/glodam-mock-api/internal/common"
	"github.com/glodam/glodam-mock-api/internal/domain"
	"github.com/glodam/glodam-mock-api/internal/store"
	"github.com/glodam/glodam-mock-api/pkg/ginutil"
)

// ManuscriptHandler handles the manuscript (원고) endpoints
type ManuscriptHandler struct {
	store *store.Store
}

// NewManuscriptHandler creates a new ManuscriptHandler
func NewManuscriptHandler(s *store.Store) *ManuscriptHandler {
	return &ManuscriptHandler{store: s}
}

// List handles GET /api/v1/author/works/:workId/manuscripts
func (h *ManuscriptHandler) List(c *gin.Context) {
	workID, err := ginutil.ParamInt(c, "workId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 작품 ID입니다", err)
		return
	}
	c.JSON(http.StatusOK, h.store.ListManuscripts(workID))
}

// Get handles GET /api/v1/author/manuscripts/:manuscriptId — global scan,
// first match in work insertion order
func (h *ManuscriptHandler) Get(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "manuscriptId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 원고 ID입니다", err)
		return
	}

	m, ok := h.store.GetManuscript(id)
	if !ok {
		common.ErrorResponse(c, http.StatusNotFound, "원고를 찾을 수 없습니다", common.ErrManuscriptNotFound)
		return
	}
	c.JSON(http.StatusOK, m)
}

// Create handles POST /api/v1/author/works/:workId/manuscripts
func (h *ManuscriptHandler) Create(c *gin.Context) {
	workID, err := ginutil.ParamInt(c, "workId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 작품 ID입니다", err)
		return
	}

	var patch domain.ManuscriptPatch
	_ = c.ShouldBindJSON(&patch)

	c.JSON(http.StatusOK, h.store.CreateManuscript(workID, patch))
}

type manuscriptTextRequest struct {
	ID  *int   `json:"id"`
	Txt string `json:"txt"`
}

// UpdateText handles PATCH /api/v1/author/manuscripts/text — responds with
// the supplied id as a bare JSON integer, or the constant fallback 1 when
// the body carries no id
func (h *ManuscriptHandler) UpdateText(c *gin.Context) {
	var req manuscriptTextRequest
	_ = c.ShouldBindJSON(&req)

	id := 0
	if req.ID != nil {
		id = *req.ID
	}
	c.JSON(http.StatusOK, h.store.UpdateManuscriptText(id, req.Txt))
}

// UpdateInfo handles PATCH /api/v1/author/manuscripts/:manuscriptId —
// fixture stub, reports success regardless of the target
func (h *ManuscriptHandler) UpdateInfo(c *gin.Context) {
	id, _ := ginutil.ParamInt(c, "manuscriptId")

	var patch domain.ManuscriptPatch
	_ = c.ShouldBindJSON(&patch)

	_ = h.store.UpdateManuscriptInfo(id, patch)
	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/v1/author/manuscripts/:manuscriptId — fixture
// stub, reports success regardless of the target
func (h *ManuscriptHandler) Delete(c *gin.Context) {
	id, _ := ginutil.ParamInt(c, "manuscriptId")
	_ = h.store.DeleteManuscript(id)
	c.Status(http.StatusOK)
}
