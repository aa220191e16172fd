package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glodam/glodam-mock-api/internal/common"
	"github.com/glodam/glodam-mock-api/internal/domain"
	"github.com/glodam/glodam-mock-api/internal/store"
	"github.com/glodam/glodam-mock-api/pkg/ginutil"
)

// WorkHandler handles the author work endpoints
type WorkHandler struct {
	store *store.Store
}

// NewWorkHandler creates a new WorkHandler
func NewWorkHandler(s *store.Store) *WorkHandler {
	return &WorkHandler{store: s}
}

// List handles GET /api/v1/author/works
// authorId 쿼리는 받기만 하고 필터링하지 않는다 (픽스처 계약)
func (h *WorkHandler) List(c *gin.Context) {
	_ = c.Query("authorId")
	c.JSON(http.StatusOK, h.store.ListWorks())
}

// Create handles POST /api/v1/author/works — responds with the bare new id,
// not the full record
func (h *WorkHandler) Create(c *gin.Context) {
	var patch domain.WorkPatch
	// 본문이 깨져 있으면 빈 patch로 진행한다 (검증 우회 허용)
	_ = c.ShouldBindJSON(&patch)

	id := h.store.CreateWork(patch)
	c.JSON(http.StatusOK, id)
}

// Get handles GET /api/v1/author/works/:workId
func (h *WorkHandler) Get(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "workId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 작품 ID입니다", err)
		return
	}

	work, ok := h.store.GetWork(id)
	if !ok {
		common.ErrorResponse(c, http.StatusNotFound, "작품을 찾을 수 없습니다", common.ErrWorkNotFound)
		return
	}
	c.JSON(http.StatusOK, work)
}

// UpdateStatus handles PATCH /api/v1/author/works/:workId/status
// 200 with an empty body whether or not the work exists — callers cannot
// tell "updated" from "not found" here, and the frontend depends on that
func (h *WorkHandler) UpdateStatus(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "workId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 작품 ID입니다", err)
		return
	}

	status := domain.WorkStatus(c.Query("status"))
	_ = h.store.UpdateWorkStatus(id, status)
	c.Status(http.StatusOK)
}

// Update handles PATCH /api/v1/author/works/:workId — shallow merge;
// silent no-op on a missing work
func (h *WorkHandler) Update(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "workId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 작품 ID입니다", err)
		return
	}

	var patch domain.WorkPatch
	_ = c.ShouldBindJSON(&patch)

	if h.store.UpdateWork(id, patch) {
		work, _ := h.store.GetWork(id)
		c.JSON(http.StatusOK, work)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/v1/author/works/:workId — children under the
// id are left in place (orphan quirk)
func (h *WorkHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "workId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 작품 ID입니다", err)
		return
	}

	_ = h.store.DeleteWork(id)
	c.Status(http.StatusOK)
}
