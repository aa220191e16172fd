package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glodam/glodam-mock-api/internal/common"
	"github.com/glodam/glodam-mock-api/internal/domain"
	"github.com/glodam/glodam-mock-api/internal/fixture"
	"github.com/glodam/glodam-mock-api/internal/store"
	"github.com/glodam/glodam-mock-api/pkg/ginutil"
)

// LorebookHandler handles the lorebook (설정집) endpoints. The userId/title
// path segments are display routing from the frontend; the owning work is
// identified by the workId query/body value, falling back to the flagship
// work when absent.
type LorebookHandler struct {
	store *store.Store
}

// NewLorebookHandler creates a new LorebookHandler
func NewLorebookHandler(s *store.Store) *LorebookHandler {
	return &LorebookHandler{store: s}
}

// List handles GET /api/v1/author/:userId/:title/lorebook/:category
// category "*" 또는 "all"이면 전체 반환
func (h *LorebookHandler) List(c *gin.Context) {
	workID := ginutil.QueryInt(c, "workId", fixture.FlagshipWorkID)
	category := c.Param("category")

	c.JSON(http.StatusOK, h.store.ListLorebooksByCategory(workID, category))
}

// Create handles POST /api/v1/author/:userId/:title/lorebook
func (h *LorebookHandler) Create(c *gin.Context) {
	var patch domain.LorebookPatch
	_ = c.ShouldBindJSON(&patch)

	workID := fixture.FlagshipWorkID
	if patch.WorkID != nil {
		workID = *patch.WorkID
	}

	entry := h.store.CreateLorebook(workID, patch)
	c.JSON(http.StatusOK, entry)
}

// settingSaveResponse is the AI setting-save envelope: the stored entry
// plus a similarity verdict. The mock always passes with no similar hits.
type settingSaveResponse struct {
	domain.Lorebook
	SimilarSettings []domain.Lorebook `json:"similarSettings"`
	CheckResult     string            `json:"checkResult"`
}

// SettingSave handles POST /api/v1/ai/author/:userId/:title/lorebook/setting_save
func (h *LorebookHandler) SettingSave(c *gin.Context) {
	var patch domain.LorebookPatch
	_ = c.ShouldBindJSON(&patch)

	workID := fixture.FlagshipWorkID
	if patch.WorkID != nil {
		workID = *patch.WorkID
	}

	entry := h.store.CreateLorebook(workID, patch)
	c.JSON(http.StatusOK, settingSaveResponse{
		Lorebook:        entry,
		SimilarSettings: []domain.Lorebook{},
		CheckResult:     "PASS",
	})
}

// Update handles PATCH /api/v1/author/:userId/:title/lorebook/:lorebookId
// The route carries no workId, so the store scans all works for the owner.
// A malformed body degrades to an empty patch: prior state stays intact and
// the response is still a 200.
func (h *LorebookHandler) Update(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "lorebookId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 설정집 ID입니다", err)
		return
	}

	var patch domain.LorebookPatch
	_ = c.ShouldBindJSON(&patch)

	if entry, ok := h.store.UpdateLorebook(id, patch); ok {
		c.JSON(http.StatusOK, entry)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/v1/author/:userId/:title/lorebook/:lorebookId
func (h *LorebookHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "lorebookId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 설정집 ID입니다", err)
		return
	}

	_ = h.store.DeleteLorebook(id)
	c.Status(http.StatusOK)
}
