package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glodam/glodam-mock-api/internal/common"
	"github.com/glodam/glodam-mock-api/internal/domain"
	"github.com/glodam/glodam-mock-api/internal/store"
	"github.com/glodam/glodam-mock-api/pkg/ginutil"
)

// ProposalHandler handles the manager IP-expansion proposal endpoints
type ProposalHandler struct {
	store *store.Store
}

// NewProposalHandler creates a new ProposalHandler
func NewProposalHandler(s *store.Store) *ProposalHandler {
	return &ProposalHandler{store: s}
}

// List handles GET /api/v1/manager/ip-expansion/proposals
// status=ALL 또는 생략이면 전체, page/size는 0-기반 페이지 봉투
func (h *ProposalHandler) List(c *gin.Context) {
	status := c.Query("status")
	page := ginutil.QueryInt(c, "page", 0)
	size := ginutil.QueryInt(c, "size", common.DefaultPageSize)

	proposals := h.store.ListProposals(status)
	c.JSON(http.StatusOK, common.Paginate(proposals, page, size))
}

// Get handles GET /api/v1/manager/ip-expansion/proposals/:proposalId
func (h *ProposalHandler) Get(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "proposalId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 제안 ID입니다", err)
		return
	}

	p, ok := h.store.GetProposal(id)
	if !ok {
		common.ErrorResponse(c, http.StatusNotFound, "제안을 찾을 수 없습니다", common.ErrProposalNotFound)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create handles POST /api/v1/manager/ip-expansion/proposals — the new
// proposal goes to the front of the list (newest-first)
func (h *ProposalHandler) Create(c *gin.Context) {
	var patch domain.ProposalPatch
	_ = c.ShouldBindJSON(&patch)

	c.JSON(http.StatusOK, h.store.CreateProposal(patch))
}

// Update handles PATCH /api/v1/manager/ip-expansion/proposals/:proposalId
func (h *ProposalHandler) Update(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "proposalId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 제안 ID입니다", err)
		return
	}

	var patch domain.ProposalPatch
	_ = c.ShouldBindJSON(&patch)

	if p, ok := h.store.UpdateProposal(id, patch); ok {
		c.JSON(http.StatusOK, p)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/v1/manager/ip-expansion/proposals/:proposalId
func (h *ProposalHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "proposalId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 제안 ID입니다", err)
		return
	}

	_ = h.store.DeleteProposal(id)
	c.Status(http.StatusOK)
}
