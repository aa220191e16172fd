package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glodam/glodam-mock-api/internal/fixture"
	"github.com/glodam/glodam-mock-api/internal/store"
)

// DevHandler exposes fixture conveniences that a real backend would not
type DevHandler struct {
	store   *store.Store
	newSeed func() fixture.Seed
}

// NewDevHandler creates a new DevHandler; newSeed rebuilds the catalog
func NewDevHandler(s *store.Store, newSeed func() fixture.Seed) *DevHandler {
	return &DevHandler{store: s, newSeed: newSeed}
}

// Reset handles POST /api/v1/dev/reset — rebuilds every collection from
// the catalog, same as a process restart
func (h *DevHandler) Reset(c *gin.Context) {
	h.store.Reset(h.newSeed())
	c.JSON(http.StatusOK, gin.H{"reset": true})
}
