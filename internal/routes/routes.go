// Package routes registers the full /api/v1 surface. Gin's tree ranks
// literal segments above parameters, so /author/works never falls into the
// /author/:userId/:title/... shape — route precedence is structural here,
// not registration-order dependent.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/glodam/glodam-mock-api/internal/handler"
)

// Handlers bundles everything Setup wires
type Handlers struct {
	Auth       *handler.AuthHandler
	Work       *handler.WorkHandler
	Lorebook   *handler.LorebookHandler
	Manuscript *handler.ManuscriptHandler
	Proposal   *handler.ProposalHandler
	Author     *handler.AuthorHandler
	Dev        *handler.DevHandler
}

// Setup configures the API routes
func Setup(router *gin.Engine, h Handlers) {
	api := router.Group("/api/v1")

	// Auth — the only handlers with side effects outside the store
	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/me", h.Auth.Me)

	// Author works
	author := api.Group("/author")
	author.GET("/works", h.Work.List)
	author.POST("/works", h.Work.Create)
	author.GET("/works/:workId", h.Work.Get)
	author.PATCH("/works/:workId", h.Work.Update)
	author.PATCH("/works/:workId/status", h.Work.UpdateStatus)
	author.DELETE("/works/:workId", h.Work.Delete)

	// Manuscripts — per-work listing/creation plus id-only lookups
	author.GET("/works/:workId/manuscripts", h.Manuscript.List)
	author.POST("/works/:workId/manuscripts", h.Manuscript.Create)
	author.GET("/manuscripts/:manuscriptId", h.Manuscript.Get)
	author.PATCH("/manuscripts/text", h.Manuscript.UpdateText)
	author.PATCH("/manuscripts/:manuscriptId", h.Manuscript.UpdateInfo)
	author.DELETE("/manuscripts/:manuscriptId", h.Manuscript.Delete)

	// Lorebook — userId/title are frontend display segments; the owning
	// work rides in the workId query/body
	author.GET("/:userId/:title/lorebook/:category", h.Lorebook.List)
	author.POST("/:userId/:title/lorebook", h.Lorebook.Create)
	author.PATCH("/:userId/:title/lorebook/:lorebookId", h.Lorebook.Update)
	author.DELETE("/:userId/:title/lorebook/:lorebookId", h.Lorebook.Delete)

	// AI-assisted lorebook save (similarity check is mocked to PASS)
	api.POST("/ai/author/:userId/:title/lorebook/setting_save", h.Lorebook.SettingSave)

	// Manager
	manager := api.Group("/manager")
	manager.GET("/authors", h.Author.List)
	manager.GET("/authors/list", h.Author.List)
	manager.GET("/ip-expansion/proposals", h.Proposal.List)
	manager.POST("/ip-expansion/proposals", h.Proposal.Create)
	manager.GET("/ip-expansion/proposals/:proposalId", h.Proposal.Get)
	manager.PATCH("/ip-expansion/proposals/:proposalId", h.Proposal.Update)
	manager.DELETE("/ip-expansion/proposals/:proposalId", h.Proposal.Delete)

	// Dev conveniences
	dev := api.Group("/dev")
	dev.POST("/reset", h.Dev.Reset)
}
