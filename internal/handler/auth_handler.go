package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/glodam/glodam-mock-api/internal/common"
	"github.com/glodam/glodam-mock-api/internal/session"
	"github.com/glodam/glodam-mock-api/pkg/jwt"
)

// AuthHandler handles the dev login endpoints. Any password is accepted;
// the only real effect is the process-wide session flag plus a signed dev
// token for frontend code that expects one.
type AuthHandler struct {
	flag   *session.Flag
	tokens *jwt.Manager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(flag *session.Flag, tokens *jwt.Manager) *AuthHandler {
	return &AuthHandler{flag: flag, tokens: tokens}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

// inferRole derives the caller role from the email local part:
// manager* 계정은 MANAGER, 나머지는 AUTHOR
func inferRole(email string) session.Role {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	if strings.HasPrefix(strings.ToLower(local), "manager") {
		return session.RoleManager
	}
	return session.RoleAuthor
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다", err)
		return
	}

	role := inferRole(req.Email)
	h.flag.Set(role)

	accessToken, err := h.tokens.Generate(req.Email, string(role))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "토큰 발급에 실패했습니다", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": accessToken,
		"role":        role,
	})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.flag.Clear()
	c.JSON(http.StatusOK, gin.H{})
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	role := h.flag.Current()
	if role == session.RoleNone {
		common.ErrorResponse(c, http.StatusUnauthorized, "로그인이 필요합니다", common.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}
