package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skystack/console/pkg/auth"
)

// SessionHandlers handles login sessions.
type SessionHandlers struct {
	authSvc *auth.Service
}

func NewSessionHandlers(authSvc *auth.Service) *SessionHandlers {
	return &SessionHandlers{authSvc: authSvc}
}

// CreateSession handles POST /api/v1/sessions
func (h *SessionHandlers) CreateSession(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid request format",
		))
		return
	}

	resp, err := h.authSvc.Login(&req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrUserDisabled) {
			c.JSON(http.StatusUnauthorized, NewAPIError(
				http.StatusUnauthorized,
				"Unauthorized",
				"Invalid credentials",
			))
			return
		}
		c.JSON(http.StatusInternalServerError, NewAPIError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"Login failed",
		))
		return
	}

	c.JSON(http.StatusOK, resp)
}
