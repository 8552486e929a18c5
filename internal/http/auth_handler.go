package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"critiquelab/internal/service"
)

// AuthHandler registra dispositivos anonimos y emite sus tokens.
type AuthHandler struct {
	logger  *zap.Logger
	authSvc *service.DeviceAuthService
}

func NewAuthHandler(logger *zap.Logger, authSvc *service.DeviceAuthService) *AuthHandler {
	return &AuthHandler{logger: logger, authSvc: authSvc}
}

// RegisterDevice maneja POST /auth/device.
func (h *AuthHandler) RegisterDevice(c *gin.Context) {
	if h.authSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "auth not configured"})
		return
	}

	var req struct {
		DisplayName string `json:"display_name"`
	}
	// Body opcional: registrar sin nombre es valido.
	_ = c.ShouldBindJSON(&req)

	token, err := h.authSvc.Register(req.DisplayName)
	if err != nil {
		h.logger.Error("device register failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register device"})
		return
	}
	c.JSON(http.StatusCreated, token)
}
