package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"critiquelab/internal/repository"
)

// LeaderboardHandler expone el ranking global agregado por dispositivo.
type LeaderboardHandler struct {
	logger *zap.Logger
	repo   repository.LeaderboardRepository
}

func NewLeaderboardHandler(logger *zap.Logger, repo repository.LeaderboardRepository) *LeaderboardHandler {
	return &LeaderboardHandler{logger: logger, repo: repo}
}

// Top maneja GET /leaderboard.
func (h *LeaderboardHandler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, err := h.repo.Top(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("leaderboard query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load leaderboard"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

// Submit maneja POST /leaderboard (requiere token de dispositivo).
func (h *LeaderboardHandler) Submit(c *gin.Context) {
	claims, ok := GetDeviceClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		TotalScore int `json:"total_score" binding:"min=0,max=100"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid leaderboard submission", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.repo.SubmitScore(c.Request.Context(), claims.DeviceID, claims.DisplayName, req.TotalScore, time.Now().UTC())
	if err != nil {
		h.logger.Error("leaderboard submit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit score"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"submitted": true})
}
