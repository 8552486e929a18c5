package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"critiquelab/internal/service"
	"critiquelab/internal/store"
)

// ProgressHandler expone las cuatro vistas derivadas en una sola respuesta.
// Cada peticion recalcula todo desde el snapshot actual del store.
type ProgressHandler struct {
	logger       *zap.Logger
	scores       *store.ScoreStore
	rating       service.RatingEngine
	streaks      service.StreakTracker
	weaknesses   service.WeaknessAnalyzer
	achievements service.AchievementEvaluator
}

func NewProgressHandler(logger *zap.Logger, scores *store.ScoreStore) *ProgressHandler {
	return &ProgressHandler{
		logger: logger,
		scores: scores,
	}
}

// Progress maneja GET /progress.
func (h *ProgressHandler) Progress(c *gin.Context) {
	records := h.scores.List(c.Request.Context(), clientKey(c))

	c.JSON(http.StatusOK, gin.H{
		"rating":       h.rating.Compute(records),
		"streak":       h.streaks.Compute(records),
		"weakness":     h.weaknesses.Compute(records),
		"achievements": h.achievements.Compute(records),
	})
}
