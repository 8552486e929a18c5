package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"critiquelab/internal/metrics"
	"critiquelab/internal/service"
	"critiquelab/internal/store"
)

// ScoreHandler mantiene dependencias de los endpoints de puntuacion.
type ScoreHandler struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
	scoreS  *service.ScoreService
	scores  *store.ScoreStore
}

func NewScoreHandler(logger *zap.Logger, m *metrics.Metrics, scoreS *service.ScoreService, scores *store.ScoreStore) *ScoreHandler {
	return &ScoreHandler{
		logger:  logger,
		metrics: m,
		scoreS:  scoreS,
		scores:  scores,
	}
}

// Score maneja POST /score.
func (h *ScoreHandler) Score(c *gin.Context) {
	var req struct {
		Text   string `json:"text" binding:"required"`
		Source string `json:"source"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid score request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	record, err := h.scoreS.ScoreArgument(c.Request.Context(), clientKey(c), req.Text, req.Source)
	if err != nil {
		respondOracleError(c, h.logger, h.metrics, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ScoresRecorded.Inc()
	}
	c.JSON(http.StatusOK, gin.H{"score": record})
}

// ListScores maneja GET /scores.
func (h *ScoreHandler) ListScores(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"scores": h.scores.List(c.Request.Context(), clientKey(c))})
}

// DeleteScore maneja DELETE /scores/:id.
func (h *ScoreHandler) DeleteScore(c *gin.Context) {
	h.scores.DeleteScore(c.Request.Context(), clientKey(c), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Stats maneja GET /scores/stats.
func (h *ScoreHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	key := clientKey(c)
	c.JSON(http.StatusOK, gin.H{
		"average_score":     h.scores.AverageScore(ctx, key),
		"highest_score":     h.scores.HighestScore(ctx, key),
		"category_averages": h.scores.CategoryAverages(ctx, key),
	})
}
