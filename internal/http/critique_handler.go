package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"critiquelab/internal/metrics"
	"critiquelab/internal/service"
	"critiquelab/internal/store"
)

// CritiqueHandler mantiene dependencias de los endpoints de critica, coach y
// autopsy, mas el historial de criticas.
type CritiqueHandler struct {
	logger    *zap.Logger
	metrics   *metrics.Metrics
	critiqueS *service.CritiqueService
	coachS    *service.CoachService
	autopsyS  *service.AutopsyService
	critiques *store.CritiqueStore
}

func NewCritiqueHandler(
	logger *zap.Logger,
	m *metrics.Metrics,
	critiqueS *service.CritiqueService,
	coachS *service.CoachService,
	autopsyS *service.AutopsyService,
	critiques *store.CritiqueStore,
) *CritiqueHandler {
	return &CritiqueHandler{
		logger:    logger,
		metrics:   m,
		critiqueS: critiqueS,
		coachS:    coachS,
		autopsyS:  autopsyS,
		critiques: critiques,
	}
}

// Critique maneja POST /critique.
func (h *CritiqueHandler) Critique(c *gin.Context) {
	var req struct {
		Text    string `json:"text" binding:"required"`
		Persona string `json:"persona"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid critique request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	saved, err := h.critiqueS.Critique(c.Request.Context(), clientKey(c), req.Text, req.Persona)
	if err != nil {
		respondOracleError(c, h.logger, h.metrics, err)
		return
	}

	if h.metrics != nil {
		h.metrics.CritiquesServed.WithLabelValues(saved.Persona).Inc()
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       saved.ID,
		"critique": saved.Critique,
		"persona":  saved.Persona,
	})
}

// Coach maneja POST /coach.
func (h *CritiqueHandler) Coach(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid coach request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.coachS.Coach(c.Request.Context(), req.Text)
	if err != nil {
		respondOracleError(c, h.logger, h.metrics, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Autopsy maneja POST /autopsy.
func (h *CritiqueHandler) Autopsy(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid autopsy request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	analysis, err := h.autopsyS.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		respondOracleError(c, h.logger, h.metrics, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// ListCritiques maneja GET /critiques.
func (h *CritiqueHandler) ListCritiques(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"critiques": h.critiques.List(c.Request.Context(), clientKey(c))})
}

// GetCritique maneja GET /critiques/:id.
func (h *CritiqueHandler) GetCritique(c *gin.Context) {
	saved, ok := h.critiques.Get(c.Request.Context(), clientKey(c), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "critique not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"critique": saved})
}

// DeleteCritique maneja DELETE /critiques/:id.
func (h *CritiqueHandler) DeleteCritique(c *gin.Context) {
	h.critiques.Delete(c.Request.Context(), clientKey(c), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ClearCritiques maneja DELETE /critiques.
func (h *CritiqueHandler) ClearCritiques(c *gin.Context) {
	h.critiques.Clear(c.Request.Context(), clientKey(c))
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
