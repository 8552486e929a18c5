package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"critiquelab/internal/llm"
	"critiquelab/internal/metrics"
	"critiquelab/internal/service"
)

// respondOracleError mapea la taxonomia de errores a respuestas HTTP:
// validacion 400, gateway saturado 429, creditos 402, forma invalida 500,
// resto 502. Nunca se expone detalle interno.
func respondOracleError(c *gin.Context, logger *zap.Logger, m *metrics.Metrics, err error) {
	gatewayKind := func(kind string) {
		if m != nil {
			m.GatewayErrors.WithLabelValues(kind).Inc()
		}
	}

	switch {
	case errors.Is(err, service.ErrTextEmpty),
		errors.Is(err, service.ErrTextTooShort),
		errors.Is(err, service.ErrTextTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, llm.ErrRateLimited):
		gatewayKind("rate_limited")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "AI service rate limit exceeded. Please try again later."})

	case errors.Is(err, llm.ErrQuotaExhausted):
		gatewayKind("quota")
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "AI credits exhausted. Please contact support."})

	case errors.Is(err, service.ErrInvalidOracleResponse):
		gatewayKind("parse")
		logger.Warn("oracle response rejected", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse critique response"})

	default:
		gatewayKind("other")
		logger.Error("oracle call failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to process your request. Please try again."})
	}
}
