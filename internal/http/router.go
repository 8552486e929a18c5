package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"critiquelab/internal/metrics"
	"critiquelab/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	m *metrics.Metrics,
	limiter service.RateLimiter,
	authSvc *service.DeviceAuthService,
	critiqueH *CritiqueHandler,
	scoreH *ScoreHandler,
	progressH *ProgressHandler,
	leaderboardH *LeaderboardHandler,
	authH *AuthHandler,
) *gin.Engine {
	// Bodies con campos fuera del contrato se rechazan en el binding.
	gin.EnableJsonDecoderDisallowUnknownFields()

	r := gin.New()

	// Middlewares basicos: logging, metricas, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger, m), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Las rutas que llaman al oraculo pasan por el rate limiter por IP.
	oracle := r.Group("/")
	oracle.Use(RateLimitMiddleware(limiter, m))
	oracle.POST("/critique", critiqueH.Critique)
	oracle.POST("/coach", critiqueH.Coach)
	oracle.POST("/autopsy", critiqueH.Autopsy)
	oracle.POST("/score", scoreH.Score)

	critiques := r.Group("/critiques")
	critiques.GET("", critiqueH.ListCritiques)
	critiques.GET("/:id", critiqueH.GetCritique)
	critiques.DELETE("/:id", critiqueH.DeleteCritique)
	critiques.DELETE("", critiqueH.ClearCritiques)

	scores := r.Group("/scores")
	scores.GET("", scoreH.ListScores)
	scores.GET("/stats", scoreH.Stats)
	scores.DELETE("/:id", scoreH.DeleteScore)

	r.GET("/progress", progressH.Progress)

	auth := r.Group("/auth")
	auth.POST("/device", authH.RegisterDevice)

	if leaderboardH != nil {
		r.GET("/leaderboard", leaderboardH.Top)
		r.POST("/leaderboard", DeviceAuthMiddleware(authSvc), leaderboardH.Submit)
	}

	return r
}

// zapLoggerMiddleware loguea cada request y alimenta el contador HTTP.
func zapLoggerMiddleware(logger *zap.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
		if m != nil {
			m.HTTPRequests.WithLabelValues(
				c.Request.Method,
				c.FullPath(),
				strconv.Itoa(c.Writer.Status()),
			).Inc()
		}
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
