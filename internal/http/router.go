package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"practice-recommender/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas base.
// jwtSvc puede ser nil: en ese caso /me/history no se registra.
func NewRouter(
	logger *zap.Logger,
	practiceH *PracticeHandler,
	recommendationH *RecommendationHandler,
	jwtSvc *service.JWTService,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	practices := r.Group("/practices")
	practices.GET("", practiceH.ListPractices)
	practices.GET("/:id", practiceH.GetPractice)
	practices.POST("/:id/score", practiceH.ScorePractice)

	recommendations := r.Group("/recommendations")
	recommendations.POST("", recommendationH.Recommend)
	recommendations.GET("/history", recommendationH.History)

	if jwtSvc != nil {
		me := r.Group("/me", JWTAuthMiddleware(jwtSvc))
		me.GET("/history", recommendationH.MyHistory)
	}

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
