package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"practice-recommender/internal/domain"
	"practice-recommender/internal/service"
)

// RecommendationHandler expone la generacion de reportes y el historial.
type RecommendationHandler struct {
	logger *zap.Logger
	svc    *service.RecommendationService
}

func NewRecommendationHandler(logger *zap.Logger, svc *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{logger: logger, svc: svc}
}

// Recommend maneja POST /recommendations.
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req struct {
		UserID  string             `json:"user_id"`
		Profile domain.UserProfile `json:"profile"`
		Insight bool               `json:"insight"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid recommendation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.svc.Recommend(c.Request.Context(), service.RecommendInput{
		UserID:      req.UserID,
		ClientKey:   c.ClientIP(),
		Profile:     req.Profile,
		WithInsight: req.Insight,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidProfile):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrEmptyCatalog):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "practice catalog is empty"})
		default:
			h.logger.Error("recommendation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate recommendation"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// History maneja GET /recommendations/history?user_id=.
func (h *RecommendationHandler) History(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	h.writeHistory(c, userID)
}

// MyHistory maneja GET /me/history usando el subject del JWT.
func (h *RecommendationHandler) MyHistory(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	h.writeHistory(c, claims.UserID)
}

func (h *RecommendationHandler) writeHistory(c *gin.Context, userID string) {
	entries, err := h.svc.History(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrHistoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "history not found"})
			return
		}
		h.logger.Error("get history failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}
