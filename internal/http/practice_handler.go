package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"practice-recommender/internal/domain"
	"practice-recommender/internal/repository"
	"practice-recommender/internal/service"
)

// PracticeHandler expone el catalogo y el puntaje de una practica individual.
type PracticeHandler struct {
	logger *zap.Logger
	svc    *service.RecommendationService
}

func NewPracticeHandler(logger *zap.Logger, svc *service.RecommendationService) *PracticeHandler {
	return &PracticeHandler{logger: logger, svc: svc}
}

// ListPractices maneja GET /practices.
func (h *PracticeHandler) ListPractices(c *gin.Context) {
	catalog, err := h.svc.Catalog(c.Request.Context())
	if err != nil {
		h.logger.Error("list practices failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list practices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"practices": catalog})
}

// GetPractice maneja GET /practices/:id.
func (h *PracticeHandler) GetPractice(c *gin.Context) {
	catalog, err := h.svc.Catalog(c.Request.Context())
	if err != nil {
		h.logger.Error("get practice failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch practice"})
		return
	}
	practice, ok := catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "practice not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"practice": practice})
}

// ScorePractice maneja POST /practices/:id/score con un UserProfile como body.
func (h *PracticeHandler) ScorePractice(c *gin.Context) {
	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.logger.Warn("invalid score request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	practice, score, err := h.svc.ScorePractice(c.Request.Context(), c.Param("id"), profile)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidProfile):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrPracticeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "practice not found"})
		default:
			h.logger.Error("score practice failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not score practice"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"practice": practice,
		"score":    score,
	})
}
