package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"practice-recommender/internal/domain"
	"practice-recommender/internal/repository"
)

var ErrServiceNotConfigured = errors.New("recommendation service not configured")

// RecommendationService coordina catalogo, motor, historial e insight opcional.
type RecommendationService struct {
	logger    *zap.Logger
	practices repository.PracticeRepository
	history   HistoryStore
	insights  *InsightService
	engine    RecommendationEngine
}

func NewRecommendationService(
	logger *zap.Logger,
	practices repository.PracticeRepository,
	history HistoryStore,
	insights *InsightService,
	engine RecommendationEngine,
) *RecommendationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecommendationService{
		logger:    logger,
		practices: practices,
		history:   history,
		insights:  insights,
		engine:    engine,
	}
}

type RecommendInput struct {
	UserID      string
	ClientKey   string // clave para el limite de insights cuando no hay usuario
	Profile     domain.UserProfile
	WithInsight bool
}

type RecommendResult struct {
	ID        string                      `json:"id"`
	Report    domain.RecommendationReport `json:"report"`
	Insight   string                      `json:"insight,omitempty"`
	CreatedAt time.Time                   `json:"created_at"`
}

// Catalog arma el catalogo ordenado a partir del repositorio.
func (s *RecommendationService) Catalog(ctx context.Context) (*domain.Catalog, error) {
	if s == nil || s.practices == nil {
		return nil, ErrServiceNotConfigured
	}
	practices, err := s.practices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list practices: %w", err)
	}
	return domain.NewCatalog(practices...)
}

// Recommend genera el reporte y, si hay usuario, lo guarda en el historial.
func (s *RecommendationService) Recommend(ctx context.Context, input RecommendInput) (RecommendResult, error) {
	start := time.Now()
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return RecommendResult{}, err
	}

	report, err := s.engine.GenerateReport(catalog, input.Profile)
	if err != nil {
		return RecommendResult{}, err
	}

	result := RecommendResult{
		ID:        uuid.NewString(),
		Report:    report,
		CreatedAt: time.Now().UTC(),
	}
	userID := strings.TrimSpace(input.UserID)
	if input.WithInsight {
		key := userID
		if key == "" {
			key = input.ClientKey
		}
		result.Insight = s.insights.Explain(ctx, key, report, input.Profile)
	}

	s.logger.Info("recommendation generated",
		zap.String("user_id", userID),
		zap.Int("catalog_size", catalog.Len()),
		zap.String("top_practice", report.TopRecommendation.Practice.ID),
		zap.Float64("top_score", report.TopRecommendation.Score.OverallScore),
		zap.Bool("hybrid", report.HybridApproach != nil),
		zap.Duration("elapsed", time.Since(start)),
	)

	if userID != "" && s.history != nil {
		entry := domain.HistoryEntry{
			ID:        result.ID,
			UserID:    userID,
			Profile:   input.Profile,
			Report:    report,
			Insight:   result.Insight,
			CreatedAt: result.CreatedAt,
		}
		if err := s.history.Append(ctx, entry); err != nil {
			s.logger.Warn("history append failed", zap.Error(err), zap.String("user_id", userID))
		}
	}
	return result, nil
}

// ScorePractice puntua una sola practica del catalogo.
func (s *RecommendationService) ScorePractice(ctx context.Context, practiceID string, profile domain.UserProfile) (domain.Practice, domain.PracticeScore, error) {
	if s == nil || s.practices == nil {
		return domain.Practice{}, domain.PracticeScore{}, ErrServiceNotConfigured
	}
	if err := profile.Validate(); err != nil {
		return domain.Practice{}, domain.PracticeScore{}, err
	}
	practice, err := s.practices.GetByID(ctx, practiceID)
	if err != nil {
		return domain.Practice{}, domain.PracticeScore{}, err
	}
	return practice, s.engine.ScorePractice(practice, profile), nil
}

func (s *RecommendationService) History(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	if s == nil || s.history == nil {
		return nil, ErrServiceNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrHistoryNotFound
	}
	return s.history.List(ctx, userID)
}
