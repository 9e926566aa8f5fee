package service

import (
	"errors"
	"fmt"

	"practice-recommender/internal/domain"
)

// neutralScore se usa cuando el perfil no aporta señal para una dimension.
const neutralScore = 0.5

var ErrEmptyCatalog = errors.New("empty catalog")

// RecommendationEngine puntua practicas contra un perfil. No tiene estado mutable:
// la politica se fija al construirlo y se puede compartir entre goroutines.
type RecommendationEngine struct {
	policy domain.ScoringPolicy
}

// DefaultRecommendationEngine permite uso directo sin instanciar.
var DefaultRecommendationEngine = RecommendationEngine{policy: domain.DefaultScoringPolicy()}

// NewRecommendationEngine valida la politica antes de construir el motor.
func NewRecommendationEngine(policy domain.ScoringPolicy) (RecommendationEngine, error) {
	if err := policy.Validate(); err != nil {
		return RecommendationEngine{}, err
	}
	return RecommendationEngine{policy: policy}, nil
}

func (e RecommendationEngine) Policy() domain.ScoringPolicy {
	return e.policy
}

// GenerateReport ejecuta el motor por defecto sobre el catalogo completo.
func GenerateReport(catalog *domain.Catalog, profile domain.UserProfile) (domain.RecommendationReport, error) {
	return DefaultRecommendationEngine.GenerateReport(catalog, profile)
}

// signals acumula las sub-señales presentes de una dimension.
type signals []float64

// mean promedia las señales presentes; sin señales devuelve el valor neutral.
func (s signals) mean() float64 {
	if len(s) == 0 {
		return neutralScore
	}
	var total float64
	for _, v := range s {
		total += v
	}
	return total / float64(len(s))
}

// ladderScore compara lo que el usuario ofrece contra lo que la practica exige.
func ladderScore(available, required int) float64 {
	switch {
	case available >= required:
		return 1.0
	case available == required-1:
		return 0.6
	default:
		return 0.3
	}
}

func validateInputs(catalog *domain.Catalog, profile domain.UserProfile) error {
	if catalog.Len() == 0 {
		return ErrEmptyCatalog
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	return nil
}
