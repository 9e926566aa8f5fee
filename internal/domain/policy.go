package domain

import (
	"fmt"
	"math"
)

// ScoringWeights define el peso de cada dimension en el puntaje total. Deben sumar 1.0.
type ScoringWeights struct {
	Goal        float64 `env:"WEIGHT_GOAL" envDefault:"0.35" json:"goal"`
	Personality float64 `env:"WEIGHT_PERSONALITY" envDefault:"0.25" json:"personality"`
	Practical   float64 `env:"WEIGHT_PRACTICAL" envDefault:"0.25" json:"practical"`
	Cultural    float64 `env:"WEIGHT_CULTURAL" envDefault:"0.15" json:"cultural"`
}

func (w ScoringWeights) Sum() float64 {
	return w.Goal + w.Personality + w.Practical + w.Cultural
}

// ScoringPolicy agrupa las constantes del motor de recomendacion.
// Los envDefault deben coincidir con DefaultScoringPolicy.
type ScoringPolicy struct {
	Weights ScoringWeights `json:"weights"`

	// Credito por cada palabra clave encontrada y tope por meta.
	KeywordCredit float64 `env:"KEYWORD_CREDIT" envDefault:"0.3" json:"keyword_credit"`
	KeywordCap    float64 `env:"KEYWORD_CAP" envDefault:"1.0" json:"keyword_cap"`

	AlternativeThreshold    float64 `env:"ALTERNATIVE_THRESHOLD" envDefault:"0.6" json:"alternative_threshold"`
	AlternativeLimit        int     `env:"ALTERNATIVE_LIMIT" envDefault:"3" json:"alternative_limit"`
	NotRecommendedThreshold float64 `env:"NOT_RECOMMENDED_THRESHOLD" envDefault:"0.5" json:"not_recommended_threshold"`
	NotRecommendedLimit     int     `env:"NOT_RECOMMENDED_LIMIT" envDefault:"3" json:"not_recommended_limit"`
	HybridSpread            float64 `env:"HYBRID_SPREAD" envDefault:"0.15" json:"hybrid_spread"`
	StrengthThreshold       float64 `env:"STRENGTH_THRESHOLD" envDefault:"0.7" json:"strength_threshold"`

	// Catalogos con al menos esta cantidad de practicas se puntuan en paralelo. 0 desactiva.
	ParallelThreshold int `env:"PARALLEL_THRESHOLD" envDefault:"64" json:"parallel_threshold"`
}

func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		Weights: ScoringWeights{
			Goal:        0.35,
			Personality: 0.25,
			Practical:   0.25,
			Cultural:    0.15,
		},
		KeywordCredit:           0.3,
		KeywordCap:              1.0,
		AlternativeThreshold:    0.6,
		AlternativeLimit:        3,
		NotRecommendedThreshold: 0.5,
		NotRecommendedLimit:     3,
		HybridSpread:            0.15,
		StrengthThreshold:       0.7,
		ParallelThreshold:       64,
	}
}

// Validate exige pesos no negativos que sumen 1.0 (±0.001) y limites coherentes.
func (p ScoringPolicy) Validate() error {
	for name, w := range map[string]float64{
		"goal":        p.Weights.Goal,
		"personality": p.Weights.Personality,
		"practical":   p.Weights.Practical,
		"cultural":    p.Weights.Cultural,
	} {
		if w < 0 {
			return fmt.Errorf("%w: negative %s weight %f", ErrInvalidPolicy, name, w)
		}
	}
	if sum := p.Weights.Sum(); math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("%w: weights sum to %.4f, must sum to 1.0", ErrInvalidPolicy, sum)
	}
	if p.KeywordCredit <= 0 || p.KeywordCap <= 0 || p.KeywordCap > 1 {
		return fmt.Errorf("%w: keyword credit %.2f / cap %.2f", ErrInvalidPolicy, p.KeywordCredit, p.KeywordCap)
	}
	if p.AlternativeLimit < 0 || p.NotRecommendedLimit < 0 || p.ParallelThreshold < 0 {
		return fmt.Errorf("%w: limits must not be negative", ErrInvalidPolicy)
	}
	return nil
}
