package service

import (
	"math"

	"practice-recommender/internal/domain"
)

// culturalMatrix: trasfondo del usuario x contexto de la practica.
var culturalMatrix = map[domain.CulturalBackground]map[domain.CulturalContext]float64{
	domain.BackgroundSecular: {
		domain.ContextSecular: 1.0, domain.ContextBuddhist: 0.6, domain.ContextHindu: 0.5, domain.ContextMixed: 0.7,
	},
	domain.BackgroundBuddhist: {
		domain.ContextSecular: 0.7, domain.ContextBuddhist: 1.0, domain.ContextHindu: 0.7, domain.ContextMixed: 0.8,
	},
	domain.BackgroundHindu: {
		domain.ContextSecular: 0.7, domain.ContextBuddhist: 0.7, domain.ContextHindu: 1.0, domain.ContextMixed: 0.8,
	},
	domain.BackgroundSpiritual: {
		domain.ContextSecular: 0.8, domain.ContextBuddhist: 0.9, domain.ContextHindu: 0.9, domain.ContextMixed: 1.0,
	},
	domain.BackgroundAbrahamic: {
		domain.ContextSecular: 0.9, domain.ContextBuddhist: 0.5, domain.ContextHindu: 0.4, domain.ContextMixed: 0.6,
	},
	domain.BackgroundAgnostic: {
		domain.ContextSecular: 1.0, domain.ContextBuddhist: 0.7, domain.ContextHindu: 0.6, domain.ContextMixed: 0.8,
	},
}

// culturalAlignment promedia la matriz cultural y el umbral de apertura espiritual.
func (e RecommendationEngine) culturalAlignment(practice domain.Practice, profile domain.UserProfile) float64 {
	var s signals
	if bg, ok := profile.CulturalBackground(); ok {
		s = append(s, culturalMatrixScore(bg, practice.Tags.CulturalContext))
	}
	if openness, ok := profile.SpiritualOpenness(); ok {
		s = append(s, opennessScore(openness, practice.Tags.CulturalContext))
	}
	return s.mean()
}

func culturalMatrixScore(bg domain.CulturalBackground, ctx domain.CulturalContext) float64 {
	if row, ok := culturalMatrix[bg]; ok {
		if v, ok := row[ctx]; ok {
			return v
		}
	}
	return neutralScore
}

func opennessScore(openness int, ctx domain.CulturalContext) float64 {
	switch ctx {
	case domain.ContextSecular:
		if openness <= 5 {
			return 1.0
		}
		return 0.7
	case domain.ContextMixed:
		return 0.8
	default:
		if openness >= 5 {
			return 1.0
		}
		return math.Max(0.3, float64(openness)/10)
	}
}
