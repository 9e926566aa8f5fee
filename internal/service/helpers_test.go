package service

import (
	"math"
	"testing"

	"practice-recommender/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// basePractice es una practica secular, guiada y sin requisitos especiales.
func basePractice(id string, approach ...domain.Approach) domain.Practice {
	if len(approach) == 0 {
		approach = []domain.Approach{domain.ApproachBody}
	}
	return domain.Practice{
		ID:   id,
		Name: id,
		Tags: domain.PracticeTags{
			Approach:        approach,
			Structure:       domain.StructureHigh,
			DifficultyLevel: domain.DifficultyBeginner,
			TimeToResults:   domain.ResultsQuick,
			CulturalContext: domain.ContextSecular,
		},
	}
}

func mustCatalog(t *testing.T, practices ...domain.Practice) *domain.Catalog {
	t.Helper()
	c, err := domain.NewCatalog(practices...)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	return c
}

func fullProfile() domain.UserProfile {
	return domain.UserProfile{
		Goals: &domain.GoalAnswers{Primary: []domain.GoalID{domain.GoalStressReduction, domain.GoalFocus}},
		Personality: &domain.PersonalityAnswers{
			StructurePreference: ptr(3),
			Temperament:         ptr(domain.TemperamentAnalytical),
		},
		Practical: &domain.PracticalAnswers{
			TimeAvailable:      ptr(domain.Time15to20),
			RetreatWillingness: ptr(domain.RetreatMaybe),
			LocationAccess:     ptr(domain.AccessLimited),
		},
		Background: &domain.BackgroundAnswers{
			Cultural:          ptr(domain.BackgroundAgnostic),
			SpiritualOpenness: ptr(4),
		},
	}
}
