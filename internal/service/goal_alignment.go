package service

import (
	"math"
	"strings"

	"practice-recommender/internal/domain"
)

// goalKeywords son las frases que se buscan en beneficios y metas de cada practica.
var goalKeywords = map[domain.GoalID][]string{
	domain.GoalStressReduction: {"reduced anxiety", "lower cortisol", "stress reduction", "relaxation", "reduced stress markers"},
	domain.GoalAwakening:       {"awakening", "enlightenment", "liberation", "self-realization", "recognition of true nature"},
	domain.GoalFocus:           {"concentration", "focus", "attention", "mental clarity", "sustained attention"},
	domain.GoalInsight:         {"insight", "wisdom", "impermanence", "clear seeing", "understanding of mind"},
	domain.GoalCompassion:      {"compassion", "loving-kindness", "empathy", "kindness", "self-compassion"},
	domain.GoalPain:            {"pain", "chronic pain", "pain management", "body awareness", "physical tension"},
	domain.GoalConsciousness:   {"consciousness", "awareness of awareness", "expanded awareness", "nature of mind", "altered states"},
	domain.GoalPeace:           {"inner peace", "calm", "equanimity", "tranquility", "contentment"},
	domain.GoalHealing:         {"healing", "emotional healing", "trauma", "self-acceptance", "emotional regulation"},
}

// goalAlignment otorga credito por palabra clave encontrada (con tope por meta)
// y promedia sobre las metas declaradas. Sin metas devuelve el valor neutral.
func (e RecommendationEngine) goalAlignment(practice domain.Practice, profile domain.UserProfile) float64 {
	goals := profile.PrimaryGoals()
	if len(goals) == 0 {
		return neutralScore
	}

	haystack := practice.SearchText()
	var total float64
	for _, goal := range goals {
		matches := 0
		for _, kw := range goalKeywords[goal] {
			if strings.Contains(haystack, kw) {
				matches++
			}
		}
		total += math.Min(e.policy.KeywordCap, float64(matches)*e.policy.KeywordCredit)
	}
	return total / float64(len(goals))
}
