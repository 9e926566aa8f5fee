package service

import (
	"math"
	"strings"

	"practice-recommender/internal/domain"
)

const (
	concernTeacher  = "Requires a qualified teacher, but you prefer self-guided practice."
	concernTime     = "May require more daily time than you have available."
	concernCultural = "The cultural or spiritual context may feel unfamiliar."
	concernRetreat  = "Deep progress often requires retreat practice."

	adaptShortSessions = "Start with shorter 5-minute sessions and extend them gradually."
	adaptSelfStudy     = "Use books and online courses as a substitute for in-person instruction."
	adaptTechnique     = "Focus on the technique itself rather than its religious framing."

	balancedReasoning = "Offers a balanced fit across your assessment."
)

var strengthPhrases = map[domain.Dimension]string{
	domain.DimensionGoal:        "Strongly aligned with your goals.",
	domain.DimensionPersonality: "Well suited to your personality and learning style.",
	domain.DimensionPractical:   "Fits your schedule and practical circumstances.",
	domain.DimensionCultural:    "Resonates with your cultural and spiritual background.",
}

var goalPhrases = map[domain.GoalID]string{
	domain.GoalStressReduction: "Well documented for reducing stress and anxiety.",
	domain.GoalAwakening:       "A traditional path toward awakening and liberation.",
	domain.GoalFocus:           "Trains attention and builds sustained focus.",
	domain.GoalInsight:         "Cultivates insight into how the mind works.",
	domain.GoalCompassion:      "Develops compassion toward yourself and others.",
	domain.GoalPain:            "Changes your relationship with physical pain.",
	domain.GoalConsciousness:   "Explores the nature of awareness itself.",
	domain.GoalPeace:           "Builds a steady sense of inner peace.",
	domain.GoalHealing:         "Supports emotional healing and self-acceptance.",
}

// ScorePractice combina las cuatro dimensiones con los pesos de la politica y deriva
// preocupaciones, adaptaciones y una explicacion corta. Es una funcion pura.
func (e RecommendationEngine) ScorePractice(practice domain.Practice, profile domain.UserProfile) domain.PracticeScore {
	breakdown := domain.ScoreBreakdown{
		GoalAlignment:     e.goalAlignment(practice, profile),
		PersonalityFit:    e.personalityFit(practice, profile),
		PracticalFit:      e.practicalFit(practice, profile),
		CulturalAlignment: e.culturalAlignment(practice, profile),
	}
	return domain.PracticeScore{
		OverallScore: e.overallScore(breakdown),
		Breakdown:    breakdown,
		Concerns:     concernsFor(practice, profile, breakdown),
		Adaptations:  adaptationsFor(practice, profile),
		Reasoning:    e.reasoningFor(profile, breakdown),
	}
}

// overallScore es la suma ponderada, redondeada a 6 decimales para que perfiles
// equivalentes den exactamente el mismo valor.
func (e RecommendationEngine) overallScore(b domain.ScoreBreakdown) float64 {
	w := e.policy.Weights
	sum := w.Goal*b.GoalAlignment +
		w.Personality*b.PersonalityFit +
		w.Practical*b.PracticalFit +
		w.Cultural*b.CulturalAlignment
	sum = math.Round(sum*1e6) / 1e6
	return math.Min(1, math.Max(0, sum))
}

func concernsFor(practice domain.Practice, profile domain.UserProfile, b domain.ScoreBreakdown) []string {
	concerns := []string{}
	tags := practice.Tags
	access, hasAccess := profile.LocationAccess()
	if tags.TeacherRequired && hasAccess && access == domain.AccessSelfGuided {
		concerns = append(concerns, concernTeacher)
	}
	if t, ok := profile.TimeAvailable(); ok && t == domain.Time5to10 && tags.DifficultyLevel == domain.DifficultyAdvanced {
		concerns = append(concerns, concernTime)
	}
	if b.CulturalAlignment < 0.5 {
		concerns = append(concerns, concernCultural)
	}
	if w, ok := profile.RetreatWillingness(); ok && w == domain.RetreatNo && tags.RetreatFriendly {
		concerns = append(concerns, concernRetreat)
	}
	return concerns
}

func adaptationsFor(practice domain.Practice, profile domain.UserProfile) []string {
	adaptations := []string{}
	if t, ok := profile.TimeAvailable(); ok && t == domain.Time5to10 {
		adaptations = append(adaptations, adaptShortSessions)
	}
	if access, ok := profile.LocationAccess(); ok && access == domain.AccessSelfGuided && practice.Tags.TeacherRequired {
		adaptations = append(adaptations, adaptSelfStudy)
	}
	if openness, ok := profile.SpiritualOpenness(); ok && openness < 5 && practice.Tags.CulturalContext != domain.ContextSecular {
		adaptations = append(adaptations, adaptTechnique)
	}
	return adaptations
}

func (e RecommendationEngine) reasoningFor(profile domain.UserProfile, b domain.ScoreBreakdown) string {
	var parts []string
	if dim, score := b.Strongest(); score > e.policy.StrengthThreshold {
		parts = append(parts, strengthPhrases[dim])
	}
	if goals := profile.PrimaryGoals(); len(goals) > 0 {
		if phrase, ok := goalPhrases[goals[0]]; ok {
			parts = append(parts, phrase)
		}
	}
	if len(parts) == 0 {
		return balancedReasoning
	}
	return strings.Join(parts, " ")
}
