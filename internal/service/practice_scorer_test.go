package service

import (
	"math"
	"reflect"
	"testing"

	"practice-recommender/internal/domain"
)

func TestScorePracticeEmptyProfileIsNeutral(t *testing.T) {
	practices := []domain.Practice{
		basePractice("breathwork"),
		{
			ID:   "dzogchen",
			Name: "Dzogchen",
			Tags: domain.PracticeTags{
				Approach:        []domain.Approach{domain.ApproachNonDual},
				Structure:       domain.StructureMinimal,
				DifficultyLevel: domain.DifficultyAdvanced,
				TimeToResults:   domain.ResultsLongTerm,
				CulturalContext: domain.ContextBuddhist,
				TeacherRequired: true,
				RetreatFriendly: true,
			},
		},
	}

	for _, p := range practices {
		score := DefaultRecommendationEngine.ScorePractice(p, domain.UserProfile{})
		if score.OverallScore != 0.5 {
			t.Fatalf("%s: expected overall 0.5 exactly, got %v", p.ID, score.OverallScore)
		}
		want := domain.ScoreBreakdown{GoalAlignment: 0.5, PersonalityFit: 0.5, PracticalFit: 0.5, CulturalAlignment: 0.5}
		if score.Breakdown != want {
			t.Fatalf("%s: unexpected breakdown %+v", p.ID, score.Breakdown)
		}
		if len(score.Concerns) != 0 || len(score.Adaptations) != 0 {
			t.Fatalf("%s: expected no concerns/adaptations, got %v / %v", p.ID, score.Concerns, score.Adaptations)
		}
		if score.Reasoning != balancedReasoning {
			t.Fatalf("%s: expected balanced reasoning, got %q", p.ID, score.Reasoning)
		}
	}
}

func TestScorePracticeStructuredBeginnerProfile(t *testing.T) {
	practice := basePractice("breathwork")
	practice.Benefits.Emotional = []string{"Reduced anxiety", "Relaxation"}
	profile := domain.UserProfile{
		Goals:       &domain.GoalAnswers{Primary: []domain.GoalID{domain.GoalStressReduction}},
		Personality: &domain.PersonalityAnswers{StructurePreference: ptr(2)},
		Practical:   &domain.PracticalAnswers{TimeAvailable: ptr(domain.Time5to10)},
	}

	score := DefaultRecommendationEngine.ScorePractice(practice, profile)
	if !approxEqual(score.Breakdown.PersonalityFit, 1.0) {
		t.Fatalf("expected personality fit 1.0, got %v", score.Breakdown.PersonalityFit)
	}
	if score.Breakdown.PracticalFit < 0.6 {
		t.Fatalf("expected practical fit >= 0.6, got %v", score.Breakdown.PracticalFit)
	}
	if !approxEqual(score.Breakdown.GoalAlignment, 0.6) {
		t.Fatalf("expected goal alignment 0.6, got %v", score.Breakdown.GoalAlignment)
	}
	if len(score.Adaptations) != 1 || score.Adaptations[0] != adaptShortSessions {
		t.Fatalf("expected short sessions adaptation, got %v", score.Adaptations)
	}
	want := strengthPhrases[domain.DimensionPersonality] + " " + goalPhrases[domain.GoalStressReduction]
	if score.Reasoning != want {
		t.Fatalf("unexpected reasoning %q", score.Reasoning)
	}
}

func TestScorePracticeOverallIsWeightedSum(t *testing.T) {
	profile := fullProfile()
	practice := basePractice("mbsr", domain.ApproachAwareness, domain.ApproachBody)
	practice.Tags.CulturalContext = domain.ContextBuddhist
	practice.Tags.TeacherRequired = true
	practice.Tags.RetreatFriendly = true

	policy := domain.DefaultScoringPolicy()
	score := DefaultRecommendationEngine.ScorePractice(practice, profile)
	b := score.Breakdown
	want := policy.Weights.Goal*b.GoalAlignment +
		policy.Weights.Personality*b.PersonalityFit +
		policy.Weights.Practical*b.PracticalFit +
		policy.Weights.Cultural*b.CulturalAlignment
	if math.Abs(score.OverallScore-want) > 1e-6 {
		t.Fatalf("overall %v differs from weighted sum %v", score.OverallScore, want)
	}

	for _, d := range domain.Dimensions {
		if v := b.Get(d); v < 0 || v > 1 {
			t.Fatalf("%s out of range: %v", d, v)
		}
	}
}

func TestScorePracticeCustomWeights(t *testing.T) {
	policy := domain.DefaultScoringPolicy()
	policy.Weights = domain.ScoringWeights{Goal: 1}
	engine, err := NewRecommendationEngine(policy)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	practice := basePractice("breathwork")
	practice.Goals = []string{"focus", "concentration", "attention", "mental clarity"}
	profile := domain.UserProfile{Goals: &domain.GoalAnswers{Primary: []domain.GoalID{domain.GoalFocus}}}

	score := engine.ScorePractice(practice, profile)
	if score.OverallScore != 1 {
		t.Fatalf("expected overall 1 with goal-only weights, got %v", score.OverallScore)
	}
}

func TestConcernsFor(t *testing.T) {
	practice := basePractice("vipassana", domain.ApproachAwareness)
	practice.Tags.DifficultyLevel = domain.DifficultyAdvanced
	practice.Tags.CulturalContext = domain.ContextHindu
	practice.Tags.TeacherRequired = true
	practice.Tags.RetreatFriendly = true

	profile := domain.UserProfile{
		Practical: &domain.PracticalAnswers{
			TimeAvailable:      ptr(domain.Time5to10),
			RetreatWillingness: ptr(domain.RetreatNo),
			LocationAccess:     ptr(domain.AccessSelfGuided),
		},
		Background: &domain.BackgroundAnswers{Cultural: ptr(domain.BackgroundAbrahamic)},
	}

	score := DefaultRecommendationEngine.ScorePractice(practice, profile)
	want := []string{concernTeacher, concernTime, concernCultural, concernRetreat}
	if !reflect.DeepEqual(score.Concerns, want) {
		t.Fatalf("unexpected concerns:\n got %v\nwant %v", score.Concerns, want)
	}
	if !approxEqual(score.Breakdown.CulturalAlignment, 0.4) {
		t.Fatalf("expected cultural alignment 0.4, got %v", score.Breakdown.CulturalAlignment)
	}
}

func TestAdaptationsFor(t *testing.T) {
	practice := basePractice("zen", domain.ApproachAwareness)
	practice.Tags.CulturalContext = domain.ContextBuddhist
	practice.Tags.TeacherRequired = true

	profile := domain.UserProfile{
		Practical: &domain.PracticalAnswers{
			TimeAvailable:  ptr(domain.Time5to10),
			LocationAccess: ptr(domain.AccessSelfGuided),
		},
		Background: &domain.BackgroundAnswers{SpiritualOpenness: ptr(3)},
	}

	got := adaptationsFor(practice, profile)
	want := []string{adaptShortSessions, adaptSelfStudy, adaptTechnique}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected adaptations:\n got %v\nwant %v", got, want)
	}

	practice.Tags.CulturalContext = domain.ContextSecular
	practice.Tags.TeacherRequired = false
	got = adaptationsFor(practice, profile)
	if !reflect.DeepEqual(got, []string{adaptShortSessions}) {
		t.Fatalf("secular self-guided practice should only adapt session length, got %v", got)
	}
}

func TestReasoningForUsesFirstGoalOnly(t *testing.T) {
	profile := domain.UserProfile{
		Goals: &domain.GoalAnswers{Primary: []domain.GoalID{domain.GoalCompassion, domain.GoalFocus}},
	}
	b := domain.ScoreBreakdown{GoalAlignment: 0.5, PersonalityFit: 0.5, PracticalFit: 0.5, CulturalAlignment: 0.5}

	got := DefaultRecommendationEngine.reasoningFor(profile, b)
	if got != goalPhrases[domain.GoalCompassion] {
		t.Fatalf("unexpected reasoning %q", got)
	}
}

func TestReasoningForStrengthTieUsesFixedOrder(t *testing.T) {
	b := domain.ScoreBreakdown{GoalAlignment: 0.2, PersonalityFit: 0.9, PracticalFit: 0.9, CulturalAlignment: 0.9}
	got := DefaultRecommendationEngine.reasoningFor(domain.UserProfile{}, b)
	if got != strengthPhrases[domain.DimensionPersonality] {
		t.Fatalf("unexpected reasoning %q", got)
	}
}

func TestReasoningForThresholdIsStrict(t *testing.T) {
	b := domain.ScoreBreakdown{GoalAlignment: 0.7, PersonalityFit: 0.7, PracticalFit: 0.7, CulturalAlignment: 0.7}
	if got := DefaultRecommendationEngine.reasoningFor(domain.UserProfile{}, b); got != balancedReasoning {
		t.Fatalf("0.7 should not count as a strength, got %q", got)
	}
}
