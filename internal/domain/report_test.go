package domain

import "testing"

func TestScoreBreakdownStrongestAndWeakest(t *testing.T) {
	b := ScoreBreakdown{GoalAlignment: 0.4, PersonalityFit: 0.9, PracticalFit: 0.9, CulturalAlignment: 0.4}

	if d, s := b.Strongest(); d != DimensionPersonality || s != 0.9 {
		t.Fatalf("unexpected strongest %s %v", d, s)
	}
	if d, s := b.Weakest(); d != DimensionGoal || s != 0.4 {
		t.Fatalf("unexpected weakest %s %v", d, s)
	}

	b.CulturalAlignment = 0.1
	if d, _ := b.Weakest(); d != DimensionCultural {
		t.Fatalf("expected cultural as weakest, got %s", d)
	}
}

func TestDimensionLabel(t *testing.T) {
	want := map[Dimension]string{
		DimensionGoal:        "goal alignment",
		DimensionPersonality: "personality fit",
		DimensionPractical:   "practical fit",
		DimensionCultural:    "cultural alignment",
	}
	for _, d := range Dimensions {
		if d.Label() != want[d] {
			t.Fatalf("unexpected label for %s: %q", d, d.Label())
		}
	}
	if Dimension("other").Label() != "other" {
		t.Fatalf("unknown dimension should fall back to its id")
	}
}
