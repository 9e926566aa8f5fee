package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"practice-recommender/internal/domain"
	"practice-recommender/internal/llm"
)

type denyLimiter struct{ keys []string }

func (d *denyLimiter) Allow(_ context.Context, key string) bool {
	d.keys = append(d.keys, key)
	return false
}

func sampleReport() domain.RecommendationReport {
	top := basePractice("breathwork")
	top.Name = "Coherent Breathing"
	return domain.RecommendationReport{
		TopRecommendation: domain.TopRecommendation{
			Practice:  top,
			Score:     domain.PracticeScore{OverallScore: 0.82, Concerns: []string{concernTime}},
			Rationale: "Fits your schedule and practical circumstances.",
		},
		Alternatives: []domain.Alternative{{Practice: basePractice("mbsr"), Score: domain.PracticeScore{OverallScore: 0.71}}},
	}
}

func TestInsightServiceExplain(t *testing.T) {
	mock := &llm.MockClient{Response: "```json\n{\"insight\": \"  Start small and stay curious.  \"}\n```"}
	svc := NewInsightService(mock, nil, nil)
	profile := domain.UserProfile{Goals: &domain.GoalAnswers{Primary: []domain.GoalID{domain.GoalFocus}}}

	got := svc.Explain(context.Background(), "u1", sampleReport(), profile)
	if got != "Start small and stay curious." {
		t.Fatalf("unexpected insight %q", got)
	}
	if mock.LastSystem != insightSystemPrompt {
		t.Fatalf("expected insight system prompt")
	}
	for _, want := range []string{"Coherent Breathing (score 0.82)", "Alternative: mbsr (score 0.71)", concernTime, "User goals: focus"} {
		if !strings.Contains(mock.LastPrompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, mock.LastPrompt)
		}
	}
}

func TestInsightServiceFailsSoft(t *testing.T) {
	ctx := context.Background()

	var nilSvc *InsightService
	if got := nilSvc.Explain(ctx, "u1", sampleReport(), domain.UserProfile{}); got != "" {
		t.Fatalf("nil service should return empty insight, got %q", got)
	}
	if got := NewInsightService(nil, nil, nil).Explain(ctx, "u1", sampleReport(), domain.UserProfile{}); got != "" {
		t.Fatalf("missing client should return empty insight, got %q", got)
	}

	failing := &llm.MockClient{Err: errors.New("llm down")}
	if got := NewInsightService(failing, nil, nil).Explain(ctx, "u1", sampleReport(), domain.UserProfile{}); got != "" {
		t.Fatalf("llm error should return empty insight, got %q", got)
	}
}

func TestInsightServiceRateLimited(t *testing.T) {
	mock := &llm.MockClient{Response: `{"insight": "ok"}`}
	limiter := &denyLimiter{}
	svc := NewInsightService(mock, limiter, nil)

	if got := svc.Explain(context.Background(), "10.0.0.1", sampleReport(), domain.UserProfile{}); got != "" {
		t.Fatalf("expected empty insight when limited, got %q", got)
	}
	if mock.Calls != 0 {
		t.Fatalf("llm should not be called when limited")
	}
	if len(limiter.keys) != 1 || limiter.keys[0] != "10.0.0.1" {
		t.Fatalf("unexpected limiter keys %v", limiter.keys)
	}
}

func TestParseInsight(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "json", raw: `{"insight": "Breathe."}`, want: "Breathe."},
		{name: "prefixed json", raw: `Sure! {"insight": "Sit {quietly}."} done`, want: "Sit {quietly}."},
		{name: "bom and fence", raw: "\uFEFF```json\n{\"insight\":\"Go slow.\"}\n```", want: "Go slow."},
		{name: "plain text", raw: "  Keep going.  ", want: "Keep going."},
		{name: "broken json", raw: `{"insight": }`, want: ""},
		{name: "empty", raw: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseInsight(tt.raw); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtractFirstJSONObject(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: `noise {"a": {"b": 1}} tail {"c": 2}`, want: `{"a": {"b": 1}}`},
		{input: `{"a": "brace } inside"}`, want: `{"a": "brace } inside"}`},
		{input: `{"a": "escaped \" quote }"}`, want: `{"a": "escaped \" quote }"}`},
		{input: `{"unterminated": 1`, want: ""},
		{input: `no object`, want: ""},
	}
	for _, tt := range tests {
		if got := extractFirstJSONObject(tt.input); got != tt.want {
			t.Fatalf("extractFirstJSONObject(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
