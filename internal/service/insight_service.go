package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"practice-recommender/internal/domain"
	"practice-recommender/internal/llm"
)

const insightSystemPrompt = `You are a warm, grounded meditation guide. You receive a practice recommendation
that was already computed. Do not change the ranking or invent new practices.
Reply only with JSON: {"insight": "<two or three encouraging sentences for the user>"}`

// InsightService pide al LLM un texto complementario sobre un reporte ya calculado.
// Es opcional: cualquier falla devuelve "" y el reporte sigue siendo valido.
type InsightService struct {
	llmClient llm.LLMClient
	limiter   RateLimiter
	logger    *zap.Logger
}

// NewInsightService acepta limiter nil (sin limite).
func NewInsightService(llmClient llm.LLMClient, limiter RateLimiter, logger *zap.Logger) *InsightService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightService{llmClient: llmClient, limiter: limiter, logger: logger}
}

// Explain devuelve el insight para el reporte; key identifica al solicitante para el limite.
func (s *InsightService) Explain(ctx context.Context, key string, report domain.RecommendationReport, profile domain.UserProfile) string {
	if s == nil || s.llmClient == nil {
		return ""
	}
	if s.limiter != nil && !s.limiter.Allow(ctx, key) {
		s.logger.Info("insight rate limited", zap.String("key", key))
		return ""
	}
	raw, err := s.llmClient.Generate(ctx, insightSystemPrompt, buildInsightPrompt(report, profile))
	if err != nil {
		s.logger.Warn("insight generation failed", zap.Error(err))
		return ""
	}
	insight := parseInsight(raw)
	if insight == "" {
		s.logger.Warn("insight response unusable", zap.Int("raw_len", len(raw)))
	}
	return insight
}

func buildInsightPrompt(report domain.RecommendationReport, profile domain.UserProfile) string {
	var b strings.Builder
	top := report.TopRecommendation
	fmt.Fprintf(&b, "Top recommendation: %s (score %.2f)\n", top.Practice.DisplayName(), top.Score.OverallScore)
	fmt.Fprintf(&b, "Why: %s\n", top.Rationale)
	if len(top.Score.Concerns) > 0 {
		fmt.Fprintf(&b, "Concerns: %s\n", strings.Join(top.Score.Concerns, " "))
	}
	if len(top.Score.Adaptations) > 0 {
		fmt.Fprintf(&b, "Adaptations: %s\n", strings.Join(top.Score.Adaptations, " "))
	}
	for _, alt := range report.Alternatives {
		fmt.Fprintf(&b, "Alternative: %s (score %.2f)\n", alt.Practice.DisplayName(), alt.Score.OverallScore)
	}
	if report.HybridApproach != nil {
		fmt.Fprintf(&b, "Hybrid suggestion: %s\n", report.HybridApproach.Schedule)
	}
	if goals := profile.PrimaryGoals(); len(goals) > 0 {
		names := make([]string, 0, len(goals))
		for _, g := range goals {
			names = append(names, string(g))
		}
		fmt.Fprintf(&b, "User goals: %s\n", strings.Join(names, ", "))
	}
	return b.String()
}

// parseInsight acepta JSON {"insight": ...} o, como fallback, texto plano.
func parseInsight(raw string) string {
	cleaned := cleanLLMJSONResponse(raw)
	if cleaned == "" {
		return ""
	}
	if obj := extractFirstJSONObject(cleaned); obj != "" {
		var tmp struct {
			Insight string `json:"insight"`
		}
		if err := json.Unmarshal([]byte(obj), &tmp); err == nil {
			return strings.TrimSpace(tmp.Insight)
		}
		return ""
	}
	return cleaned
}
