package service

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"practice-recommender/internal/domain"
)

// rankedPractice es un par (practica, puntaje).
type rankedPractice struct {
	practice domain.Practice
	score    domain.PracticeScore
}

// GenerateReport puntua todo el catalogo, ordena de mayor a menor (estable: los empates
// respetan el orden del catalogo) y arma el reporte. Catalogo vacio devuelve ErrEmptyCatalog.
func (e RecommendationEngine) GenerateReport(catalog *domain.Catalog, profile domain.UserProfile) (domain.RecommendationReport, error) {
	if err := validateInputs(catalog, profile); err != nil {
		return domain.RecommendationReport{}, err
	}

	ranked := e.rank(catalog.Practices(), profile)
	top := ranked[0]

	return domain.RecommendationReport{
		TopRecommendation: domain.TopRecommendation{
			Practice:  top.practice,
			Score:     top.score,
			Rationale: top.score.Reasoning,
			NextSteps: nextSteps(top.practice, profile),
		},
		Alternatives:   e.alternatives(ranked),
		NotRecommended: e.notRecommended(ranked),
		HybridApproach: e.hybridApproach(ranked),
	}, nil
}

func (e RecommendationEngine) rank(practices []domain.Practice, profile domain.UserProfile) []rankedPractice {
	ranked := make([]rankedPractice, len(practices))
	if e.policy.ParallelThreshold > 0 && len(practices) >= e.policy.ParallelThreshold {
		// Cada goroutine escribe solo su indice; el resultado es identico al secuencial.
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := range practices {
			i := i // per-iteration copy; go directive is 1.21 (pre-1.22 loopvar semantics)
			g.Go(func() error {
				ranked[i] = rankedPractice{practice: practices[i], score: e.ScorePractice(practices[i], profile)}
				return nil
			})
		}
		// Ningun g.Go devuelve error; Wait solo espera.
		g.Wait()
	} else {
		for i, p := range practices {
			ranked[i] = rankedPractice{practice: p, score: e.ScorePractice(p, profile)}
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score.OverallScore > ranked[j].score.OverallScore
	})
	return ranked
}

func (e RecommendationEngine) alternatives(ranked []rankedPractice) []domain.Alternative {
	out := []domain.Alternative{}
	for i := 1; i < len(ranked) && i <= e.policy.AlternativeLimit; i++ {
		r := ranked[i]
		if r.score.OverallScore <= e.policy.AlternativeThreshold {
			continue
		}
		out = append(out, domain.Alternative{
			Practice:  r.practice,
			Score:     r.score,
			Rationale: r.score.Reasoning,
		})
	}
	return out
}

func (e RecommendationEngine) notRecommended(ranked []rankedPractice) []domain.NotRecommended {
	out := []domain.NotRecommended{}
	for _, r := range ranked {
		if len(out) >= e.policy.NotRecommendedLimit {
			break
		}
		if r.score.OverallScore >= e.policy.NotRecommendedThreshold {
			continue
		}
		dim, score := r.score.Breakdown.Weakest()
		out = append(out, domain.NotRecommended{
			Practice: r.practice,
			Score:    r.score,
			Reason:   fmt.Sprintf("Low %s (%.0f%%).", dim.Label(), score*100),
		})
	}
	return out
}

// hybridApproach sugiere combinar las tres primeras cuando estan casi empatadas
// y usan enfoques distintos.
func (e RecommendationEngine) hybridApproach(ranked []rankedPractice) *domain.HybridApproach {
	if len(ranked) < 3 {
		return nil
	}
	top := ranked[:3]
	spread := math.Round((top[0].score.OverallScore-top[2].score.OverallScore)*1e6) / 1e6
	if spread >= e.policy.HybridSpread {
		return nil
	}

	var approaches []string
	seen := map[domain.Approach]struct{}{}
	for _, r := range top {
		for _, a := range r.practice.Tags.Approach {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			approaches = append(approaches, string(a))
		}
	}
	if len(approaches) < 2 {
		return nil
	}

	names := make([]string, 0, len(top))
	for _, r := range top {
		names = append(names, r.practice.DisplayName())
	}
	return &domain.HybridApproach{
		Description: fmt.Sprintf(
			"%s, %s and %s fit you almost equally well and draw on complementary approaches (%s). Combining them can balance their strengths.",
			names[0], names[1], names[2], strings.Join(approaches, ", "),
		),
		Practices: names,
		Schedule: fmt.Sprintf(
			"Alternate daily between %s and %s, and use %s as a complementary practice once or twice a week.",
			names[0], names[1], names[2],
		),
	}
}

func nextSteps(practice domain.Practice, profile domain.UserProfile) []string {
	steps := []string{}
	if books := practice.Resources.Books; len(books) > 0 {
		steps = append(steps, fmt.Sprintf("Read %q for a grounded introduction.", books[0]))
	}
	if apps := practice.Resources.Apps; len(apps) > 0 {
		steps = append(steps, fmt.Sprintf("Try the %s app for guided sessions.", apps[0]))
	}
	if practice.Tags.TeacherRequired {
		steps = append(steps, fmt.Sprintf("Find a qualified %s teacher or local group.", practice.DisplayName()))
	} else {
		steps = append(steps, "Start with 10-15 minute daily sessions.")
	}
	if practice.Tags.RetreatFriendly {
		if w, ok := profile.RetreatWillingness(); !ok || w != domain.RetreatNo {
			steps = append(steps, "Consider a beginner retreat after 2-3 months of regular practice.")
		}
	}
	return steps
}
