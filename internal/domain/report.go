package domain

import "time"

// Dimension es uno de los cuatro ejes independientes de puntaje.
type Dimension string

const (
	DimensionGoal        Dimension = "goal_alignment"
	DimensionPersonality Dimension = "personality_fit"
	DimensionPractical   Dimension = "practical_fit"
	DimensionCultural    Dimension = "cultural_alignment"
)

// Dimensions es el orden fijo usado para desempates entre dimensiones.
var Dimensions = []Dimension{DimensionGoal, DimensionPersonality, DimensionPractical, DimensionCultural}

// Label devuelve el nombre legible de la dimension.
func (d Dimension) Label() string {
	switch d {
	case DimensionGoal:
		return "goal alignment"
	case DimensionPersonality:
		return "personality fit"
	case DimensionPractical:
		return "practical fit"
	case DimensionCultural:
		return "cultural alignment"
	}
	return string(d)
}

// ScoreBreakdown guarda el puntaje por dimension, cada uno en [0,1].
type ScoreBreakdown struct {
	GoalAlignment     float64 `json:"goal_alignment"`
	PersonalityFit    float64 `json:"personality_fit"`
	PracticalFit      float64 `json:"practical_fit"`
	CulturalAlignment float64 `json:"cultural_alignment"`
}

// Get devuelve el puntaje de una dimension.
func (b ScoreBreakdown) Get(d Dimension) float64 {
	switch d {
	case DimensionGoal:
		return b.GoalAlignment
	case DimensionPersonality:
		return b.PersonalityFit
	case DimensionPractical:
		return b.PracticalFit
	case DimensionCultural:
		return b.CulturalAlignment
	}
	return 0
}

// Strongest devuelve la dimension con mayor puntaje; empata a favor del orden fijo.
func (b ScoreBreakdown) Strongest() (Dimension, float64) {
	best, bestScore := Dimensions[0], b.Get(Dimensions[0])
	for _, d := range Dimensions[1:] {
		if s := b.Get(d); s > bestScore {
			best, bestScore = d, s
		}
	}
	return best, bestScore
}

// Weakest devuelve la dimension con menor puntaje; empata a favor del orden fijo.
func (b ScoreBreakdown) Weakest() (Dimension, float64) {
	worst, worstScore := Dimensions[0], b.Get(Dimensions[0])
	for _, d := range Dimensions[1:] {
		if s := b.Get(d); s < worstScore {
			worst, worstScore = d, s
		}
	}
	return worst, worstScore
}

// PracticeScore es derivado: nunca se persiste ni se modifica.
type PracticeScore struct {
	OverallScore float64        `json:"overall_score"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
	Concerns     []string       `json:"concerns"`
	Adaptations  []string       `json:"adaptations"`
	Reasoning    string         `json:"reasoning"`
}

type TopRecommendation struct {
	Practice  Practice      `json:"practice"`
	Score     PracticeScore `json:"score"`
	Rationale string        `json:"rationale"`
	NextSteps []string      `json:"next_steps"`
}

type Alternative struct {
	Practice  Practice      `json:"practice"`
	Score     PracticeScore `json:"score"`
	Rationale string        `json:"rationale"`
}

type NotRecommended struct {
	Practice Practice      `json:"practice"`
	Score    PracticeScore `json:"score"`
	Reason   string        `json:"reason"`
}

type HybridApproach struct {
	Description string   `json:"description"`
	Practices   []string `json:"practices"`
	Schedule    string   `json:"schedule"`
}

// RecommendationReport es lo que consume la UI; el motor no sabe como se muestra.
type RecommendationReport struct {
	TopRecommendation TopRecommendation `json:"top_recommendation"`
	Alternatives      []Alternative     `json:"alternatives"`
	NotRecommended    []NotRecommended  `json:"not_recommended"`
	HybridApproach    *HybridApproach   `json:"hybrid_approach,omitempty"`
}

// HistoryEntry es un reporte generado para un usuario, guardado fuera del motor.
type HistoryEntry struct {
	ID        string               `json:"id"`
	UserID    string               `json:"user_id"`
	Profile   UserProfile          `json:"profile"`
	Report    RecommendationReport `json:"report"`
	Insight   string               `json:"insight,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}
