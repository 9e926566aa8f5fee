package domain

import (
	"fmt"
	"strings"
)

// Approach es la categoria tecnica de una practica. Una practica puede tener varias.
type Approach string

const (
	ApproachConcentration Approach = "concentration"
	ApproachAwareness     Approach = "awareness"
	ApproachHeart         Approach = "heart"
	ApproachBody          Approach = "body"
	ApproachInquiry       Approach = "inquiry"
	ApproachMantra        Approach = "mantra"
	ApproachNonDual       Approach = "non-dual"
)

func (a Approach) Valid() bool {
	switch a {
	case ApproachConcentration, ApproachAwareness, ApproachHeart, ApproachBody,
		ApproachInquiry, ApproachMantra, ApproachNonDual:
		return true
	}
	return false
}

type Structure string

const (
	StructureHigh     Structure = "highly-structured"
	StructureModerate Structure = "moderately-structured"
	StructureMinimal  Structure = "minimally-structured"
)

func (s Structure) Valid() bool {
	return s == StructureHigh || s == StructureModerate || s == StructureMinimal
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner-friendly"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	return d == DifficultyBeginner || d == DifficultyIntermediate || d == DifficultyAdvanced
}

type TimeToResults string

const (
	ResultsQuick    TimeToResults = "quick"
	ResultsModerate TimeToResults = "moderate"
	ResultsLongTerm TimeToResults = "long-term"
)

func (t TimeToResults) Valid() bool {
	return t == ResultsQuick || t == ResultsModerate || t == ResultsLongTerm
}

type CulturalContext string

const (
	ContextSecular  CulturalContext = "secular"
	ContextBuddhist CulturalContext = "buddhist"
	ContextHindu    CulturalContext = "hindu"
	ContextMixed    CulturalContext = "mixed"
)

func (c CulturalContext) Valid() bool {
	return c == ContextSecular || c == ContextBuddhist || c == ContextHindu || c == ContextMixed
}

// PracticeTags agrupa la clasificacion fija de una practica, definida al armar el catalogo.
type PracticeTags struct {
	Approach        []Approach      `json:"approach" yaml:"approach"`
	Structure       Structure       `json:"structure" yaml:"structure"`
	DifficultyLevel Difficulty      `json:"difficulty_level" yaml:"difficulty_level"`
	TimeToResults   TimeToResults   `json:"time_to_results" yaml:"time_to_results"`
	CulturalContext CulturalContext `json:"cultural_context" yaml:"cultural_context"`
	TeacherRequired bool            `json:"teacher_required" yaml:"teacher_required"`
	RetreatFriendly bool            `json:"retreat_friendly" yaml:"retreat_friendly"`
}

// HasApproach indica si la practica pertenece a la categoria dada.
func (t PracticeTags) HasApproach(a Approach) bool {
	for _, own := range t.Approach {
		if own == a {
			return true
		}
	}
	return false
}

// Benefits son frases libres; solo se usan como superficie de busqueda para metas.
type Benefits struct {
	Cognitive []string `json:"cognitive,omitempty" yaml:"cognitive"`
	Emotional []string `json:"emotional,omitempty" yaml:"emotional"`
	Physical  []string `json:"physical,omitempty" yaml:"physical"`
}

type Resources struct {
	Books []string `json:"books,omitempty" yaml:"books"`
	Apps  []string `json:"apps,omitempty" yaml:"apps"`
}

// Practice es una entrada del catalogo. Se trata como solo lectura.
type Practice struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description"`
	Tags        PracticeTags `json:"tags" yaml:"tags"`
	Benefits    Benefits     `json:"benefits" yaml:"benefits"`
	Goals       []string     `json:"goals,omitempty" yaml:"goals"`
	Resources   Resources    `json:"resources" yaml:"resources"`
}

// DisplayName devuelve el nombre legible, o el ID si la practica no tiene nombre.
func (p Practice) DisplayName() string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}
	return p.ID
}

// SearchText concatena beneficios y metas declaradas en minusculas.
func (p Practice) SearchText() string {
	parts := make([]string, 0, len(p.Benefits.Cognitive)+len(p.Benefits.Emotional)+len(p.Benefits.Physical)+len(p.Goals))
	parts = append(parts, p.Benefits.Cognitive...)
	parts = append(parts, p.Benefits.Emotional...)
	parts = append(parts, p.Benefits.Physical...)
	parts = append(parts, p.Goals...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Validate verifica que los tags obligatorios esten presentes y dentro del vocabulario.
func (p Practice) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidPractice)
	}
	if len(p.Tags.Approach) == 0 {
		return fmt.Errorf("%w: %s: missing approach", ErrInvalidPractice, p.ID)
	}
	for _, a := range p.Tags.Approach {
		if !a.Valid() {
			return fmt.Errorf("%w: %s: unknown approach %q", ErrInvalidPractice, p.ID, a)
		}
	}
	if !p.Tags.Structure.Valid() {
		return fmt.Errorf("%w: %s: unknown structure %q", ErrInvalidPractice, p.ID, p.Tags.Structure)
	}
	if !p.Tags.DifficultyLevel.Valid() {
		return fmt.Errorf("%w: %s: unknown difficulty level %q", ErrInvalidPractice, p.ID, p.Tags.DifficultyLevel)
	}
	if !p.Tags.TimeToResults.Valid() {
		return fmt.Errorf("%w: %s: unknown time to results %q", ErrInvalidPractice, p.ID, p.Tags.TimeToResults)
	}
	if !p.Tags.CulturalContext.Valid() {
		return fmt.Errorf("%w: %s: unknown cultural context %q", ErrInvalidPractice, p.ID, p.Tags.CulturalContext)
	}
	return nil
}
