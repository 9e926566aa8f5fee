package domain

import "fmt"

// GoalID identifica una meta del vocabulario fijo del asistente.
type GoalID string

const (
	GoalStressReduction GoalID = "stress-reduction"
	GoalAwakening       GoalID = "awakening"
	GoalFocus           GoalID = "focus"
	GoalInsight         GoalID = "insight"
	GoalCompassion      GoalID = "compassion"
	GoalPain            GoalID = "pain"
	GoalConsciousness   GoalID = "consciousness"
	GoalPeace           GoalID = "peace"
	GoalHealing         GoalID = "healing"
)

// MaxPrimaryGoals es la cantidad maxima de metas principales por perfil.
const MaxPrimaryGoals = 3

func (g GoalID) Valid() bool {
	switch g {
	case GoalStressReduction, GoalAwakening, GoalFocus, GoalInsight, GoalCompassion,
		GoalPain, GoalConsciousness, GoalPeace, GoalHealing:
		return true
	}
	return false
}

type Temperament string

const (
	TemperamentAnalytical    Temperament = "analytical"
	TemperamentDevotional    Temperament = "devotional"
	TemperamentExperiential  Temperament = "experiential"
	TemperamentActive        Temperament = "active"
	TemperamentContemplative Temperament = "contemplative"
)

func (t Temperament) Valid() bool {
	switch t {
	case TemperamentAnalytical, TemperamentDevotional, TemperamentExperiential,
		TemperamentActive, TemperamentContemplative:
		return true
	}
	return false
}

// TimeAvailable es el rango de minutos diarios que el usuario puede dedicar.
type TimeAvailable string

const (
	Time5to10    TimeAvailable = "5-10"
	Time15to20   TimeAvailable = "15-20"
	Time30to45   TimeAvailable = "30-45"
	Time60Plus   TimeAvailable = "60+"
	TimeVariable TimeAvailable = "variable"
)

func (t TimeAvailable) Valid() bool {
	switch t {
	case Time5to10, Time15to20, Time30to45, Time60Plus, TimeVariable:
		return true
	}
	return false
}

type RetreatWillingness string

const (
	RetreatYes         RetreatWillingness = "yes-interested"
	RetreatMaybe       RetreatWillingness = "maybe"
	RetreatProbablyNot RetreatWillingness = "probably-not"
	RetreatNo          RetreatWillingness = "no"
)

func (r RetreatWillingness) Valid() bool {
	return r == RetreatYes || r == RetreatMaybe || r == RetreatProbablyNot || r == RetreatNo
}

type LocationAccess string

const (
	AccessGood       LocationAccess = "good"
	AccessLimited    LocationAccess = "limited"
	AccessTravel     LocationAccess = "travel"
	AccessSelfGuided LocationAccess = "self-guided"
)

func (l LocationAccess) Valid() bool {
	return l == AccessGood || l == AccessLimited || l == AccessTravel || l == AccessSelfGuided
}

type CulturalBackground string

const (
	BackgroundSecular   CulturalBackground = "secular"
	BackgroundBuddhist  CulturalBackground = "buddhist"
	BackgroundHindu     CulturalBackground = "hindu"
	BackgroundSpiritual CulturalBackground = "spiritual"
	BackgroundAbrahamic CulturalBackground = "abrahamic"
	BackgroundAgnostic  CulturalBackground = "agnostic"
)

func (c CulturalBackground) Valid() bool {
	switch c {
	case BackgroundSecular, BackgroundBuddhist, BackgroundHindu, BackgroundSpiritual,
		BackgroundAbrahamic, BackgroundAgnostic:
		return true
	}
	return false
}

// UserProfile es el resultado del asistente de evaluacion.
// Todos los campos son opcionales: nil significa "sin señal", no cero.
type UserProfile struct {
	Goals       *GoalAnswers        `json:"goals,omitempty"`
	Personality *PersonalityAnswers `json:"personality,omitempty"`
	Practical   *PracticalAnswers   `json:"practical,omitempty"`
	Background  *BackgroundAnswers  `json:"background,omitempty"`
}

type GoalAnswers struct {
	Primary []GoalID `json:"primary,omitempty"`
}

type PersonalityAnswers struct {
	StructurePreference *int         `json:"structure_preference,omitempty"` // 1 = maxima estructura, 10 = minima
	Temperament         *Temperament `json:"temperament,omitempty"`
}

type PracticalAnswers struct {
	TimeAvailable      *TimeAvailable      `json:"time_available,omitempty"`
	RetreatWillingness *RetreatWillingness `json:"retreat_willingness,omitempty"`
	LocationAccess     *LocationAccess     `json:"location_access,omitempty"`
}

type BackgroundAnswers struct {
	Cultural          *CulturalBackground `json:"cultural,omitempty"`
	SpiritualOpenness *int                `json:"spiritual_openness,omitempty"`
}

// PrimaryGoals devuelve las metas principales en el orden elegido por el usuario.
func (p UserProfile) PrimaryGoals() []GoalID {
	if p.Goals == nil {
		return nil
	}
	return p.Goals.Primary
}

func (p UserProfile) StructurePreference() (int, bool) {
	if p.Personality == nil || p.Personality.StructurePreference == nil {
		return 0, false
	}
	return *p.Personality.StructurePreference, true
}

func (p UserProfile) Temperament() (Temperament, bool) {
	if p.Personality == nil || p.Personality.Temperament == nil {
		return "", false
	}
	return *p.Personality.Temperament, true
}

func (p UserProfile) TimeAvailable() (TimeAvailable, bool) {
	if p.Practical == nil || p.Practical.TimeAvailable == nil {
		return "", false
	}
	return *p.Practical.TimeAvailable, true
}

func (p UserProfile) RetreatWillingness() (RetreatWillingness, bool) {
	if p.Practical == nil || p.Practical.RetreatWillingness == nil {
		return "", false
	}
	return *p.Practical.RetreatWillingness, true
}

func (p UserProfile) LocationAccess() (LocationAccess, bool) {
	if p.Practical == nil || p.Practical.LocationAccess == nil {
		return "", false
	}
	return *p.Practical.LocationAccess, true
}

func (p UserProfile) CulturalBackground() (CulturalBackground, bool) {
	if p.Background == nil || p.Background.Cultural == nil {
		return "", false
	}
	return *p.Background.Cultural, true
}

func (p UserProfile) SpiritualOpenness() (int, bool) {
	if p.Background == nil || p.Background.SpiritualOpenness == nil {
		return 0, false
	}
	return *p.Background.SpiritualOpenness, true
}

// Validate rechaza valores fuera del vocabulario. Los campos ausentes siempre son validos.
func (p UserProfile) Validate() error {
	goals := p.PrimaryGoals()
	if len(goals) > MaxPrimaryGoals {
		return fmt.Errorf("%w: at most %d primary goals, got %d", ErrInvalidProfile, MaxPrimaryGoals, len(goals))
	}
	for _, g := range goals {
		if !g.Valid() {
			return fmt.Errorf("%w: unknown goal %q", ErrInvalidProfile, g)
		}
	}
	if v, ok := p.StructurePreference(); ok && (v < 1 || v > 10) {
		return fmt.Errorf("%w: structure preference %d out of range 1-10", ErrInvalidProfile, v)
	}
	if v, ok := p.Temperament(); ok && !v.Valid() {
		return fmt.Errorf("%w: unknown temperament %q", ErrInvalidProfile, v)
	}
	if v, ok := p.TimeAvailable(); ok && !v.Valid() {
		return fmt.Errorf("%w: unknown time available %q", ErrInvalidProfile, v)
	}
	if v, ok := p.RetreatWillingness(); ok && !v.Valid() {
		return fmt.Errorf("%w: unknown retreat willingness %q", ErrInvalidProfile, v)
	}
	if v, ok := p.LocationAccess(); ok && !v.Valid() {
		return fmt.Errorf("%w: unknown location access %q", ErrInvalidProfile, v)
	}
	if v, ok := p.CulturalBackground(); ok && !v.Valid() {
		return fmt.Errorf("%w: unknown cultural background %q", ErrInvalidProfile, v)
	}
	if v, ok := p.SpiritualOpenness(); ok && (v < 1 || v > 10) {
		return fmt.Errorf("%w: spiritual openness %d out of range 1-10", ErrInvalidProfile, v)
	}
	return nil
}
