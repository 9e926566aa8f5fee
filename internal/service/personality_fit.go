package service

import (
	"math"

	"practice-recommender/internal/domain"
)

// Punto representativo de cada estructura en la escala 1-10 del usuario.
var structurePoint = map[domain.Structure]int{
	domain.StructureHigh:     2,
	domain.StructureModerate: 5,
	domain.StructureMinimal:  9,
}

var temperamentApproaches = map[domain.Temperament][]domain.Approach{
	domain.TemperamentAnalytical:    {domain.ApproachConcentration, domain.ApproachInquiry},
	domain.TemperamentDevotional:    {domain.ApproachMantra, domain.ApproachHeart},
	domain.TemperamentExperiential:  {domain.ApproachNonDual, domain.ApproachAwareness},
	domain.TemperamentActive:        {domain.ApproachBody},
	domain.TemperamentContemplative: {domain.ApproachConcentration, domain.ApproachAwareness, domain.ApproachInquiry},
}

// "variable" se trata como una sesion corta habitual.
var timeOrdinal = map[domain.TimeAvailable]int{
	domain.Time5to10:    1,
	domain.Time15to20:   2,
	domain.Time30to45:   3,
	domain.Time60Plus:   4,
	domain.TimeVariable: 2,
}

var resultsOrdinal = map[domain.TimeToResults]int{
	domain.ResultsQuick:    1,
	domain.ResultsModerate: 2,
	domain.ResultsLongTerm: 4,
}

// personalityFit promedia estructura, temperamento y expectativa de tiempo.
func (e RecommendationEngine) personalityFit(practice domain.Practice, profile domain.UserProfile) float64 {
	var s signals
	if pref, ok := profile.StructurePreference(); ok {
		s = append(s, structureMatch(pref, practice.Tags.Structure))
	}
	if t, ok := profile.Temperament(); ok {
		s = append(s, temperamentMatch(t, practice.Tags))
	}
	if t, ok := profile.TimeAvailable(); ok {
		s = append(s, ladderScore(timeOrdinal[t], resultsOrdinal[practice.Tags.TimeToResults]))
	}
	return s.mean()
}

func structureMatch(userValue int, structure domain.Structure) float64 {
	diff := math.Abs(float64(userValue - structurePoint[structure]))
	return math.Max(0, 1-diff/8)
}

func temperamentMatch(t domain.Temperament, tags domain.PracticeTags) float64 {
	compatible := temperamentApproaches[t]
	hits := 0
	for _, a := range compatible {
		if tags.HasApproach(a) {
			hits++
		}
	}
	return float64(hits) / float64(max(1, len(compatible)))
}
