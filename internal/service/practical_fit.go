package service

import "practice-recommender/internal/domain"

var difficultyOrdinal = map[domain.Difficulty]int{
	domain.DifficultyBeginner:     1,
	domain.DifficultyIntermediate: 2,
	domain.DifficultyAdvanced:     3,
}

var retreatScore = map[domain.RetreatWillingness]float64{
	domain.RetreatYes:         1.0,
	domain.RetreatMaybe:       0.7,
	domain.RetreatProbablyNot: 0.4,
	domain.RetreatNo:          0.2,
}

// practicalFit promedia acceso a maestro, disposicion a retiros y tiempo vs dificultad.
func (e RecommendationEngine) practicalFit(practice domain.Practice, profile domain.UserProfile) float64 {
	var s signals
	if access, ok := profile.LocationAccess(); ok {
		s = append(s, teacherAccessScore(practice.Tags.TeacherRequired, access))
	}
	if willingness, ok := profile.RetreatWillingness(); ok {
		if practice.Tags.RetreatFriendly {
			s = append(s, retreatScore[willingness])
		} else {
			s = append(s, 1.0)
		}
	}
	if t, ok := profile.TimeAvailable(); ok {
		s = append(s, ladderScore(timeOrdinal[t], difficultyOrdinal[practice.Tags.DifficultyLevel]))
	}
	return s.mean()
}

func teacherAccessScore(teacherRequired bool, access domain.LocationAccess) float64 {
	if !teacherRequired {
		return 1.0
	}
	switch access {
	case domain.AccessGood, domain.AccessTravel:
		return 1.0
	case domain.AccessLimited:
		return 0.5
	default:
		return 0.3
	}
}
