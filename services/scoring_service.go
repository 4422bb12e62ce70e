package services

import (
	"math"

	"sosmatch_server/models"
)

const earthRadiusKm = 6371.0

// defaultTrustScore is assumed for candidates whose registry record carries no trustScore
const defaultTrustScore = 5.0

// ScoringService computes suitability scores for skill candidates. It is pure:
// no I/O, no state.
type ScoringService struct{}

// Score computes a 0-10 suitability score from the candidate's trust score,
// its distance from the request, the request urgency, and certification level.
//
//	base = trust*0.4 + max(0, 10 - (distance/maxRadius)*10) * 0.3
//	score = base * urgencyMultiplier + certificationBonus, clamped at 10
func (s ScoringService) Score(candidate models.SkillCandidate, distanceKm, maxRadiusKm float64, urgency string) float64 {
	trust := defaultTrustScore
	if candidate.TrustScore != nil {
		trust = *candidate.TrustScore
	}

	proximity := 10 - (distanceKm/maxRadiusKm)*10
	if proximity < 0 {
		proximity = 0
	}

	score := trust*0.4 + proximity*0.3

	switch urgency {
	case models.UrgencyCritical:
		score *= 1.2
	case models.UrgencyHigh:
		score *= 1.1
	}

	switch candidate.CertificationLevel {
	case models.CertificationExpert:
		score += 1.0
	case models.CertificationIntermediate:
		score += 0.5
	}

	return math.Min(10, score)
}

// DistanceKm returns the great-circle (haversine) distance between two points
// in kilometers
func (s ScoringService) DistanceKm(a, b models.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
