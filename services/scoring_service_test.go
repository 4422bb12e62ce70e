package services_test

import (
	"math"
	"testing"

	"sosmatch_server/models"
	"sosmatch_server/services"
)

const scoreTolerance = 1e-9

func TestScore_KnownScenario(t *testing.T) {
	// trust=8, distance=10, radius=50, medium, expert:
	// base = 8*0.4 + (10-2)*0.3 = 5.6; x1.0; +1.0 expert = 6.6
	scoring := services.ScoringService{}
	candidate := models.SkillCandidate{
		TrustScore:         floatPtr(8),
		CertificationLevel: models.CertificationExpert,
	}

	score := scoring.Score(candidate, 10, 50, models.UrgencyMedium)
	if math.Abs(score-6.6) > scoreTolerance {
		t.Errorf("expected 6.6, got %v", score)
	}
}

func TestScore_DefaultTrustScore(t *testing.T) {
	// No trustScore on the record: assume 5.0. At distance 0, medium urgency,
	// no certification: 5*0.4 + 10*0.3 = 5.0
	scoring := services.ScoringService{}

	score := scoring.Score(models.SkillCandidate{}, 0, 50, models.UrgencyMedium)
	if math.Abs(score-5.0) > scoreTolerance {
		t.Errorf("expected 5.0, got %v", score)
	}
}

func TestScore_AlwaysInRange(t *testing.T) {
	scoring := services.ScoringService{}
	urgencies := []string{models.UrgencyCritical, models.UrgencyHigh, models.UrgencyMedium, models.UrgencyLow}
	certifications := []string{"", models.CertificationNone, models.CertificationIntermediate, models.CertificationExpert}

	for trust := 0.0; trust <= 10.0; trust += 2.5 {
		for distance := 0.0; distance <= 120.0; distance += 15.0 {
			for _, urgency := range urgencies {
				for _, cert := range certifications {
					candidate := models.SkillCandidate{TrustScore: floatPtr(trust), CertificationLevel: cert}
					score := scoring.Score(candidate, distance, 50, urgency)
					if score < 0 || score > 10 {
						t.Fatalf("score %v out of range (trust=%v distance=%v urgency=%s cert=%s)",
							score, trust, distance, urgency, cert)
					}
				}
			}
		}
	}
}

func TestScore_MonotonicInDistance(t *testing.T) {
	scoring := services.ScoringService{}
	candidate := models.SkillCandidate{TrustScore: floatPtr(7)}

	previous := math.Inf(1)
	for distance := 0.0; distance <= 100.0; distance += 5.0 {
		score := scoring.Score(candidate, distance, 50, models.UrgencyHigh)
		if score > previous+scoreTolerance {
			t.Fatalf("score increased with distance: %v -> %v at %vkm", previous, score, distance)
		}
		previous = score
	}
}

func TestScore_CriticalNeverBelowLow(t *testing.T) {
	scoring := services.ScoringService{}

	for trust := 0.0; trust <= 10.0; trust += 1.0 {
		candidate := models.SkillCandidate{TrustScore: floatPtr(trust)}
		critical := scoring.Score(candidate, 20, 50, models.UrgencyCritical)
		low := scoring.Score(candidate, 20, 50, models.UrgencyLow)
		if critical < low-scoreTolerance {
			t.Fatalf("critical %v below low %v at trust %v", critical, low, trust)
		}
	}
}

func TestDistanceKm_ZeroForIdenticalPoints(t *testing.T) {
	scoring := services.ScoringService{}
	point := models.Location{Latitude: 12.97, Longitude: 77.59}

	if d := scoring.DistanceKm(point, point); d != 0 {
		t.Errorf("expected 0, got %v", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	scoring := services.ScoringService{}
	a := models.Location{Latitude: 12.97, Longitude: 77.59}
	b := models.Location{Latitude: 13.08, Longitude: 80.27}

	forward := scoring.DistanceKm(a, b)
	backward := scoring.DistanceKm(b, a)
	if math.Abs(forward-backward) > 1e-9 {
		t.Errorf("asymmetric distance: %v vs %v", forward, backward)
	}
	if forward <= 0 {
		t.Errorf("expected positive distance, got %v", forward)
	}
}

func TestDistanceKm_OneDegreeAtEquator(t *testing.T) {
	scoring := services.ScoringService{}
	a := models.Location{Latitude: 0, Longitude: 0}
	b := models.Location{Latitude: 0, Longitude: 1}

	d := scoring.DistanceKm(a, b)
	if math.Abs(d-111.19) > 0.5 {
		t.Errorf("expected ~111.19km, got %v", d)
	}
}
