package services

import (
	"context"
	"log"
	"sort"

	"sosmatch_server/models"
)

// SkillMatcherService finds and ranks volunteer skill candidates for a request
type SkillMatcherService struct {
	Config   MatchConfig
	Registry SkillRegistry
	Scoring  ScoringService
}

// FindSkillMatches queries the skill registry for each required skill (or the
// disaster-type default set when none are given), filters to available verified
// candidates of the right type, scores them, and returns the survivors sorted
// by score descending, capped at MaxMatches. A failed registry query for one
// skill tag is collected and skipped; it never aborts the other tags.
func (s *SkillMatcherService) FindSkillMatches(
	ctx context.Context,
	disasterType string,
	requiredSkills []string,
	location models.Location,
	radiusKm float64,
	urgency string,
) ([]models.ScoredSkillCandidate, []models.TagFailure) {
	skillTypes := requiredSkills
	if len(skillTypes) == 0 {
		skillTypes = models.SkillsForDisaster(disasterType)
	}

	var matches []models.ScoredSkillCandidate
	var failures []models.TagFailure

	for _, skillType := range skillTypes {
		candidates, err := s.Registry.FindSkillCandidates(ctx, skillType, location, radiusKm)
		if err != nil {
			log.Printf("⚠️ Skill registry query failed for '%s': %v", skillType, err)
			failures = append(failures, models.TagFailure{Tag: skillType, Err: err})
			continue
		}

		for _, candidate := range candidates {
			if candidate.SkillType != skillType {
				continue
			}
			if candidate.Availability != models.AvailabilityAvailable || !candidate.Verified {
				continue
			}

			distance := s.Scoring.DistanceKm(location, candidate.Location)
			score := s.Scoring.Score(candidate, distance, radiusKm, urgency)
			if score < s.Config.MatchScoreThreshold {
				continue
			}

			matches = append(matches, models.ScoredSkillCandidate{
				Candidate:  candidate,
				DistanceKm: distance,
				Score:      score,
			})
		}
	}

	// Stable sort keeps registry order for equal scores
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > s.Config.MaxMatches {
		matches = matches[:s.Config.MaxMatches]
	}
	return matches, failures
}
