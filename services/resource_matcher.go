package services

import (
	"context"
	"log"
	"sort"

	"sosmatch_server/models"
)

// ResourceMatcherService finds and ranks physical resource candidates for a
// request. Resources are not trust-rated, so there is no scoring formula;
// candidates are ranked by distance alone.
type ResourceMatcherService struct {
	Config   MatchConfig
	Registry ResourceRegistry
	Scoring  ScoringService
}

// FindResourceMatches queries the resource registry for each requested resource
// type, keeps available candidates of the right type, and returns them sorted by
// distance ascending, capped at MaxMatches. Per-type query failures are
// collected and skipped, not fatal.
func (s *ResourceMatcherService) FindResourceMatches(
	ctx context.Context,
	requiredResources []string,
	location models.Location,
	radiusKm float64,
) ([]models.RankedResourceCandidate, []models.TagFailure) {
	var matches []models.RankedResourceCandidate
	var failures []models.TagFailure

	for _, resourceType := range requiredResources {
		candidates, err := s.Registry.FindResourceCandidates(ctx, resourceType, location, radiusKm)
		if err != nil {
			log.Printf("⚠️ Resource registry query failed for '%s': %v", resourceType, err)
			failures = append(failures, models.TagFailure{Tag: resourceType, Err: err})
			continue
		}

		for _, candidate := range candidates {
			if candidate.ResourceType != resourceType {
				continue
			}
			if candidate.Availability != models.AvailabilityAvailable {
				continue
			}

			matches = append(matches, models.RankedResourceCandidate{
				Candidate:  candidate,
				DistanceKm: s.Scoring.DistanceKm(location, candidate.Location),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	if len(matches) > s.Config.MaxMatches {
		matches = matches[:s.Config.MaxMatches]
	}
	return matches, failures
}
