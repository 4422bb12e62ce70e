package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"sosmatch_server/models"
)

// OrchestratorService runs the matching pipeline for one SOS request and backs
// the lifecycle operations. Registry and notification failures degrade
// gracefully; persistence failures abort the run.
type OrchestratorService struct {
	Config    MatchConfig
	Disasters DisasterRegistry
	SOS       SOSReporter
	Skills    *SkillMatcherService
	Resources *ResourceMatcherService
	Store     *MatchStore
	Events    EventSink
}

// ProcessSOSRequest resolves the disaster context, fans out to both matchers,
// persists every match as pending, reports "matched" back to the SOS service,
// and publishes a match.created event per match. The request must already be
// validated.
func (o *OrchestratorService) ProcessSOSRequest(ctx context.Context, req models.MatchRequest) (models.MatchResult, error) {
	log.Printf("🔄 Processing SOS request %s (disaster %s, urgency %s)", req.RequestID, req.DisasterID, req.Urgency)

	disasterType := o.resolveDisasterType(ctx, req)
	location := req.Point()

	radius := o.Config.MaxRadiusKm
	if req.Radius != nil && *req.Radius > 0 {
		radius = *req.Radius
	}

	skillMatches, skillFailures := o.Skills.FindSkillMatches(ctx, disasterType, req.RequiredSkills, location, radius, req.Urgency)
	resourceMatches, resourceFailures := o.Resources.FindResourceMatches(ctx, req.RequiredResources, location, radius)
	for _, failure := range append(skillFailures, resourceFailures...) {
		log.Printf("⚠️ Request %s: registry lookup for '%s' degraded to zero candidates: %v", req.RequestID, failure.Tag, failure.Err)
	}

	result := models.MatchResult{
		RequestID:       req.RequestID,
		Matches:         []models.Match{},
		ResourceMatches: []models.Match{},
		MatchedAt:       time.Now().Format(time.RFC3339),
	}

	// Persistence is the one step that must not be swallowed: losing a match
	// record is worse than an incomplete match set.
	for _, scored := range skillMatches {
		match, err := o.Store.CreateSkillMatch(ctx, req.RequestID, scored)
		if err != nil {
			return models.MatchResult{}, fmt.Errorf("failed to persist skill match for request %s: %w", req.RequestID, err)
		}
		result.Matches = append(result.Matches, match)
	}
	for _, ranked := range resourceMatches {
		match, err := o.Store.CreateResourceMatch(ctx, req.RequestID, ranked)
		if err != nil {
			return models.MatchResult{}, fmt.Errorf("failed to persist resource match for request %s: %w", req.RequestID, err)
		}
		result.ResourceMatches = append(result.ResourceMatches, match)
	}

	if err := o.SOS.UpdateRequestStatus(ctx, req.RequestID, "matched"); err != nil {
		log.Printf("⚠️ Failed to report status for request %s: %v", req.RequestID, err)
	}

	for _, match := range result.Matches {
		o.Events.PublishMatchCreated(ctx, match)
	}
	for _, match := range result.ResourceMatches {
		o.Events.PublishMatchCreated(ctx, match)
	}

	log.Printf("✅ Request %s matched: %d skill, %d resource", req.RequestID, len(result.Matches), len(result.ResourceMatches))
	return result, nil
}

// resolveDisasterType prefers the type given on the request, then the disaster
// registry, then the default
func (o *OrchestratorService) resolveDisasterType(ctx context.Context, req models.MatchRequest) string {
	if req.DisasterType != "" {
		return req.DisasterType
	}

	disasterType, err := o.Disasters.GetDisasterType(ctx, req.DisasterID)
	if err != nil {
		log.Printf("⚠️ Disaster lookup failed for %s, falling back to %q: %v", req.DisasterID, models.DefaultDisasterType, err)
		return models.DefaultDisasterType
	}
	return disasterType
}

// AcceptMatch transitions a match to accepted on behalf of its volunteer and
// publishes match.accepted
func (o *OrchestratorService) AcceptMatch(ctx context.Context, matchID, volunteerID string) (models.Match, error) {
	match, err := o.Store.AcceptMatch(ctx, matchID, volunteerID)
	if err != nil {
		return models.Match{}, err
	}

	o.Events.PublishMatchAccepted(ctx, match)
	return match, nil
}

// RejectMatch transitions a match to rejected on behalf of its volunteer
func (o *OrchestratorService) RejectMatch(ctx context.Context, matchID, volunteerID, reason string) (models.Match, error) {
	return o.Store.RejectMatch(ctx, matchID, volunteerID, reason)
}
