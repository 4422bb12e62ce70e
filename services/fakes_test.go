package services_test

import (
	"context"
	"fmt"

	"sosmatch_server/models"
	"sosmatch_server/services"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func floatPtr(f float64) *float64 { return &f }

// fakeDynamo is an in-memory stand-in for the DynamoService surface the match
// store uses. It understands the store's transition condition (ownership +
// pending status) the same way the real conditional update does.
type fakeDynamo struct {
	matches map[string]models.Match
	putErr  error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{matches: map[string]models.Match{}}
}

func (f *fakeDynamo) PutItem(ctx context.Context, tableName string, item interface{}) error {
	if f.putErr != nil {
		return f.putErr
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	var match models.Match
	if err := attributevalue.UnmarshalMap(av, &match); err != nil {
		return err
	}
	f.matches[match.MatchID] = match
	return nil
}

func (f *fakeDynamo) UpdateItemWithCondition(
	ctx context.Context,
	tableName string,
	key map[string]types.AttributeValue,
	updateExpression string,
	conditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
) (map[string]types.AttributeValue, error) {
	matchID := stringValue(key["matchId"])
	volunteerID := stringValue(expressionAttributeValues[":vid"])

	match, ok := f.matches[matchID]
	if !ok || match.VolunteerID != volunteerID || match.Status != models.MatchStatusPending {
		return nil, services.ErrConditionFailed
	}

	next := stringValue(expressionAttributeValues[":next"])
	now := stringValue(expressionAttributeValues[":now"])
	match.Status = next
	match.UpdatedAt = now
	if next == models.MatchStatusAccepted {
		match.AcceptedAt = now
	} else {
		match.RejectedAt = now
		if reason, ok := expressionAttributeValues[":reason"]; ok {
			match.RejectionReason = stringValue(reason)
		}
	}
	f.matches[matchID] = match

	return attributevalue.MarshalMap(match)
}

func (f *fakeDynamo) QueryItemsWithIndex(
	ctx context.Context,
	tableName string,
	indexName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
	limit int32,
) ([]map[string]types.AttributeValue, error) {
	requestID := stringValue(expressionAttributeValues[":rid"])

	var items []map[string]types.AttributeValue
	for _, match := range f.matches {
		if match.RequestID != requestID {
			continue
		}
		av, err := attributevalue.MarshalMap(match)
		if err != nil {
			return nil, err
		}
		items = append(items, av)
	}
	return items, nil
}

func (f *fakeDynamo) ScanAll(ctx context.Context, tableName string, result interface{}) error {
	var items []map[string]types.AttributeValue
	for _, match := range f.matches {
		av, err := attributevalue.MarshalMap(match)
		if err != nil {
			return err
		}
		items = append(items, av)
	}
	return attributevalue.UnmarshalListOfMaps(items, result)
}

func stringValue(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

// stubSkillRegistry serves canned candidates per skill type and records which
// types were queried
type stubSkillRegistry struct {
	byType   map[string][]models.SkillCandidate
	failures map[string]error
	queried  []string
}

func (s *stubSkillRegistry) FindSkillCandidates(ctx context.Context, skillType string, location models.Location, radiusKm float64) ([]models.SkillCandidate, error) {
	s.queried = append(s.queried, skillType)
	if err := s.failures[skillType]; err != nil {
		return nil, err
	}
	return s.byType[skillType], nil
}

type stubResourceRegistry struct {
	byType   map[string][]models.ResourceCandidate
	failures map[string]error
}

func (s *stubResourceRegistry) FindResourceCandidates(ctx context.Context, resourceType string, location models.Location, radiusKm float64) ([]models.ResourceCandidate, error) {
	if err := s.failures[resourceType]; err != nil {
		return nil, err
	}
	return s.byType[resourceType], nil
}

type stubDisasterRegistry struct {
	disasterType string
	err          error
}

func (s *stubDisasterRegistry) GetDisasterType(ctx context.Context, disasterID string) (string, error) {
	return s.disasterType, s.err
}

type stubSOSReporter struct {
	err     error
	reports []string
}

func (s *stubSOSReporter) UpdateRequestStatus(ctx context.Context, requestID, status string) error {
	s.reports = append(s.reports, fmt.Sprintf("%s=%s", requestID, status))
	return s.err
}

type stubEventSink struct {
	created  []models.Match
	accepted []models.Match
}

func (s *stubEventSink) PublishMatchCreated(ctx context.Context, match models.Match) {
	s.created = append(s.created, match)
}

func (s *stubEventSink) PublishMatchAccepted(ctx context.Context, match models.Match) {
	s.accepted = append(s.accepted, match)
}

// availableCandidate builds a verified, available skill candidate at the given offset
func availableCandidate(userID, skillType string, trust float64, lat, lng float64) models.SkillCandidate {
	return models.SkillCandidate{
		UserID:       userID,
		SkillID:      "skill-" + userID,
		SkillType:    skillType,
		Location:     models.Location{Latitude: lat, Longitude: lng},
		Availability: models.AvailabilityAvailable,
		Verified:     true,
		TrustScore:   floatPtr(trust),
	}
}
