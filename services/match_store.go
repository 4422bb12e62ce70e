package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"sosmatch_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ErrMatchNotFound covers both "no such match" and "wrong volunteer". The two
// are deliberately not distinguished so existence is never leaked to non-owners.
var ErrMatchNotFound = errors.New("match not found")

// DynamoAPI is the slice of DynamoService the store uses; tests substitute an
// in-memory fake
type DynamoAPI interface {
	PutItem(ctx context.Context, tableName string, item interface{}) error
	UpdateItemWithCondition(
		ctx context.Context,
		tableName string,
		key map[string]types.AttributeValue,
		updateExpression string,
		conditionExpression string,
		expressionAttributeValues map[string]types.AttributeValue,
		expressionAttributeNames map[string]string,
	) (map[string]types.AttributeValue, error)
	QueryItemsWithIndex(
		ctx context.Context,
		tableName string,
		indexName string,
		keyConditionExpression string,
		expressionAttributeValues map[string]types.AttributeValue,
		expressionAttributeNames map[string]string,
		limit int32,
	) ([]map[string]types.AttributeValue, error)
	ScanAll(ctx context.Context, tableName string, result interface{}) error
}

// MatchStore owns the durable state of Match records
type MatchStore struct {
	Dynamo DynamoAPI
}

// CreateSkillMatch persists a pending match between the request and a scored
// skill candidate
func (s *MatchStore) CreateSkillMatch(ctx context.Context, requestID string, scored models.ScoredSkillCandidate) (models.Match, error) {
	now := time.Now().Format(time.RFC3339)
	trust := defaultTrustScore
	if scored.Candidate.TrustScore != nil {
		trust = *scored.Candidate.TrustScore
	}

	match := models.Match{
		MatchID:     uuid.New().String(),
		RequestID:   requestID,
		VolunteerID: scored.Candidate.UserID,
		SkillID:     scored.Candidate.SkillID,
		SkillType:   scored.Candidate.SkillType,
		MatchScore:  scored.Score,
		Distance:    scored.DistanceKm,
		TrustScore:  &trust,
		Status:      models.MatchStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Dynamo.PutItem(ctx, models.MatchesTable, match); err != nil {
		return models.Match{}, fmt.Errorf("failed to create skill match: %w", err)
	}
	return match, nil
}

// CreateResourceMatch persists a pending match between the request and a ranked
// resource candidate. Resource matches carry a fixed score and no trust score.
func (s *MatchStore) CreateResourceMatch(ctx context.Context, requestID string, ranked models.RankedResourceCandidate) (models.Match, error) {
	now := time.Now().Format(time.RFC3339)

	match := models.Match{
		MatchID:      uuid.New().String(),
		RequestID:    requestID,
		VolunteerID:  ranked.Candidate.OwnerID,
		ResourceID:   ranked.Candidate.ResourceID,
		ResourceType: ranked.Candidate.ResourceType,
		MatchScore:   models.ResourceMatchScore,
		Distance:     ranked.DistanceKm,
		Status:       models.MatchStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Dynamo.PutItem(ctx, models.MatchesTable, match); err != nil {
		return models.Match{}, fmt.Errorf("failed to create resource match: %w", err)
	}
	return match, nil
}

// AcceptMatch transitions pending -> accepted, guarded on ownership. The
// conditional update doubles as the optimistic check: a second accept, a
// rejected match, or a wrong volunteerId all find no matching row.
func (s *MatchStore) AcceptMatch(ctx context.Context, matchID, volunteerID string) (models.Match, error) {
	now := time.Now().Format(time.RFC3339)

	return s.transition(ctx, matchID,
		"SET #status = :next, acceptedAt = :now, updatedAt = :now",
		map[string]types.AttributeValue{
			":next":    &types.AttributeValueMemberS{Value: models.MatchStatusAccepted},
			":now":     &types.AttributeValueMemberS{Value: now},
			":vid":     &types.AttributeValueMemberS{Value: volunteerID},
			":pending": &types.AttributeValueMemberS{Value: models.MatchStatusPending},
		})
}

// RejectMatch transitions pending -> rejected with a reason, guarded on ownership
func (s *MatchStore) RejectMatch(ctx context.Context, matchID, volunteerID, reason string) (models.Match, error) {
	now := time.Now().Format(time.RFC3339)

	return s.transition(ctx, matchID,
		"SET #status = :next, rejectedAt = :now, rejectionReason = :reason, updatedAt = :now",
		map[string]types.AttributeValue{
			":next":    &types.AttributeValueMemberS{Value: models.MatchStatusRejected},
			":now":     &types.AttributeValueMemberS{Value: now},
			":reason":  &types.AttributeValueMemberS{Value: reason},
			":vid":     &types.AttributeValueMemberS{Value: volunteerID},
			":pending": &types.AttributeValueMemberS{Value: models.MatchStatusPending},
		})
}

func (s *MatchStore) transition(ctx context.Context, matchID, updateExpression string, values map[string]types.AttributeValue) (models.Match, error) {
	key := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}

	attrs, err := s.Dynamo.UpdateItemWithCondition(ctx, models.MatchesTable, key,
		updateExpression,
		"volunteerId = :vid AND #status = :pending",
		values,
		map[string]string{"#status": "status"},
	)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return models.Match{}, ErrMatchNotFound
		}
		return models.Match{}, err
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(attrs, &match); err != nil {
		return models.Match{}, fmt.Errorf("failed to unmarshal updated match: %w", err)
	}
	return match, nil
}

// ListByRequest returns all matches for a request, sorted by matchScore descending
func (s *MatchStore) ListByRequest(ctx context.Context, requestID string) ([]models.Match, error) {
	keyCondition := "requestId = :rid"
	expressionValues := map[string]types.AttributeValue{
		":rid": &types.AttributeValueMemberS{Value: requestID},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, models.MatchesRequestIndex, keyCondition, expressionValues, nil, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches for request %s: %w", requestID, err)
	}

	var matches []models.Match
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches, nil
}

// Stats aggregates counts by status and the mean time-to-acceptance over
// accepted matches, formatted HH:MM:SS. Zero matches yields 00:00:00.
func (s *MatchStore) Stats(ctx context.Context) (models.MatchStats, error) {
	var matches []models.Match
	if err := s.Dynamo.ScanAll(ctx, models.MatchesTable, &matches); err != nil {
		return models.MatchStats{}, fmt.Errorf("failed to scan matches: %w", err)
	}

	stats := models.MatchStats{Total: len(matches)}
	var acceptedCount int
	var totalWait time.Duration

	for _, match := range matches {
		switch match.Status {
		case models.MatchStatusPending:
			stats.Pending++
		case models.MatchStatusAccepted:
			stats.Accepted++
		case models.MatchStatusRejected:
			stats.Rejected++
		}

		if match.Status != models.MatchStatusAccepted || match.AcceptedAt == "" {
			continue
		}
		createdAt, err := time.Parse(time.RFC3339, match.CreatedAt)
		if err != nil {
			continue
		}
		acceptedAt, err := time.Parse(time.RFC3339, match.AcceptedAt)
		if err != nil {
			log.Printf("⚠️ Match %s has unparsable acceptedAt %q", match.MatchID, match.AcceptedAt)
			continue
		}
		totalWait += acceptedAt.Sub(createdAt)
		acceptedCount++
	}

	var average time.Duration
	if acceptedCount > 0 {
		average = totalWait / time.Duration(acceptedCount)
	}
	stats.AverageMatchTime = formatClockDuration(average)
	return stats, nil
}

// formatClockDuration renders a duration as HH:MM:SS
func formatClockDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
