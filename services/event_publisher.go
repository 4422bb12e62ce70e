package services

import (
	"context"
	"encoding/json"
	"log"

	"sosmatch_server/models"

	"github.com/redis/go-redis/v9"
)

// EventSink receives lifecycle events. Delivery is fire-and-forget: implementations
// log failures instead of returning them, so the matching pipeline never blocks
// on the event bus.
type EventSink interface {
	PublishMatchCreated(ctx context.Context, match models.Match)
	PublishMatchAccepted(ctx context.Context, match models.Match)
}

// EventPublisher publishes lifecycle events over Redis pub/sub
type EventPublisher struct {
	Redis *redis.Client
}

// PublishMatchCreated emits a match.created event for a freshly persisted match
func (p *EventPublisher) PublishMatchCreated(ctx context.Context, match models.Match) {
	event := models.MatchCreatedEvent{
		MatchID:      match.MatchID,
		RequestID:    match.RequestID,
		VolunteerID:  match.VolunteerID,
		SkillType:    match.SkillType,
		ResourceType: match.ResourceType,
	}
	p.publish(ctx, models.ChannelMatchCreated, event)
}

// PublishMatchAccepted emits a match.accepted event after a successful accept
func (p *EventPublisher) PublishMatchAccepted(ctx context.Context, match models.Match) {
	event := models.MatchAcceptedEvent{
		MatchID:     match.MatchID,
		RequestID:   match.RequestID,
		VolunteerID: match.VolunteerID,
	}
	p.publish(ctx, models.ChannelMatchAccepted, event)
}

func (p *EventPublisher) publish(ctx context.Context, channel string, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Failed to marshal %s event: %v", channel, err)
		return
	}

	if err := p.Redis.Publish(ctx, channel, payload).Err(); err != nil {
		// Best effort only; the match is already durable
		log.Printf("⚠️ Failed to publish %s event: %v", channel, err)
		return
	}
	log.Printf("📣 Published %s for match %s", channel, eventMatchID(event))
}

func eventMatchID(event interface{}) string {
	switch e := event.(type) {
	case models.MatchCreatedEvent:
		return e.MatchID
	case models.MatchAcceptedEvent:
		return e.MatchID
	}
	return ""
}
