package queue

import (
	"context"
	"encoding/json"
	"log"

	"sosmatch_server/models"
	"sosmatch_server/utils"

	"github.com/redis/go-redis/v9"
)

// MatchPipeline is the part of the orchestrator the consumer drives
type MatchPipeline interface {
	ProcessSOSRequest(ctx context.Context, req models.MatchRequest) (models.MatchResult, error)
}

// Consumer subscribes to sos.request.created and feeds each payload through the
// same matching pipeline as the manual endpoint
type Consumer struct {
	Redis        *redis.Client
	Orchestrator MatchPipeline
}

// Start subscribes and processes messages until ctx is cancelled. Malformed or
// invalid payloads are logged and dropped; pipeline errors are logged, there is
// no retry.
func (c *Consumer) Start(ctx context.Context) {
	sub := c.Redis.Subscribe(ctx, models.ChannelSOSRequestCreated)
	defer sub.Close()

	log.Printf("📡 Listening on %s", models.ChannelSOSRequestCreated)

	for {
		select {
		case <-ctx.Done():
			log.Println("Queue consumer stopping")
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				log.Println("Queue subscription closed")
				return
			}
			c.handleMessage(ctx, msg.Payload)
		}
	}
}

func (c *Consumer) handleMessage(ctx context.Context, payload string) {
	var req models.MatchRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		log.Printf("❌ Dropping malformed %s payload: %v", models.ChannelSOSRequestCreated, err)
		return
	}

	if errs := utils.ValidateMatchRequest(req); len(errs) > 0 {
		log.Printf("❌ Dropping invalid %s payload for request %q: %v", models.ChannelSOSRequestCreated, req.RequestID, errs)
		return
	}

	if _, err := c.Orchestrator.ProcessSOSRequest(ctx, req); err != nil {
		log.Printf("❌ Failed to process queued request %s: %v", req.RequestID, err)
	}
}
