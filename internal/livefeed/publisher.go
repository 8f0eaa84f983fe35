package livefeed

import (
	"context"
	"encoding/json"

	"biteengine/internal/dto"
	"biteengine/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher pushes new activity entries onto the Redis channel the hub
// subscribes to. It satisfies the vote service's ActivityPublisher.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, activity *models.VoteActivity) error {
	payload, err := json.Marshal(dto.FromModelToActivityResponse(activity))
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.channel, payload).Err()
}
