// Package activity provides the Activity Sink backends. Sinks are
// append-only and fire-and-forget: a sink failure is logged and counted but
// never surfaces to the operation that emitted the event.
package activity

import (
	"context"
	"encoding/json"
	"time"

	"renohub/internal/domain/entities"
	"renohub/internal/infrastructure/metrics"
	"renohub/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultLogKey = "activity:log"
	// Keep only the most recent entries to bound storage.
	maxEntries = 1000

	emitTimeout = 2 * time.Second
)

// RedisSink appends events to a capped Redis list.
type RedisSink struct {
	client *redis.Client
	key    string
	log    *zap.Logger
}

var _ interfaces.IActivitySink = (*RedisSink)(nil)

func NewRedisSink(client *redis.Client, log *zap.Logger) *RedisSink {
	return &RedisSink{client: client, key: defaultLogKey, log: log}
}

// Emit writes the event with a short timeout detached from the caller's
// context, so a slow sink cannot stall or cancel the emitting operation.
func (s *RedisSink) Emit(_ context.Context, event entities.ActivityEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.drop(event, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), emitTimeout)
	defer cancel()

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, s.key, payload)
	pipe.LTrim(ctx, s.key, -maxEntries, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		s.drop(event, err)
	}
}

func (s *RedisSink) drop(event entities.ActivityEvent, err error) {
	metrics.ActivityEventsDropped.Inc()
	s.log.Warn("activity event dropped",
		zap.String("action", event.Action),
		zap.String("event_id", event.ID),
		zap.Error(err))
}
