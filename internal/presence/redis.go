package presence

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-private-chat/internal/logger"
	"github.com/sbilibin2017/gw-private-chat/internal/models"
)

// DefaultRedisKey is the sorted set holding heartbeats.
const DefaultRedisKey = "presence:online"

// RedisTracker keeps heartbeats in a Redis sorted set scored by unix
// milliseconds, so several server processes share one view of presence.
type RedisTracker struct {
	client redis.Cmdable
	key    string
	window time.Duration
	now    func() time.Time
}

// NewRedisTracker creates a tracker on the given client.
func NewRedisTracker(client redis.Cmdable, key string, window time.Duration) *RedisTracker {
	return NewRedisTrackerWithClock(client, key, window, time.Now)
}

// NewRedisTrackerWithClock is NewRedisTracker with an injectable clock.
func NewRedisTrackerWithClock(client redis.Cmdable, key string, window time.Duration, now func() time.Time) *RedisTracker {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisTracker{client: client, key: key, window: window, now: now}
}

// SetOnline records a heartbeat for userID.
func (t *RedisTracker) SetOnline(ctx context.Context, userID string) error {
	score := float64(t.now().UnixMilli())
	err := t.client.ZAdd(ctx, t.key, redis.Z{Score: score, Member: userID}).Err()

	logger.Log.Debugw("presence heartbeat",
		"key", t.key,
		"member", userID,
		"score", score,
		"error", err,
	)

	return err
}

// SetOffline forgets userID.
func (t *RedisTracker) SetOffline(ctx context.Context, userID string) error {
	err := t.client.ZRem(ctx, t.key, userID).Err()

	logger.Log.Debugw("presence removed",
		"key", t.key,
		"member", userID,
		"error", err,
	)

	return err
}

// ListWithStatus purges expired heartbeats and annotates users with presence.
func (t *RedisTracker) ListWithStatus(ctx context.Context, users []models.User) ([]models.UserWithStatus, error) {
	cutoff := t.now().Add(-t.window).UnixMilli()

	// Scores equal to the cutoff are still within the window.
	purged, err := t.client.ZRemRangeByScore(ctx, t.key, "-inf", "("+strconv.FormatInt(cutoff, 10)).Result()
	if err != nil {
		logger.Log.Errorw("failed to purge presence entries", "key", t.key, "error", err)
		return nil, err
	}
	if purged > 0 {
		logger.Log.Debugw("purged expired presence entries", "count", purged)
	}

	members, err := t.client.ZRange(ctx, t.key, 0, -1).Result()
	if err != nil {
		logger.Log.Errorw("failed to read presence entries", "key", t.key, "error", err)
		return nil, err
	}

	online := make(map[string]struct{}, len(members))
	for _, m := range members {
		online[m] = struct{}{}
	}

	return annotate(users, online), nil
}
