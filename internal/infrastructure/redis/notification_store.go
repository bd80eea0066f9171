package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"localmarket/pkg/config"
	"localmarket/pkg/errors"
)

// unseenTTL bounds how long an unread notification set survives without activity.
const unseenTTL = 30 * 24 * time.Hour

func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NotificationStore keeps unseen request ids in one Redis set per user.
type NotificationStore struct {
	rdb redis.UniversalClient
}

func NewNotificationStore(rdb redis.UniversalClient) *NotificationStore {
	return &NotificationStore{rdb: rdb}
}

func unseenKey(userID string) string {
	return fmt.Sprintf("notifications:unseen:%s", userID)
}

func (s *NotificationStore) AddUnseen(ctx context.Context, userID, requestID string) error {
	key := unseenKey(userID)

	pipe := s.rdb.TxPipeline()
	pipe.SAdd(ctx, key, requestID)
	pipe.Expire(ctx, key, unseenTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Internal("Failed to store notification", err)
	}
	return nil
}

func (s *NotificationStore) ListUnseen(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.rdb.SMembers(ctx, unseenKey(userID)).Result()
	if err != nil {
		return nil, errors.Internal("Failed to load notifications", err)
	}
	return ids, nil
}

func (s *NotificationStore) ClearUnseen(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, unseenKey(userID)).Err(); err != nil {
		return errors.Internal("Failed to clear notifications", err)
	}
	return nil
}

func (s *NotificationStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
