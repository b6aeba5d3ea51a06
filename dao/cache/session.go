package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStorage 登录会话，key 为 token 的 jti，value 为用户 ID
type SessionStorage struct {
	redis *redis.Client
}

func NewSessionStorage(redis *redis.Client) *SessionStorage {
	return &SessionStorage{redis: redis}
}

func (s *SessionStorage) Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error {
	return s.redis.Set(ctx, s.key(tokenID), userID, ttl).Err()
}

// Get 返回会话绑定的用户 ID
func (s *SessionStorage) Get(ctx context.Context, tokenID string) (int64, error) {
	val, err := s.redis.Get(ctx, s.key(tokenID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (s *SessionStorage) Delete(ctx context.Context, tokenID string) error {
	return s.redis.Del(ctx, s.key(tokenID)).Err()
}

func (s *SessionStorage) key(tokenID string) string {
	return fmt.Sprintf("recycle:session:%s", tokenID)
}
