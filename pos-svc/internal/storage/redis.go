package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"restaurant-pos/pos-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisJSON stores JSON values under a key prefix with a fixed TTL. The
// session, cart and snapshot stores are thin views over it.
type RedisJSON struct {
	Client *redis.Client
	Prefix string
	TTL    time.Duration
}

func (s *RedisJSON) key(id string) string {
	return s.Prefix + id
}

func (s *RedisJSON) get(ctx context.Context, id string, dst any) (bool, error) {
	raw, err := s.Client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", s.key(id), err)
	}
	return true, nil
}

func (s *RedisJSON) set(ctx context.Context, id string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key(id), err)
	}
	return s.Client.Set(ctx, s.key(id), payload, s.TTL).Err()
}

func (s *RedisJSON) del(ctx context.Context, id string) error {
	return s.Client.Del(ctx, s.key(id)).Err()
}

type RedisSessionStore struct {
	RedisJSON
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{RedisJSON{Client: client, Prefix: "session:", TTL: ttl}}
}

func (s *RedisSessionStore) Save(ctx context.Context, session *domain.Session) error {
	return s.set(ctx, session.ID, session)
}

// Get returns nil without an error when the session is unknown or expired.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	var session domain.Session
	found, err := s.get(ctx, id, &session)
	if err != nil || !found {
		return nil, err
	}
	// Sliding expiry: every authenticated request keeps the session alive.
	if err := s.Client.Expire(ctx, s.key(id), s.TTL).Err(); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.del(ctx, id)
}

type RedisCartStore struct {
	RedisJSON
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{RedisJSON{Client: client, Prefix: "cart:", TTL: ttl}}
}

func (s *RedisCartStore) Load(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	if _, err := s.get(ctx, sessionID, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *RedisCartStore) Save(ctx context.Context, sessionID string, lines []domain.CartLine) error {
	if len(lines) == 0 {
		return s.del(ctx, sessionID)
	}
	return s.set(ctx, sessionID, lines)
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	return s.del(ctx, sessionID)
}

type RedisSnapshotStore struct {
	RedisJSON
}

func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{RedisJSON{Client: client, Prefix: "snapshot:", TTL: ttl}}
}

func (s *RedisSnapshotStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	return s.get(ctx, key, dst)
}

func (s *RedisSnapshotStore) Save(ctx context.Context, key string, value any) error {
	return s.set(ctx, key, value)
}

func (s *RedisSnapshotStore) Delete(ctx context.Context, key string) error {
	return s.del(ctx, key)
}

// RedisSubmitGuard is a marker per in-flight submission. The TTL releases a
// marker left behind by a crashed request.
type RedisSubmitGuard struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSubmitGuard(client *redis.Client, ttl time.Duration) *RedisSubmitGuard {
	return &RedisSubmitGuard{Client: client, TTL: ttl}
}

var releaseGuard = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Acquire returns the token that owns the marker, ok is false when another
// submission already holds key.
func (g *RedisSubmitGuard) Acquire(ctx context.Context, key string) (token string, ok bool, err error) {
	token = uuid.NewString()
	ok, err = g.Client.SetNX(ctx, key, token, g.TTL).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

// Release deletes the marker only while it still carries token, so a request
// that outlived its TTL cannot drop a marker taken by a later request.
func (g *RedisSubmitGuard) Release(ctx context.Context, key, token string) error {
	return releaseGuard.Run(ctx, g.Client, []string{key}, token).Err()
}
