package assistant

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/google/uuid"

	"github.com/goorum04/Nlvip-sub000/internal/adapters/redis"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

// TokenStore issues single-use tokens binding an execution plan to the
// exact set of calls the admin saw. Consume succeeds at most once per
// token.
type TokenStore interface {
	Issue(ctx context.Context, callIDs []string) (string, error)
	Consume(ctx context.Context, token string, callIDs []string) error
}

const planTokenKeyPrefix = "assistant:plan:"

// RedisTokenStore keeps plan tokens in Redis with a TTL. GETDEL makes
// consumption atomic, so a token replayed concurrently is honored once.
type RedisTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTokenStore creates a Redis-backed plan token store.
func NewRedisTokenStore(client *redis.Client, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{
		client: client,
		ttl:    ttl,
	}
}

// Issue stores the sorted call IDs under a fresh token.
func (s *RedisTokenStore) Issue(ctx context.Context, callIDs []string) (string, error) {
	token := uuid.New().String()

	ids := normalizeCallIDs(callIDs)
	if err := s.client.Set(ctx, planTokenKeyPrefix+token, ids, s.ttl); err != nil {
		return "", errors.Wrap(err, "failed to store plan token")
	}

	return token, nil
}

// Consume deletes the token and verifies the submitted calls are
// exactly the ones the token was issued for.
func (s *RedisTokenStore) Consume(ctx context.Context, token string, callIDs []string) error {
	if token == "" {
		return errors.Wrap(errors.ErrPlanTokenInvalid, "plan token is required")
	}

	raw, err := s.client.Client().GetDel(ctx, planTokenKeyPrefix+token).Result()
	if err == goredis.Nil {
		return errors.Wrap(errors.ErrPlanTokenInvalid, "plan token not found or already used")
	}
	if err != nil {
		return errors.Wrap(err, "failed to consume plan token")
	}

	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return errors.Wrap(err, "corrupt plan token payload")
	}

	if !sameCallIDs(stored, callIDs) {
		return errors.Wrap(errors.ErrPlanTokenMismatch, "submitted calls differ from the confirmed plan")
	}

	return nil
}

// NoopTokenStore accepts everything. Used when plan token verification
// is disabled by configuration.
type NoopTokenStore struct{}

// NewNoopTokenStore creates a pass-through token store.
func NewNoopTokenStore() *NoopTokenStore {
	return &NoopTokenStore{}
}

// Issue returns an empty token.
func (s *NoopTokenStore) Issue(_ context.Context, _ []string) (string, error) {
	return "", nil
}

// Consume accepts any token.
func (s *NoopTokenStore) Consume(_ context.Context, _ string, _ []string) error {
	return nil
}

func normalizeCallIDs(ids []string) []string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	return sorted
}

func sameCallIDs(stored, submitted []string) bool {
	submitted = normalizeCallIDs(submitted)
	if len(stored) != len(submitted) {
		return false
	}
	for i := range stored {
		if stored[i] != submitted[i] {
			return false
		}
	}

	return true
}
