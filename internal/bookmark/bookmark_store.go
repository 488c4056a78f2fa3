package bookmark

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

const storeKey = "hr:bookmarks"

// ErrMalformed marks a stored value that did not parse. Callers treat it
// as "no bookmarks", never as a hard failure.
var ErrMalformed = errors.New("bookmark store: malformed persisted value")

// Store is the durable key-value surface behind the bookmark set. The
// whole ordered list is rewritten on every mutation.
type Store interface {
	Load(ctx context.Context) ([]int, error)
	Save(ctx context.Context, ids []int) error
}

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Load(ctx context.Context) ([]int, error) {
	val, err := s.rdb.Get(ctx, storeKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []int
	if err := json.Unmarshal([]byte(val), &ids); err != nil {
		return nil, ErrMalformed
	}
	return ids, nil
}

func (s *redisStore) Save(ctx context.Context, ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	payload, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	// No TTL: bookmarks survive across sessions.
	return s.rdb.Set(ctx, storeKey, payload, 0).Err()
}
