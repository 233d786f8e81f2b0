package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/user-crud-service/internal/logger"
	"github.com/sbilibin2017/user-crud-service/internal/models"
)

// evictionGuard is how long a Set is refused after a Delete of the same user.
const evictionGuard = 5 * time.Second

// setUnlessEvicted stores KEYS[1] only when the eviction marker KEYS[2] is absent.
var setUnlessEvicted = redis.NewScript(`
if redis.call("EXISTS", KEYS[2]) == 1 then
	return 0
end
if tonumber(ARGV[2]) > 0 then
	redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
else
	redis.call("SET", KEYS[1], ARGV[1])
end
return 1
`)

// UserCacheRepository keeps recently read users in Redis.
//
// Delete leaves a short-lived eviction marker next to the key so that a
// read which loaded the row before an update or delete cannot put the
// stale copy back.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached users
	guard  time.Duration // lifetime of the eviction marker
}

// NewUserCacheRepository creates a new repository instance with the given TTL
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
		guard:  evictionGuard,
	}
}

func userCacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

func userEvictedKey(id int64) string {
	return fmt.Sprintf("user:%d:evicted", id)
}

// Get returns the cached user or nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, id int64) (*models.User, error) {
	key := userCacheKey(id)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("cache get",
		"key", key,
		"hit", err == nil,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return nil, fmt.Errorf("decode cached %s: %w", key, err)
	}

	return &user, nil
}

// Set stores the user under its id with the configured TTL. The write is
// skipped while the user carries an eviction marker.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.User) error {
	key := userCacheKey(user.ID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	stored, err := setUnlessEvicted.Run(ctx, r.client,
		[]string{key, userEvictedKey(user.ID)},
		data, r.exp.Milliseconds(),
	).Int()

	logger.Log.Infow("cache set",
		"key", key,
		"ttl", r.exp,
		"stored", stored == 1,
		"error", err,
	)

	return err
}

// Delete evicts the cached user and marks it evicted for the guard period.
// Evicting a missing key is not an error.
func (r *UserCacheRepository) Delete(ctx context.Context, id int64) error {
	key := userCacheKey(id)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.Set(ctx, userEvictedKey(id), 1, r.guard)
		return nil
	})

	logger.Log.Infow("cache delete",
		"key", key,
		"error", err,
	)

	return err
}
