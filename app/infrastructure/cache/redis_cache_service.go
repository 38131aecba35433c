package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"lendsqr.dev/admin-api-gateway/app/utils/logger"
	"lendsqr.dev/admin-api-gateway/config/environment_variables"
)

// RedisCacheService holds the session records and the distributed locks of
// the gateway. The durable user cache lives in Postgres, not here.
type RedisCacheService struct {
	client redis.UniversalClient
	rs     *redsync.Redsync
}

func NewRedisCacheService() *RedisCacheService {
	redisURL := environment_variables.EnvironmentVariables.REDIS_URL
	if redisURL == "" {
		panic("REDIS_URL environment variable must be set")
	}

	opts, err := buildUniversalOptions(redisURL)
	if err != nil {
		panic(fmt.Sprintf("failed to parse Redis URL: %v", err))
	}

	if pwd := environment_variables.EnvironmentVariables.REDIS_PASSWORD; pwd != "" {
		opts.Password = pwd
	}

	if dbVal := environment_variables.EnvironmentVariables.REDIS_DB; dbVal != 0 {
		opts.DB = dbVal
	}

	if len(opts.Addrs) > 1 && opts.DB != 0 {
		logger.GetLogger().Warn("Ignoring non-zero REDIS_DB when using Redis Cluster configuration")
		opts.DB = 0
	}

	client := redis.NewUniversalClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		panic(fmt.Sprintf("failed to connect to Redis: %v", err))
	}

	logger.GetLogger().Info("Successfully connected to Redis")

	rs := redsync.New(goredis.NewPool(client))

	return &RedisCacheService{
		client: client,
		rs:     rs,
	}
}

// buildUniversalOptions accepts either a single redis:// URL or a
// comma-separated list of addresses for cluster setups.
func buildUniversalOptions(raw string) (*redis.UniversalOptions, error) {
	parts := strings.Split(raw, ",")
	opts := &redis.UniversalOptions{}

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.Contains(part, "://") {
			parsed, err := redis.ParseURL(part)
			if err != nil {
				return nil, err
			}

			opts.Addrs = append(opts.Addrs, parsed.Addr)

			if opts.Username == "" {
				opts.Username = parsed.Username
			}
			if opts.Password == "" {
				opts.Password = parsed.Password
			}
			if opts.DB == 0 {
				opts.DB = parsed.DB
			}
			if opts.TLSConfig == nil {
				opts.TLSConfig = parsed.TLSConfig
			}
			if opts.DialTimeout == 0 {
				opts.DialTimeout = parsed.DialTimeout
			}
			if opts.PoolSize == 0 {
				opts.PoolSize = parsed.PoolSize
			}
		} else {
			opts.Addrs = append(opts.Addrs, part)
		}
	}

	if len(opts.Addrs) == 0 {
		return nil, fmt.Errorf("no Redis addresses provided")
	}

	return opts, nil
}

func (r *RedisCacheService) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisCacheService) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("key not found: %s", key)
		}
		return "", fmt.Errorf("failed to get value: %w", err)
	}

	return val, nil
}

func (r *RedisCacheService) Unlink(ctx context.Context, key string) error {
	return r.client.Unlink(ctx, key).Err()
}

func (r *RedisCacheService) Exists(ctx context.Context, key string) (bool, error) {
	result, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check key existence: %w", err)
	}
	return result > 0, nil
}

func (r *RedisCacheService) Close() error {
	return r.client.Close()
}

func (r *RedisCacheService) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCacheService) NewMutex(name string, options ...redsync.Option) *redsync.Mutex {
	return r.rs.NewMutex(name, options...)
}

func WithLock(cache RedisCacheService, lockName string, fn func() error, ttl time.Duration) error {
	mutex := cache.NewMutex(lockName, redsync.WithExpiry(ttl))

	if err := mutex.Lock(); err != nil {
		return err
	}

	defer func() {
		if _, err := mutex.Unlock(); err != nil {
		}
	}()

	return fn()
}
