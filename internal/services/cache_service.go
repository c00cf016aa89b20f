package services

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys for the aggregate queries.
const (
	CustomerCountKey = "crm:customer_count"
	ProductCountKey  = "crm:product_count"
	OrderCountKey    = "crm:order_count"
	TotalRevenueKey  = "crm:total_revenue"
)

// aggregateTTL keeps dashboard aggregates fresh without hitting the
// database on every poll.
const aggregateTTL = 30 * time.Second

var cacheCtx = context.Background()

// CacheService caches aggregate query results in Redis. A nil receiver or a
// service without a client is a no-op, so callers never need to check.
type CacheService struct {
	client *redis.Client
}

// NewCacheService connects to Redis at addr. An empty addr disables caching.
func NewCacheService(addr string) *CacheService {
	if addr == "" {
		return &CacheService{}
	}
	return &CacheService{
		client: redis.NewClient(&redis.Options{
			Addr:         addr,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 2 * time.Second,
		}),
	}
}

// GetInt64 returns the cached counter for key, if present.
func (s *CacheService) GetInt64(key string) (int64, bool) {
	if s == nil || s.client == nil {
		return 0, false
	}
	value, err := s.client.Get(cacheCtx, key).Int64()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache get %s: %v", key, err)
		}
		return 0, false
	}
	return value, true
}

// SetInt64 stores a counter under key.
func (s *CacheService) SetInt64(key string, value int64) {
	if s == nil || s.client == nil {
		return
	}
	if err := s.client.Set(cacheCtx, key, value, aggregateTTL).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

// GetFloat64 returns the cached float for key, if present.
func (s *CacheService) GetFloat64(key string) (float64, bool) {
	if s == nil || s.client == nil {
		return 0, false
	}
	value, err := s.client.Get(cacheCtx, key).Float64()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache get %s: %v", key, err)
		}
		return 0, false
	}
	return value, true
}

// SetFloat64 stores a float under key.
func (s *CacheService) SetFloat64(key string, value float64) {
	if s == nil || s.client == nil {
		return
	}
	if err := s.client.Set(cacheCtx, key, value, aggregateTTL).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

// Invalidate drops the given keys after a write.
func (s *CacheService) Invalidate(keys ...string) {
	if s == nil || s.client == nil || len(keys) == 0 {
		return
	}
	if err := s.client.Del(cacheCtx, keys...).Err(); err != nil {
		log.Printf("cache invalidate: %v", err)
	}
}

// Close releases the Redis connection pool.
func (s *CacheService) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
