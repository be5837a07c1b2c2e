package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	gocache "github.com/patrickmn/go-cache"

	"skilltracker/config"
)

// CacheStorage backs the Fiber limiter with an in-process TTL cache.
type CacheStorage struct {
	cache *gocache.Cache
}

// NewCacheStorage creates a storage whose expired entries are swept every cleanup interval.
func NewCacheStorage(cleanup time.Duration) *CacheStorage {
	return &CacheStorage{cache: gocache.New(gocache.NoExpiration, cleanup)}
}

// Get returns nil, nil for a missing key as the fiber.Storage contract expects.
func (s *CacheStorage) Get(key string) ([]byte, error) {
	if v, ok := s.cache.Get(key); ok {
		return v.([]byte), nil
	}
	return nil, nil
}

func (s *CacheStorage) Set(key string, val []byte, exp time.Duration) error {
	if len(key) == 0 || len(val) == 0 {
		return nil
	}
	if exp <= 0 {
		exp = gocache.NoExpiration
	}
	s.cache.Set(key, append([]byte(nil), val...), exp)
	return nil
}

func (s *CacheStorage) Delete(key string) error {
	s.cache.Delete(key)
	return nil
}

func (s *CacheStorage) Reset() error {
	s.cache.Flush()
	return nil
}

func (s *CacheStorage) Close() error {
	return nil
}

// RateLimiter limits each client IP to cfg.Max requests per cfg.Window.
func RateLimiter(cfg config.RateLimit, storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.Max,
		Expiration: cfg.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "too many requests, please try again later",
			})
		},
		Storage: storage,
	})
}
