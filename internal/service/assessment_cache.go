package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"behavior-insights/internal/domain"
)

const cacheOpTimeout = 500 * time.Millisecond

// AssessmentCache guarda la ultima evaluacion por usuario.
type AssessmentCache interface {
	Get(ctx context.Context, userID string) (domain.Assessment, bool, error)
	Set(ctx context.Context, assessment domain.Assessment) error
}

type memoryAssessmentCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]memoryCacheEntry
}

type memoryCacheEntry struct {
	assessment domain.Assessment
	expiresAt  time.Time
}

func NewMemoryAssessmentCache(ttl time.Duration) AssessmentCache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &memoryAssessmentCache{
		ttl:   ttl,
		items: make(map[string]memoryCacheEntry),
	}
}

func (c *memoryAssessmentCache) Get(_ context.Context, userID string) (domain.Assessment, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.items[userID]
	if !ok {
		return domain.Assessment{}, false, nil
	}
	if time.Now().UTC().After(entry.expiresAt) {
		delete(c.items, userID)
		return domain.Assessment{}, false, nil
	}
	return entry.assessment, true, nil
}

func (c *memoryAssessmentCache) Set(_ context.Context, a domain.Assessment) error {
	if strings.TrimSpace(a.UserID) == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[a.UserID] = memoryCacheEntry{
		assessment: a,
		expiresAt:  time.Now().UTC().Add(c.ttl),
	}
	return nil
}

type redisAssessmentCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisAssessmentCache(client *redis.Client, ttl time.Duration) AssessmentCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &redisAssessmentCache{
		client: client,
		ttl:    ttl,
		prefix: "assessment:latest:",
	}
}

func (c *redisAssessmentCache) Get(ctx context.Context, userID string) (domain.Assessment, bool, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Assessment{}, false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()
	raw, err := c.client.Get(ctx, c.prefix+userID).Bytes()
	if err == redis.Nil {
		return domain.Assessment{}, false, nil
	}
	if err != nil {
		return domain.Assessment{}, false, err
	}
	var a domain.Assessment
	if err := json.Unmarshal(raw, &a); err != nil {
		return domain.Assessment{}, false, err
	}
	return a, true, nil
}

func (c *redisAssessmentCache) Set(ctx context.Context, a domain.Assessment) error {
	if strings.TrimSpace(a.UserID) == "" {
		return nil
	}
	payload, err := json.Marshal(a)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()
	return c.client.Set(ctx, c.prefix+a.UserID, payload, c.ttl).Err()
}
