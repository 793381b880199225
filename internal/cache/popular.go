package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/salonhub/salon-backend/internal/models"
)

const (
	popularKey = "services:popular"
	popularTTL = 10 * time.Minute
)

// PopularCache keeps the popularity ranking warm between recomputations.
type PopularCache struct {
	client *redis.Client
}

func NewPopularCache(client *redis.Client) *PopularCache {
	return &PopularCache{client: client}
}

func (p *PopularCache) Get(ctx context.Context) ([]models.Service, bool) {
	if p == nil || p.client == nil {
		return nil, false
	}

	raw, err := p.client.Get(ctx, popularKey).Result()
	if err != nil {
		return nil, false
	}

	var services []models.Service
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return nil, false
	}
	return services, true
}

func (p *PopularCache) Set(ctx context.Context, services []models.Service) {
	if p == nil || p.client == nil {
		return
	}

	raw, err := json.Marshal(services)
	if err != nil {
		return
	}
	p.client.Set(ctx, popularKey, raw, popularTTL)
}
