package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/skypulse/config"
	"github.com/Domenick1991/skypulse/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores upstream search responses so repeated identical
// searches skip the collaborator during the TTL window.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) GetSearch(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	data, err := c.client.Get(ctx, searchKey(params)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var result domain.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *RedisCache) SetSearch(ctx context.Context, params domain.SearchParams, result *domain.SearchResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(params), payload, c.ttl).Err()
}

func (c *RedisCache) GetAirports(ctx context.Context, keyword string) ([]domain.Airport, error) {
	data, err := c.client.Get(ctx, airportsKey(keyword)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var airports []domain.Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func (c *RedisCache) SetAirports(ctx context.Context, keyword string, airports []domain.Airport) error {
	payload, err := json.Marshal(airports)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, airportsKey(keyword), payload, c.ttl).Err()
}

func searchKey(p domain.SearchParams) string {
	return fmt.Sprintf("cache:search:%s:%s:%s:%s:%d:%d:%d:%s:%d",
		p.Origin, p.Destination, p.DepartureDate, p.ReturnDate,
		p.Adults, p.Children, p.Infants, p.CabinClass, p.MaxResults)
}

func airportsKey(keyword string) string {
	return "cache:airports:" + strings.ToLower(keyword)
}
