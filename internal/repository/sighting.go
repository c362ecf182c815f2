package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/eagle_eye/internal/models"
	"github.com/shenikar/eagle_eye/internal/service"
)

const sightingKeyPrefix = "forensic"

type SightingRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewSightingRepository(redisClient *redis.Client, ttl time.Duration) service.SightingRepository {
	return &SightingRepository{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func sightingKey(plate, period string) string {
	return fmt.Sprintf("%s:%s:%s", sightingKeyPrefix, period, plate)
}

// GetSightings пытается получить результат поиска из Redis, (nil, nil) при промахе
func (r *SightingRepository) GetSightings(ctx context.Context, plate, period string) ([]models.Sighting, error) {
	val, err := r.redisClient.Get(ctx, sightingKey(plate, period)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sightings from cache: %w", err)
	}

	var sightings []models.Sighting
	if err := json.Unmarshal(val, &sightings); err != nil {
		// битая запись не должна жить до истечения ttl
		if delErr := r.InvalidateSightings(ctx, plate, period); delErr != nil {
			return nil, errors.Join(fmt.Errorf("failed to unmarshal sightings from cache: %w", err), delErr)
		}
		return nil, fmt.Errorf("failed to unmarshal sightings from cache: %w", err)
	}
	return sightings, nil
}

// SetSightings сохраняет результат поиска в Redis на время ttl
func (r *SightingRepository) SetSightings(ctx context.Context, plate, period string, sightings []models.Sighting) error {
	val, err := json.Marshal(sightings)
	if err != nil {
		return fmt.Errorf("failed to marshal sightings for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, sightingKey(plate, period), val, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set sightings in cache: %w", err)
	}
	return nil
}

// InvalidateSightings удаляет результат поиска из кэша
func (r *SightingRepository) InvalidateSightings(ctx context.Context, plate, period string) error {
	if err := r.redisClient.Del(ctx, sightingKey(plate, period)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate sightings cache: %w", err)
	}
	return nil
}
