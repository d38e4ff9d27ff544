package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
)

// LostPetsCacheRepository caches colony lost-pets feeds in Redis.
// The cache is strictly best-effort: a miss and a Redis failure look the
// same to the caller, who falls back to the database.
type LostPetsCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewLostPetsCacheRepository creates a cache repository with the given feed TTL.
func NewLostPetsCacheRepository(client *redis.Client, expiration time.Duration) *LostPetsCacheRepository {
	return &LostPetsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func feedKey(colonia string) string {
	return "lost_pets:" + colonia
}

// Get returns the cached feed for a colonia, or nil on miss.
func (r *LostPetsCacheRepository) Get(ctx context.Context, colonia string) ([]models.EmergencyAlertDB, error) {
	key := feedKey(colonia)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var alerts []models.EmergencyAlertDB
	if err := json.Unmarshal([]byte(val), &alerts); err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(alerts),
		"error", nil,
	)

	return alerts, nil
}

// Set caches the feed for a colonia with the repository TTL.
func (r *LostPetsCacheRepository) Set(ctx context.Context, colonia string, alerts []models.EmergencyAlertDB) error {
	key := feedKey(colonia)

	data, err := json.Marshal(alerts)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", len(alerts),
		"error", err,
	)

	return err
}

// Invalidate drops the cached feed for a colonia. Called whenever an alert
// is created or resolved in that colonia.
func (r *LostPetsCacheRepository) Invalidate(ctx context.Context, colonia string) error {
	key := feedKey(colonia)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "del",
		"error", err,
	)

	return err
}
