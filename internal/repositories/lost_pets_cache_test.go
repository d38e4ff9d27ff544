package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/okhuysen/peturnidad-api/internal/models"
)

func TestLostPetsCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewLostPetsCacheRepository(rdb, 2*time.Second)

	description := "Se perdió cerca del parque"
	feed := []models.EmergencyAlertDB{
		{
			AlertID:     uuid.New(),
			UserID:      uuid.New(),
			PetName:     "Firulais",
			PetType:     models.PetTypeDog,
			Description: &description,
			Colonia:     "Roma Norte",
			LostDate:    time.Date(2026, 8, 29, 18, 0, 0, 0, time.UTC),
			CreatedAt:   time.Date(2026, 8, 29, 18, 5, 0, 0, time.UTC),
		},
		{
			AlertID:   uuid.New(),
			UserID:    uuid.New(),
			PetName:   "Michi",
			PetType:   models.PetTypeCat,
			Colonia:   "Roma Norte",
			LostDate:  time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2026, 8, 28, 9, 10, 0, 0, time.UTC),
		},
	}

	t.Run("Set and Get feed", func(t *testing.T) {
		err := repo.Set(ctx, "Roma Norte", feed)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "Roma Norte")
		assert.NoError(t, err)
		assert.Equal(t, feed, got)
	})

	t.Run("Miss returns nil without error", func(t *testing.T) {
		got, err := repo.Get(ctx, "Condesa")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Keys are per colonia", func(t *testing.T) {
		err := repo.Set(ctx, "Del Valle", feed[:1])
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "Del Valle")
		assert.NoError(t, err)
		assert.Len(t, got, 1)

		val, err := rdb.Get(ctx, "lost_pets:Del Valle").Result()
		assert.NoError(t, err)
		assert.NotEmpty(t, val)
	})

	t.Run("Empty feed is cached", func(t *testing.T) {
		err := repo.Set(ctx, "Narvarte", []models.EmergencyAlertDB{})
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "Narvarte")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Invalidate drops the feed", func(t *testing.T) {
		err := repo.Set(ctx, "Roma Norte", feed)
		assert.NoError(t, err)

		err = repo.Invalidate(ctx, "Roma Norte")
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "Roma Norte")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Cached feed expires", func(t *testing.T) {
		err := repo.Set(ctx, "Polanco", feed)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, "Polanco")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
