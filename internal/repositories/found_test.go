package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/okhuysen/peturnidad-api/internal/models"
)

func setupFoundPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		is_complete BOOLEAN NOT NULL DEFAULT FALSE,
		push_token VARCHAR(255),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS user_profiles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		phone VARCHAR(20) NOT NULL,
		birth_date DATE,
		postal_code VARCHAR(10) NOT NULL,
		address VARCHAR(255) NOT NULL,
		city VARCHAR(100) NOT NULL,
		profile_picture_url VARCHAR(500),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS emergency_alerts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		pet_name VARCHAR(100) NOT NULL,
		pet_type VARCHAR(20) NOT NULL,
		description TEXT,
		image_url VARCHAR(500),
		colonia VARCHAR(255) NOT NULL,
		lost_date TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS found_pets (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		alert_id UUID NOT NULL,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestFoundPetWriteRepository_Save(t *testing.T) {
	db, teardown := setupFoundPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	alertRepo := NewEmergencyAlertWriteRepository(db, nil)
	repo := NewFoundPetWriteRepository(db, nil)
	ctx := context.Background()

	ownerID, err := userRepo.Save(ctx, "owner@example.com", "secret")
	assert.NoError(t, err)
	finderID, err := userRepo.Save(ctx, "finder@example.com", "secret")
	assert.NoError(t, err)

	alertID, err := alertRepo.Save(ctx, ownerID, "Firulais", models.PetTypeDog, nil, nil, "Roma Norte", time.Now())
	assert.NoError(t, err)

	foundID, err := repo.Save(ctx, alertID, finderID)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, foundID)

	var found models.FoundPetDB
	err = db.Get(&found, "SELECT id, alert_id, user_id, created_at FROM found_pets WHERE id=$1", foundID)
	assert.NoError(t, err)
	assert.Equal(t, alertID, found.AlertID)
	assert.Equal(t, finderID, found.UserID)

	t.Run("DuplicateAcknowledgment", func(t *testing.T) {
		_, err := repo.Save(ctx, alertID, finderID)
		assert.NoError(t, err)

		var count int
		err = db.Get(&count, "SELECT COUNT(*) FROM found_pets WHERE alert_id=$1 AND user_id=$2", alertID, finderID)
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestFoundPetReadRepository_ListByOwner(t *testing.T) {
	db, teardown := setupFoundPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	profileRepo := NewProfileWriteRepository(db, nil)
	alertRepo := NewEmergencyAlertWriteRepository(db, nil)
	writeRepo := NewFoundPetWriteRepository(db, nil)
	readRepo := NewFoundPetReadRepository(db)
	ctx := context.Background()

	ownerID, err := userRepo.Save(ctx, "owner@example.com", "secret")
	assert.NoError(t, err)
	finderID, err := userRepo.Save(ctx, "finder@example.com", "secret")
	assert.NoError(t, err)
	_, err = profileRepo.Save(ctx, finderID, "Felipe", "Núñez", "5599887766", nil, "06700", "Roma Norte", "CDMX")
	assert.NoError(t, err)

	alertID, err := alertRepo.Save(ctx, ownerID, "Firulais", models.PetTypeDog, nil, nil, "Roma Norte", time.Now())
	assert.NoError(t, err)

	foundID, err := writeRepo.Save(ctx, alertID, finderID)
	assert.NoError(t, err)

	contacts, err := readRepo.ListByOwner(ctx, ownerID)
	assert.NoError(t, err)
	assert.Len(t, contacts, 1)

	contact := contacts[0]
	assert.Equal(t, foundID, contact.FoundID)
	assert.Equal(t, alertID, contact.AlertID)
	assert.Equal(t, "Firulais", contact.PetName)
	assert.Equal(t, models.PetTypeDog, contact.PetType)
	assert.Equal(t, "Felipe", contact.FinderFirstName)
	assert.Equal(t, "Núñez", contact.FinderLastName)
	assert.Equal(t, "5599887766", contact.FinderPhone)
	assert.Equal(t, "Roma Norte", contact.FinderColonia)

	t.Run("ResolvedAlertDropsOut", func(t *testing.T) {
		colonias, err := alertRepo.DeleteByReporterAndPet(ctx, ownerID, "Firulais", models.PetTypeDog)
		assert.NoError(t, err)
		assert.Len(t, colonias, 1)

		contacts, err := readRepo.ListByOwner(ctx, ownerID)
		assert.NoError(t, err)
		assert.Empty(t, contacts)
	})

	t.Run("OtherOwner", func(t *testing.T) {
		contacts, err := readRepo.ListByOwner(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Empty(t, contacts)
	})
}
