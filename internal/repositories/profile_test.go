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
)

func setupProfilePostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestProfileWriteRepository_Save(t *testing.T) {
	db, teardown := setupProfilePostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	repo := NewProfileWriteRepository(db, nil)
	ctx := context.Background()

	userID, err := userRepo.Save(ctx, "alice@example.com", "secret")
	assert.NoError(t, err)

	birth := time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)
	profileID, err := repo.Save(ctx, userID, "Alice", "López", "5512345678", &birth, "06700", "Roma Norte", "CDMX")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, profileID)

	var profile struct {
		UserID     uuid.UUID  `db:"user_id"`
		FirstName  string     `db:"first_name"`
		LastName   string     `db:"last_name"`
		Phone      string     `db:"phone"`
		BirthDate  *time.Time `db:"birth_date"`
		PostalCode string     `db:"postal_code"`
		Address    string     `db:"address"`
		City       string     `db:"city"`
	}
	err = db.Get(&profile, "SELECT user_id, first_name, last_name, phone, birth_date, postal_code, address, city FROM user_profiles WHERE id=$1", profileID)
	assert.NoError(t, err)

	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, "Alice", profile.FirstName)
	assert.Equal(t, "López", profile.LastName)
	assert.Equal(t, "5512345678", profile.Phone)
	assert.NotNil(t, profile.BirthDate)
	assert.Equal(t, birth.Format("2006-01-02"), profile.BirthDate.Format("2006-01-02"))
	assert.Equal(t, "06700", profile.PostalCode)
	assert.Equal(t, "Roma Norte", profile.Address)
	assert.Equal(t, "CDMX", profile.City)
}

func TestProfileWriteRepository_Save_NilBirthDate(t *testing.T) {
	db, teardown := setupProfilePostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	repo := NewProfileWriteRepository(db, nil)
	ctx := context.Background()

	userID, err := userRepo.Save(ctx, "bob@example.com", "secret")
	assert.NoError(t, err)

	profileID, err := repo.Save(ctx, userID, "Bob", "García", "5587654321", nil, "03100", "Del Valle", "CDMX")
	assert.NoError(t, err)

	var birth *time.Time
	err = db.Get(&birth, "SELECT birth_date FROM user_profiles WHERE id=$1", profileID)
	assert.NoError(t, err)
	assert.Nil(t, birth)
}

func TestProfileReadRepository_GetByEmail(t *testing.T) {
	db, teardown := setupProfilePostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	writeRepo := NewProfileWriteRepository(db, nil)
	readRepo := NewProfileReadRepository(db)
	ctx := context.Background()

	userID, err := userRepo.Save(ctx, "carla@example.com", "secret")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, userID, "Carla", "Martínez", "5511112222", nil, "06100", "Condesa", "CDMX")
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		profile, err := readRepo.GetByEmail(ctx, "carla@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, profile)
		assert.Equal(t, userID, profile.UserID)
		assert.Equal(t, "Carla", profile.FirstName)
		assert.Equal(t, "Condesa", profile.Address)
		assert.Nil(t, profile.ProfilePictureURL)
	})

	t.Run("NoProfile", func(t *testing.T) {
		_, err := userRepo.Save(ctx, "incomplete@example.com", "secret")
		assert.NoError(t, err)

		profile, err := readRepo.GetByEmail(ctx, "incomplete@example.com")
		assert.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		profile, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, profile)
	})
}

func TestProfileWriteRepository_SetPictureURL(t *testing.T) {
	db, teardown := setupProfilePostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	writeRepo := NewProfileWriteRepository(db, nil)
	readRepo := NewProfileReadRepository(db)
	ctx := context.Background()

	userID, err := userRepo.Save(ctx, "diana@example.com", "secret")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, userID, "Diana", "Reyes", "5533334444", nil, "06700", "Roma Norte", "CDMX")
	assert.NoError(t, err)

	rows, err := writeRepo.SetPictureURL(ctx, "diana@example.com", "https://cdn.example.com/diana.jpg")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	profile, err := readRepo.GetByEmail(ctx, "diana@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.NotNil(t, profile.ProfilePictureURL)
	assert.Equal(t, "https://cdn.example.com/diana.jpg", *profile.ProfilePictureURL)

	t.Run("UnknownEmail", func(t *testing.T) {
		rows, err := writeRepo.SetPictureURL(ctx, "nobody@example.com", "https://cdn.example.com/x.jpg")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})
}
