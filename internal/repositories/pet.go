package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
)

// PetReadRepository handles pet read operations.
type PetReadRepository struct {
	db *sqlx.DB
}

func NewPetReadRepository(db *sqlx.DB) *PetReadRepository {
	return &PetReadRepository{db: db}
}

// ListByOwnerEmail returns the pets of the account with the given email,
// newest first.
func (r *PetReadRepository) ListByOwnerEmail(ctx context.Context, email string) ([]models.PetDB, error) {
	const query = `
		SELECT pt.id, pt.user_id, pt.type, pt.name, pt.color, pt.size, pt.features,
		       pt.image_url, pt.created_at
		FROM pets pt
		JOIN users u ON pt.user_id = u.id
		WHERE u.email = $1
		ORDER BY pt.created_at DESC
	`

	pets := []models.PetDB{}
	err := r.db.SelectContext(ctx, &pets, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", len(pets),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return pets, nil
}

// PetWriteRepository handles pet write operations.
type PetWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPetWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PetWriteRepository {
	return &PetWriteRepository{db: db, txGetter: txGetter}
}

func (r *PetWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a pet owned by the given user and returns the pet id.
func (r *PetWriteRepository) Save(
	ctx context.Context,
	userID uuid.UUID,
	petType, name, color, size string,
	features, imageURL *string,
) (uuid.UUID, error) {
	const query = `
		INSERT INTO pets (id, user_id, type, name, color, size, features, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id
	`

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query,
		uuid.New(), userID, petType, name, color, size, features, imageURL)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, petType, name, color, size},
		"result", id,
		"error", err,
	)

	return id, err
}
