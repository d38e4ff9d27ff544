package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
)

// FoundPetReadRepository handles acknowledgment read operations.
type FoundPetReadRepository struct {
	db *sqlx.DB
}

func NewFoundPetReadRepository(db *sqlx.DB) *FoundPetReadRepository {
	return &FoundPetReadRepository{db: db}
}

// ListByOwner returns acknowledgments for alerts reported by the given
// owner, joined with the finder's profile contact details, newest first.
// Acknowledgments whose alert was already resolved (deleted) drop out of
// the join.
func (r *FoundPetReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FoundPetContact, error) {
	const query = `
		SELECT f.id, f.alert_id, a.pet_name, a.pet_type,
		       p.first_name AS finder_first_name,
		       p.last_name  AS finder_last_name,
		       p.phone      AS finder_phone,
		       p.address    AS finder_colonia,
		       f.created_at
		FROM found_pets f
		JOIN emergency_alerts a ON a.id = f.alert_id
		JOIN user_profiles p ON p.user_id = f.user_id
		WHERE a.user_id = $1
		ORDER BY f.created_at DESC
	`

	contacts := []models.FoundPetContact{}
	err := r.db.SelectContext(ctx, &contacts, query, ownerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"result", len(contacts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return contacts, nil
}

// FoundPetWriteRepository handles acknowledgment write operations.
type FoundPetWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFoundPetWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FoundPetWriteRepository {
	return &FoundPetWriteRepository{db: db, txGetter: txGetter}
}

func (r *FoundPetWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts one acknowledgment linking the finder to the alert. No
// uniqueness is enforced and the alert is not required to still exist.
func (r *FoundPetWriteRepository) Save(ctx context.Context, alertID, finderID uuid.UUID) (uuid.UUID, error) {
	const query = `
		INSERT INTO found_pets (id, alert_id, user_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, uuid.New(), alertID, finderID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{alertID, finderID},
		"result", id,
		"error", err,
	)

	return id, err
}
