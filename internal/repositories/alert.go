package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
)

// EmergencyAlertReadRepository handles alert read operations.
type EmergencyAlertReadRepository struct {
	db *sqlx.DB
}

func NewEmergencyAlertReadRepository(db *sqlx.DB) *EmergencyAlertReadRepository {
	return &EmergencyAlertReadRepository{db: db}
}

// ListByColonia returns all alerts whose last-seen colonia exactly equals
// the given one, newest first.
func (r *EmergencyAlertReadRepository) ListByColonia(ctx context.Context, colonia string) ([]models.EmergencyAlertDB, error) {
	const query = `
		SELECT id, user_id, pet_name, pet_type, description, image_url, colonia,
		       lost_date, created_at
		FROM emergency_alerts
		WHERE colonia = $1
		ORDER BY created_at DESC
	`

	alerts := []models.EmergencyAlertDB{}
	err := r.db.SelectContext(ctx, &alerts, query, colonia)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{colonia},
		"result", len(alerts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return alerts, nil
}

// ListByReporter returns all alerts reported by the given user, newest first.
func (r *EmergencyAlertReadRepository) ListByReporter(ctx context.Context, userID uuid.UUID) ([]models.EmergencyAlertDB, error) {
	const query = `
		SELECT id, user_id, pet_name, pet_type, description, image_url, colonia,
		       lost_date, created_at
		FROM emergency_alerts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	alerts := []models.EmergencyAlertDB{}
	err := r.db.SelectContext(ctx, &alerts, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(alerts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return alerts, nil
}

// EmergencyAlertWriteRepository handles alert write operations.
type EmergencyAlertWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewEmergencyAlertWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *EmergencyAlertWriteRepository {
	return &EmergencyAlertWriteRepository{db: db, txGetter: txGetter}
}

func (r *EmergencyAlertWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts an alert attributed to the reporter and returns the alert id.
func (r *EmergencyAlertWriteRepository) Save(
	ctx context.Context,
	userID uuid.UUID,
	petName, petType string,
	description, imageURL *string,
	colonia string,
	lostDate time.Time,
) (uuid.UUID, error) {
	const query = `
		INSERT INTO emergency_alerts (id, user_id, pet_name, pet_type, description,
		                              image_url, colonia, lost_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id
	`

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query,
		uuid.New(), userID, petName, petType, description, imageURL, colonia, lostDate)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, petName, petType, colonia, lostDate},
		"result", id,
		"error", err,
	)

	return id, err
}

// DeleteByReporterAndPet removes every alert matching the composite
// (reporter, pet name, pet type) key and returns the colonias of the
// deleted rows, so the caller can invalidate each affected feed. An empty
// slice is the caller's "not found" signal.
func (r *EmergencyAlertWriteRepository) DeleteByReporterAndPet(ctx context.Context, userID uuid.UUID, petName, petType string) ([]string, error) {
	const query = `
		DELETE FROM emergency_alerts
		WHERE user_id = $1 AND pet_name = $2 AND pet_type = $3
		RETURNING colonia
	`

	colonias := []string{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &colonias, query, userID, petName, petType)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, petName, petType},
		"result", len(colonias),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return colonias, nil
}
