package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
)

// ProfileReadRepository handles profile read operations.
type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByEmail returns the profile of the account with the given email,
// or nil when the account has no profile yet.
func (r *ProfileReadRepository) GetByEmail(ctx context.Context, email string) (*models.ProfileDB, error) {
	const query = `
		SELECT p.id, p.user_id, p.first_name, p.last_name, p.phone, p.birth_date,
		       p.postal_code, p.address, p.city, p.profile_picture_url,
		       p.created_at, p.updated_at
		FROM user_profiles p
		JOIN users u ON p.user_id = u.id
		WHERE u.email = $1
	`

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// ProfileWriteRepository handles profile write operations.
type ProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfileWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProfileWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a profile for the given user and returns the profile id.
func (r *ProfileWriteRepository) Save(
	ctx context.Context,
	userID uuid.UUID,
	firstName, lastName, phone string,
	birthDate *time.Time,
	postalCode, address, city string,
) (uuid.UUID, error) {
	const query = `
		INSERT INTO user_profiles (id, user_id, first_name, last_name, phone, birth_date,
		                           postal_code, address, city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id
	`

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query,
		uuid.New(), userID, firstName, lastName, phone, birthDate, postalCode, address, city)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, firstName, lastName, phone, postalCode, address, city},
		"result", id,
		"error", err,
	)

	return id, err
}

// SetPictureURL stores the profile photo URL for the account with the given
// email and returns the number of rows affected.
func (r *ProfileWriteRepository) SetPictureURL(ctx context.Context, email, url string) (int64, error) {
	const query = `
		UPDATE user_profiles SET profile_picture_url = $2, updated_at = NOW()
		WHERE user_id = (SELECT id FROM users WHERE email = $1)
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, email, url)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, url},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
