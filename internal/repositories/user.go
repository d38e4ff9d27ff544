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

// UserReadRepository handles account read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the account with the given email, or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password_hash, is_complete, push_token, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

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

	return &user, nil
}

// GetNeighborPushTokens returns the push tokens of every user whose profile
// colonia equals the given one, excluding the actor's own account and
// accounts without a registered token. Matching is exact string equality.
func (r *UserReadRepository) GetNeighborPushTokens(ctx context.Context, colonia, excludeEmail string) ([]string, error) {
	const query = `
		SELECT u.push_token
		FROM users u
		JOIN user_profiles p ON p.user_id = u.id
		WHERE p.address = $1
		  AND u.email <> $2
		  AND u.push_token IS NOT NULL
	`

	tokens := []string{}
	err := r.db.SelectContext(ctx, &tokens, query, colonia, excludeEmail)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{colonia, excludeEmail},
		"result", len(tokens),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return tokens, nil
}

// UserWriteRepository handles account write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new incomplete account and returns its id.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, is_complete, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, NOW(), NOW())
		RETURNING id
	`

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, uuid.New(), email, passwordHash)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", id,
		"error", err,
	)

	return id, err
}

// SetComplete marks an account as having a profile attached.
func (r *UserWriteRepository) SetComplete(ctx context.Context, userID uuid.UUID) error {
	const query = `
		UPDATE users SET is_complete = TRUE, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetPushToken stores the device push token for the account with the given
// email and returns the number of rows affected.
func (r *UserWriteRepository) SetPushToken(ctx context.Context, email, token string) (int64, error) {
	const query = `
		UPDATE users SET push_token = $2, updated_at = NOW()
		WHERE email = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, email, token)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// DeleteIncompleteBefore removes accounts that never completed their profile
// and were created before the cutoff. Returns the number of deleted rows.
func (r *UserWriteRepository) DeleteIncompleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `
		DELETE FROM users
		WHERE is_complete = FALSE
		  AND created_at < $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, cutoff)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{cutoff},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
