package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/autoops/taskboard/internal/models"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const userColumns = `"Id", "Username", "Email", "Password", "FullName", "CreatedAt", "LastLogin"`

// UserReadRepository serves lookups over the "Users" table.
type UserReadRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewUserReadRepository(db *sqlx.DB, log *zap.SugaredLogger) *UserReadRepository {
	return &UserReadRepository{db: db, log: log}
}

// GetByUsernameOrEmail returns the first user matching either field, or
// nil when none exists. Used by registration's duplicate pre-check.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM "Users"
		WHERE "Username" = $1 OR "Email" = $2
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Errorw("user lookup failed", "username", username, "error", err)
		return nil, err
	}

	return &user, nil
}

// GetByUsername returns the user with the given username, or nil.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM "Users"
		WHERE "Username" = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Errorw("user lookup failed", "username", username, "error", err)
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM "Users"
		WHERE "Id" = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Errorw("user lookup failed", "id", id, "error", err)
		return nil, err
	}

	return &user, nil
}

// List returns every user, newest-created first.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM "Users"
		ORDER BY "CreatedAt" DESC
	`

	var users []models.UserDB
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		r.log.Errorw("user list failed", "error", err)
		return nil, err
	}

	return users, nil
}

// UserWriteRepository serves mutations of the "Users" table.
type UserWriteRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewUserWriteRepository(db *sqlx.DB, log *zap.SugaredLogger) *UserWriteRepository {
	return &UserWriteRepository{db: db, log: log}
}

// Save inserts a new user and returns the persisted row. The unique
// constraints on username and email are the last line of defense against
// concurrent duplicate registrations; callers translate that violation.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string, fullName *string) (*models.UserDB, error) {
	const query = `
		INSERT INTO "Users" ("Username", "Email", "Password", "FullName")
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns + `
	`

	var user models.UserDB
	if err := r.db.GetContext(ctx, &user, query, username, email, passwordHash, fullName); err != nil {
		r.log.Errorw("user insert failed", "username", username, "error", err)
		return nil, err
	}

	return &user, nil
}

// UpdateLastLogin stamps the user's last successful login.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	const query = `
		UPDATE "Users"
		SET "LastLogin" = CURRENT_TIMESTAMP
		WHERE "Id" = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.log.Errorw("last login update failed", "id", id, "error", err)
		return err
	}

	return nil
}
