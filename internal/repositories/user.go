package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/user-crud-service/internal/models"
)

// UserReadRepository serves read-only queries over the users table.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id or models.ErrUserNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := r.db.Rebind(`
		SELECT id, username, email
		FROM users
		WHERE id = ?
	`)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)

	logQuery(query, []any{id}, user, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}

	return &user, nil
}

// List returns every user ordered by id. An empty table yields an empty slice.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `
		SELECT id, username, email
		FROM users
		ORDER BY id
	`

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query)

	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// UserWriteRepository serves inserts, updates and deletes over the users table.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts a new user and returns the id assigned by the database.
func (r *UserWriteRepository) Create(ctx context.Context, username, email string) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO users (username, email)
		VALUES (?, ?)
		RETURNING id
	`)
	args := []any{username, email}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logQuery(query, args, id, err)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, models.ErrUserAlreadyExists
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

// Update sets the non-nil fields of the user with the given id in one statement.
// Nil fields keep their stored value.
func (r *UserWriteRepository) Update(ctx context.Context, id int64, username, email *string) error {
	query := r.db.Rebind(`
		UPDATE users
		SET username = COALESCE(?, username),
		    email = COALESCE(?, email)
		WHERE id = ?
	`)
	args := []any{nullable(username), nullable(email), id}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if err == nil {
		rowsAffected, err = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrUserAlreadyExists
		}
		return fmt.Errorf("update user %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}

	return nil
}

// Delete removes the user with the given id.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`
		DELETE FROM users
		WHERE id = ?
	`)

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if err == nil {
		rowsAffected, err = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}

	return nil
}

// nullable maps an absent field to SQL NULL so COALESCE keeps the stored value.
func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
