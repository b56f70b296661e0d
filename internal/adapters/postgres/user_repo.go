// Package postgres содержит репозитории пользователей и заметок на PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"quirknotes/internal/domain/entities"
	"quirknotes/internal/ports/repositories"
	"quirknotes/pkg/logger"
)

// uniqueViolation - SQLSTATE нарушения уникальности.
const uniqueViolation = "23505"

const (
	errCtxCreatingUser = "error creating user"
	errCtxQueryingUser = "error querying user by username"
	logUserNotFound    = "user not found"
	logUsernameTaken   = "username already taken"
)

// PgxPoolInterface - подмножество pgxpool.Pool, используемое репозиториями.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
}

// UserRepository реализует repositories.UserRepository для Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// FindByUsername находит пользователя по имени.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByUsername"))

	query := `
        SELECT username, password_hash, created_at
        FROM users
        WHERE username = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, logUserNotFound, zap.String("username", username))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, errCtxQueryingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxQueryingUser, err)
	}

	return &user, nil
}

// Create сохраняет нового пользователя. Ограничение уникальности username
// превращается в entities.ErrUsernameTaken.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (username, password_hash)
        VALUES ($1, $2)
        RETURNING username, password_hash, created_at
    `

	var createdUser entities.User
	err := r.pool.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
	).Scan(
		&createdUser.Username,
		&createdUser.PasswordHash,
		&createdUser.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, logUsernameTaken, zap.String("username", user.Username))
			return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, entities.ErrUsernameTaken)
		}
		log.Error(ctx, errCtxCreatingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	return &createdUser, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
