package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository создаёт PostgreSQL-реализацию UserRepository.
func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepository{db: store.DB()}
}

// Insert выполняет strict-insert учётной записи; email уже занят — ErrKeyExists.
func (r *userRepository) Insert(ctx context.Context, u domain.User) error {
	if err := stampKeys(&u.Keys); err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(opCtx, `
		INSERT INTO users (
			partition_key, row_key, email, name, password_hash, etag, last_modified
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		u.PartitionKey, u.RowKey, u.Email, u.Name, u.PasswordHash, u.ETag, u.LastModified,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrKeyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail возвращает учётную запись или ErrNotFound.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var u domain.User
	err := r.db.QueryRowContext(opCtx, `
		SELECT partition_key, row_key, email, name, password_hash, etag, last_modified
		FROM users
		WHERE partition_key = $1 AND row_key = $2
	`, domain.UsersPartition, email).Scan(
		&u.PartitionKey, &u.RowKey, &u.Email, &u.Name, &u.PasswordHash, &u.ETag, &u.LastModified,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

var _ domain.UserRepository = (*userRepository)(nil)
