package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

const opTimeout = 5 * time.Second

// stampKeys проверяет адрес записи и присваивает новый etag и
// last_modified: эти поля принадлежат хранилищу, значения вызывающей
// стороны перезаписываются.
func stampKeys(k *domain.Keys) error {
	if k.PartitionKey == "" || k.RowKey == "" {
		return domain.ErrKeysRequired
	}
	k.ETag = uuid.NewString()
	k.LastModified = time.Now().UTC()
	return nil
}

// isUniqueViolation распознаёт нарушение уникального ограничения (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
