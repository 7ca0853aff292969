package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository создаёт PostgreSQL-реализацию CustomerRepository.
func NewCustomerRepository(store *Store) domain.CustomerRepository {
	return &customerRepository{db: store.DB()}
}

// Insert выполняет strict-insert: дубликат ключа отклоняется базой
// атомарно через первичный ключ (partition_key, row_key).
func (r *customerRepository) Insert(ctx context.Context, c domain.Customer) error {
	if err := stampKeys(&c.Keys); err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(opCtx, `
		INSERT INTO customers (
			partition_key, row_key, customer_id, name, surname, email, phone, etag, last_modified
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		c.PartitionKey, c.RowKey, c.ID, c.Name, c.Surname, c.Email, c.Phone,
		c.ETag, c.LastModified,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrKeyExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// Get возвращает клиента или ErrNotFound.
func (r *customerRepository) Get(ctx context.Context, partition, row string) (domain.Customer, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var c domain.Customer
	err := r.db.QueryRowContext(opCtx, `
		SELECT partition_key, row_key, customer_id, name, surname, email, phone, etag, last_modified
		FROM customers
		WHERE partition_key = $1 AND row_key = $2
	`, partition, row).Scan(
		&c.PartitionKey, &c.RowKey, &c.ID, &c.Name, &c.Surname, &c.Email, &c.Phone,
		&c.ETag, &c.LastModified,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, domain.ErrNotFound
		}
		return domain.Customer{}, fmt.Errorf("select customer: %w", err)
	}
	return c, nil
}

// List возвращает всех клиентов; порядок определяется только ключами.
func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(opCtx, `
		SELECT partition_key, row_key, customer_id, name, surname, email, phone, etag, last_modified
		FROM customers
		ORDER BY partition_key, row_key
	`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(
			&c.PartitionKey, &c.RowKey, &c.ID, &c.Name, &c.Surname, &c.Email, &c.Phone,
			&c.ETag, &c.LastModified,
		); err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}
	return customers, nil
}

// Delete идемпотентен: отсутствие строки не считается ошибкой.
func (r *customerRepository) Delete(ctx context.Context, partition, row string) error {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(opCtx, `
		DELETE FROM customers WHERE partition_key = $1 AND row_key = $2
	`, partition, row); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

var _ domain.CustomerRepository = (*customerRepository)(nil)
