package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

// Insert выполняет strict-insert: повторная регистрация заказа с тем же
// ID отклоняется первичным ключом.
func (r *orderRepository) Insert(ctx context.Context, o domain.Order) error {
	if err := stampKeys(&o.Keys); err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(opCtx, `
		INSERT INTO orders (
			partition_key, row_key, order_id, customer_id, product_id, order_date, address, etag, last_modified
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		o.PartitionKey, o.RowKey, o.ID, o.CustomerID, o.ProductID, o.OrderDate, o.Address,
		o.ETag, o.LastModified,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrKeyExists
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// Put перезаписывает заказ целиком (upsert): частичного обновления полей нет.
func (r *orderRepository) Put(ctx context.Context, o domain.Order) error {
	if err := stampKeys(&o.Keys); err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(opCtx, `
		INSERT INTO orders (
			partition_key, row_key, order_id, customer_id, product_id, order_date, address, etag, last_modified
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (partition_key, row_key) DO UPDATE SET
			order_id = EXCLUDED.order_id,
			customer_id = EXCLUDED.customer_id,
			product_id = EXCLUDED.product_id,
			order_date = EXCLUDED.order_date,
			address = EXCLUDED.address,
			etag = EXCLUDED.etag,
			last_modified = EXCLUDED.last_modified
	`,
		o.PartitionKey, o.RowKey, o.ID, o.CustomerID, o.ProductID, o.OrderDate, o.Address,
		o.ETag, o.LastModified,
	)
	if err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}
	return nil
}

// Get возвращает заказ или ErrNotFound.
func (r *orderRepository) Get(ctx context.Context, partition, row string) (domain.Order, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var o domain.Order
	err := r.db.QueryRowContext(opCtx, `
		SELECT partition_key, row_key, order_id, customer_id, product_id, order_date, address, etag, last_modified
		FROM orders
		WHERE partition_key = $1 AND row_key = $2
	`, partition, row).Scan(
		&o.PartitionKey, &o.RowKey, &o.ID, &o.CustomerID, &o.ProductID, &o.OrderDate, &o.Address,
		&o.ETag, &o.LastModified,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}
	o.OrderDate = o.OrderDate.UTC()
	return o, nil
}

// List возвращает все заказы.
func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(opCtx, `
		SELECT partition_key, row_key, order_id, customer_id, product_id, order_date, address, etag, last_modified
		FROM orders
		ORDER BY partition_key, row_key
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.PartitionKey, &o.RowKey, &o.ID, &o.CustomerID, &o.ProductID, &o.OrderDate, &o.Address,
			&o.ETag, &o.LastModified,
		); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		o.OrderDate = o.OrderDate.UTC()
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	return orders, nil
}

// Delete идемпотентен.
func (r *orderRepository) Delete(ctx context.Context, partition, row string) error {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(opCtx, `
		DELETE FROM orders WHERE partition_key = $1 AND row_key = $2
	`, partition, row); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
