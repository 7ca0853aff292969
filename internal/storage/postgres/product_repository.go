package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт PostgreSQL-реализацию ProductRepository.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{db: store.DB()}
}

// Insert выполняет strict-insert товара. Row key — uuid, поэтому
// конфликт ключа здесь практически исключён, но семантика сохранена.
func (r *productRepository) Insert(ctx context.Context, p domain.Product) error {
	if err := stampKeys(&p.Keys); err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(opCtx, `
		INSERT INTO products (
			partition_key, row_key, product_id, name, description, price, category, image_ref, etag, last_modified
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		p.PartitionKey, p.RowKey, p.ID, p.Name, p.Description, p.Price, p.Category,
		p.ImageRef, p.ETag, p.LastModified,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrKeyExists
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Get возвращает товар или ErrNotFound.
func (r *productRepository) Get(ctx context.Context, partition, row string) (domain.Product, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var p domain.Product
	err := r.db.QueryRowContext(opCtx, `
		SELECT partition_key, row_key, product_id, name, description, price, category, image_ref, etag, last_modified
		FROM products
		WHERE partition_key = $1 AND row_key = $2
	`, partition, row).Scan(
		&p.PartitionKey, &p.RowKey, &p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&p.ImageRef, &p.ETag, &p.LastModified,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrNotFound
		}
		return domain.Product{}, fmt.Errorf("select product: %w", err)
	}
	return p, nil
}

// List возвращает все товары.
func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(opCtx, `
		SELECT partition_key, row_key, product_id, name, description, price, category, image_ref, etag, last_modified
		FROM products
		ORDER BY partition_key, row_key
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.PartitionKey, &p.RowKey, &p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
			&p.ImageRef, &p.ETag, &p.LastModified,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}
	return products, nil
}

// Delete идемпотентен.
func (r *productRepository) Delete(ctx context.Context, partition, row string) error {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(opCtx, `
		DELETE FROM products WHERE partition_key = $1 AND row_key = $2
	`, partition, row); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

var _ domain.ProductRepository = (*productRepository)(nil)
