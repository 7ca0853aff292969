package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

// productRepositoryInMemory — in-memory реализация ProductRepository.
type productRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Product
}

// NewProductRepository возвращает in-memory репозиторий товаров.
func NewProductRepository() domain.ProductRepository {
	return &productRepositoryInMemory{
		items: make(map[string]domain.Product),
	}
}

// Insert сохраняет новый товар; занятый ключ отклоняется атомарно.
func (r *productRepositoryInMemory) Insert(_ context.Context, p domain.Product) error {
	if err := stampKeys(&p.Keys); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := recordKey(p.PartitionKey, p.RowKey)
	if _, exists := r.items[key]; exists {
		return domain.ErrKeyExists
	}
	r.items[key] = p
	return nil
}

// Get возвращает товар или ErrNotFound.
func (r *productRepositoryInMemory) Get(_ context.Context, partition, row string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[recordKey(partition, row)]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

// List возвращает все товары; порядок не гарантируется.
func (r *productRepositoryInMemory) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.items))
	for _, p := range r.items {
		result = append(result, p)
	}
	return result, nil
}

// Delete идемпотентен.
func (r *productRepositoryInMemory) Delete(_ context.Context, partition, row string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, recordKey(partition, row))
	return nil
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
