package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

// orderRepositoryInMemory — in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий заказов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[string]domain.Order),
	}
}

// Insert сохраняет новый заказ; занятый ключ отклоняется атомарно.
func (r *orderRepositoryInMemory) Insert(_ context.Context, o domain.Order) error {
	if err := stampKeys(&o.Keys); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := recordKey(o.PartitionKey, o.RowKey)
	if _, exists := r.items[key]; exists {
		return domain.ErrKeyExists
	}
	r.items[key] = o
	return nil
}

// Put перезаписывает заказ целиком, создавая его при отсутствии (upsert).
func (r *orderRepositoryInMemory) Put(_ context.Context, o domain.Order) error {
	if err := stampKeys(&o.Keys); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[recordKey(o.PartitionKey, o.RowKey)] = o
	return nil
}

// Get возвращает заказ или ErrNotFound.
func (r *orderRepositoryInMemory) Get(_ context.Context, partition, row string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.items[recordKey(partition, row)]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	return o, nil
}

// List возвращает все заказы; порядок не гарантируется.
func (r *orderRepositoryInMemory) List(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0, len(r.items))
	for _, o := range r.items {
		result = append(result, o)
	}
	return result, nil
}

// Delete идемпотентен.
func (r *orderRepositoryInMemory) Delete(_ context.Context, partition, row string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, recordKey(partition, row))
	return nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
