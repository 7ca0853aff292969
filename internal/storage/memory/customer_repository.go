package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

// customerRepositoryInMemory — простая in-memory реализация CustomerRepository.
type customerRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Customer
}

// NewCustomerRepository возвращает in-memory репозиторий клиентов.
func NewCustomerRepository() domain.CustomerRepository {
	return &customerRepositoryInMemory{
		items: make(map[string]domain.Customer),
	}
}

// Insert сохраняет нового клиента; занятый ключ отклоняется атомарно.
func (r *customerRepositoryInMemory) Insert(_ context.Context, c domain.Customer) error {
	if err := stampKeys(&c.Keys); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := recordKey(c.PartitionKey, c.RowKey)
	if _, exists := r.items[key]; exists {
		return domain.ErrKeyExists
	}
	r.items[key] = c
	return nil
}

// Get возвращает клиента или ErrNotFound.
func (r *customerRepositoryInMemory) Get(_ context.Context, partition, row string) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[recordKey(partition, row)]
	if !ok {
		return domain.Customer{}, domain.ErrNotFound
	}
	return c, nil
}

// List возвращает всех клиентов; порядок не гарантируется.
func (r *customerRepositoryInMemory) List(_ context.Context) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Customer, 0, len(r.items))
	for _, c := range r.items {
		result = append(result, c)
	}
	return result, nil
}

// Delete идемпотентен: отсутствие записи не ошибка.
func (r *customerRepositoryInMemory) Delete(_ context.Context, partition, row string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, recordKey(partition, row))
	return nil
}

var _ domain.CustomerRepository = (*customerRepositoryInMemory)(nil)
