package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

// userRepositoryInMemory — in-memory реализация UserRepository.
type userRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.User
}

// NewUserRepository возвращает in-memory репозиторий учётных записей.
func NewUserRepository() domain.UserRepository {
	return &userRepositoryInMemory{
		items: make(map[string]domain.User),
	}
}

// Insert сохраняет новую учётную запись; занятый email отклоняется атомарно.
func (r *userRepositoryInMemory) Insert(_ context.Context, u domain.User) error {
	if err := stampKeys(&u.Keys); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := recordKey(u.PartitionKey, u.RowKey)
	if _, exists := r.items[key]; exists {
		return domain.ErrKeyExists
	}
	r.items[key] = u
	return nil
}

// GetByEmail возвращает учётную запись или ErrNotFound.
func (r *userRepositoryInMemory) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[recordKey(domain.UsersPartition, email)]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

var _ domain.UserRepository = (*userRepositoryInMemory)(nil)
