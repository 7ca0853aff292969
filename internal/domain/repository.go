package domain

import "context"

// CustomerRepository описывает требования к хранилищу клиентов.
// Insert — strict-insert: дубликат ключа отклоняется хранилищем атомарно.
type CustomerRepository interface {
	// Insert сохраняет нового клиента. Возвращает ErrKeyExists, если ключ занят.
	Insert(ctx context.Context, c Customer) error
	// Get возвращает запись или ErrNotFound, если её нет.
	Get(ctx context.Context, partition, row string) (Customer, error)
	// List возвращает всех клиентов; порядок не гарантируется.
	List(ctx context.Context) ([]Customer, error)
	// Delete идемпотентен: отсутствие записи не считается ошибкой.
	Delete(ctx context.Context, partition, row string) error
}

// ProductRepository описывает требования к хранилищу товаров.
type ProductRepository interface {
	Insert(ctx context.Context, p Product) error
	Get(ctx context.Context, partition, row string) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Delete(ctx context.Context, partition, row string) error
}

// OrderRepository описывает требования к хранилищу заказов.
// В отличие от клиентов и товаров здесь доступны оба режима записи:
// Insert для регистрации (атомарный отказ по дубликату) и Put для
// редактирования (upsert, полная перезапись).
type OrderRepository interface {
	Insert(ctx context.Context, o Order) error
	// Put перезаписывает запись целиком; создаёт её, если ключ свободен.
	Put(ctx context.Context, o Order) error
	Get(ctx context.Context, partition, row string) (Order, error)
	List(ctx context.Context) ([]Order, error)
	Delete(ctx context.Context, partition, row string) error
}

// UserRepository хранит учётные записи back-office.
type UserRepository interface {
	Insert(ctx context.Context, u User) error
	// GetByEmail возвращает учётную запись или ErrNotFound.
	GetByEmail(ctx context.Context, email string) (User, error)
}
