package domain

import "errors"

var (
	// Ошибка выхода натурального идентификатора за пределы [100, 999].
	ErrIDOutOfRange = errors.New("id must be a three-digit number")
	// Ошибка отсутствующего имени товара.
	ErrProductNameRequired = errors.New("product name is required")
	// Ошибка отсутствующей ссылки на клиента в заказе.
	ErrCustomerRequired = errors.New("customer_id is required")
	// Ошибка отсутствующей ссылки на товар в заказе.
	ErrProductRequired = errors.New("product_id is required")
	// Ошибка отсутствующей даты заказа.
	ErrOrderDateRequired = errors.New("order_date is required")
	// Ошибка отсутствующего адреса доставки.
	ErrAddressRequired = errors.New("order address is required")
	// Ошибка отсутствующего email учётной записи.
	ErrEmailRequired = errors.New("email is required")
	// Ошибка отсутствующего хэша пароля.
	ErrPasswordHashRequired = errors.New("password hash is required")

	// ErrValidation агрегирует замечания Validate при отказе записи.
	ErrValidation = errors.New("validation failed")
	// ErrKeysRequired возвращается хранилищем, если партиция или row key пусты.
	ErrKeysRequired = errors.New("partition key and row key must be set")
	// ErrKeyExists — атомарный отказ strict-insert: ключ уже занят.
	ErrKeyExists = errors.New("record with the same key already exists")
	// ErrNotFound сигнализирует отсутствие записи; для сервисов это
	// штатный исход, а не сбой.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID — нарушение уникальности натурального идентификатора.
	ErrDuplicateID = errors.New("entity with this id already exists")
	// ErrBlobExists — конфликт имени в blob store.
	ErrBlobExists = errors.New("a blob with the same name already exists")

	// ErrUserExists — учётная запись с таким email уже зарегистрирована.
	ErrUserExists = errors.New("user with this email already exists")
	// ErrInvalidCredentials — неверная пара email/пароль.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrPasswordTooShort — пароль короче минимальной длины.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	// ErrSessionNotFound — сессия отсутствует или истекла.
	ErrSessionNotFound = errors.New("session not found")
)

// IsDuplicate проверяет, является ли ошибка нарушением уникальности.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateID) || errors.Is(err, ErrKeyExists)
}
