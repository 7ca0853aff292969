package domain

import "time"

// Имена партиций в keyed store. Ключи записей уникальны только внутри партиции.
const (
	CustomersPartition = "CustomersPartition"
	ProductsPartition  = "ProductsPartition"
	OrdersPartition    = "OrdersPartition"
	UsersPartition     = "UsersPartition"
)

// Keys адресует запись в keyed store и несёт служебные поля,
// которые хранилище присваивает при каждой успешной записи.
type Keys struct {
	PartitionKey string `json:"partition_key"`
	RowKey       string `json:"row_key"`
	// ETag — непрозрачный токен версии; обновляется хранилищем при записи,
	// значения вызывающей стороны игнорируются.
	ETag string `json:"etag,omitempty"`
	// LastModified выставляется хранилищем, read-only для вызывающих.
	LastModified time.Time `json:"last_modified,omitempty"`
}

// EntityKeys возвращает ключи записи.
func (k *Keys) EntityKeys() *Keys { return k }

// Entity — общий контракт сущностей, хранимых в keyed store.
type Entity interface {
	EntityKeys() *Keys
	// Validate проверяет инварианты сущности и возвращает список замечаний.
	Validate() []error
}
