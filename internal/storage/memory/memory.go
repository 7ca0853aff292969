// Package memory содержит in-memory реализации портов хранения для
// локальной разработки и тестов.
package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

// recordKey строит ключ map по адресу записи.
func recordKey(partition, row string) string {
	return partition + "/" + row
}

// stampKeys проверяет адрес записи и присваивает служебные поля,
// которые в backing store выставляет само хранилище.
func stampKeys(k *domain.Keys) error {
	if k.PartitionKey == "" || k.RowKey == "" {
		return domain.ErrKeysRequired
	}
	k.ETag = uuid.NewString()
	k.LastModified = time.Now().UTC()
	return nil
}
