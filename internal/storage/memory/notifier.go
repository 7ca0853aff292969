package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

// Notifier накапливает уведомления в памяти; используется в тестах
// для проверки содержимого канала уведомлений.
type Notifier struct {
	mu       sync.Mutex
	messages []string
}

// NewNotifier возвращает in-memory notification sink.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Send добавляет сообщение в очередь.
func (n *Notifier) Send(_ context.Context, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.messages = append(n.messages, text)
	return nil
}

// Messages возвращает копию накопленных сообщений.
func (n *Notifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]string, len(n.messages))
	copy(out, n.messages)
	return out
}

var _ domain.Notifier = (*Notifier)(nil)
