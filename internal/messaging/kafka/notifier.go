package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

// TopicNotifications — топик уведомлений о событиях back-office.
const TopicNotifications = "retail.notifications"

// Notification — конверт уведомления, публикуемый в Kafka.
type Notification struct {
	Message string    `json:"message"`
	Source  string    `json:"source"`
	SentAt  time.Time `json:"sent_at"`
}

// Notifier отправляет уведомления через producer в топик уведомлений.
// Доставка не гарантируется вызывающему коду: сервисы рассматривают
// отказ отправки как некритичный.
type Notifier struct {
	producer *Producer
	source   string
}

// NewNotifier возвращает notifier, подписывающий уведомления именем source.
func NewNotifier(producer *Producer, source string) *Notifier {
	return &Notifier{producer: producer, source: source}
}

// Send публикует текстовое уведомление.
func (n *Notifier) Send(_ context.Context, text string) error {
	event := Notification{
		Message: text,
		Source:  n.source,
		SentAt:  time.Now().UTC(),
	}
	return n.producer.Publish(TopicNotifications, uuid.NewString(), event)
}

// ParseNotification разбирает конверт уведомления из сообщения Kafka.
func ParseNotification(message *sarama.ConsumerMessage) (*Notification, error) {
	var event Notification
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
	}
	return &event, nil
}

var _ domain.Notifier = (*Notifier)(nil)
