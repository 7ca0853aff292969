package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
)

func TestParseNotification(t *testing.T) {
	t.Parallel()

	sent := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	payload, err := json.Marshal(Notification{
		Message: "New Customer Added with name Ana",
		Source:  "retail-server",
		SentAt:  sent,
	})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}

	event, err := ParseNotification(&sarama.ConsumerMessage{
		Topic: TopicNotifications,
		Value: payload,
	})
	if err != nil {
		t.Fatalf("ParseNotification failed: %v", err)
	}
	if event.Message != "New Customer Added with name Ana" {
		t.Fatalf("unexpected message: %q", event.Message)
	}
	if event.Source != "retail-server" {
		t.Fatalf("unexpected source: %q", event.Source)
	}
	if !event.SentAt.Equal(sent) {
		t.Fatalf("unexpected sent_at: %v", event.SentAt)
	}
}

func TestParseNotification_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseNotification(&sarama.ConsumerMessage{
		Topic: TopicNotifications,
		Value: []byte("{not json"),
	})
	if err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
