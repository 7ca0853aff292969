package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

// closedConsumerGroup имитирует группу, которую уже закрыли через Close:
// каждый Consume сразу возвращает ErrClosedConsumerGroup.
type closedConsumerGroup struct {
	errs chan error
}

func newClosedConsumerGroup() *closedConsumerGroup {
	errs := make(chan error)
	close(errs)
	return &closedConsumerGroup{errs: errs}
}

func (g *closedConsumerGroup) Consume(context.Context, []string, sarama.ConsumerGroupHandler) error {
	return sarama.ErrClosedConsumerGroup
}

func (g *closedConsumerGroup) Errors() <-chan error { return g.errs }

func (g *closedConsumerGroup) Close() error { return nil }

func (g *closedConsumerGroup) Pause(map[string][]int32)  {}
func (g *closedConsumerGroup) Resume(map[string][]int32) {}
func (g *closedConsumerGroup) PauseAll()                 {}
func (g *closedConsumerGroup) ResumeAll()                {}

// Stop должен завершаться, даже если контекст ещё не отменён:
// закрытая группа останавливает consume-цикл сама по себе.
func TestConsumerStopBeforeContextCancel(t *testing.T) {
	t.Parallel()

	c := &Consumer{
		consumer: newClosedConsumerGroup(),
		topics:   []string{TopicNotifications},
		handler:  func(context.Context, *sarama.ConsumerMessage) error { return nil },
		logger:   log.WithField("component", "kafka-consumer"),
	}

	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- c.Stop() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("stop failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return: consume loop keeps spinning after the group is closed")
	}
}
