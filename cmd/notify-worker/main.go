// notify-worker читает топик уведомлений и выводит их в лог.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/messaging/kafka"
)

const consumerGroup = "retail-notify-worker"

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)

	brokersEnv := os.Getenv("KAFKA_BROKERS")
	if brokersEnv == "" {
		log.Fatal("KAFKA_BROKERS is required")
	}
	brokers := strings.Split(brokersEnv, ",")

	logger := log.WithField("component", "notify-worker")

	handler := func(_ context.Context, message *sarama.ConsumerMessage) error {
		notification, err := kafka.ParseNotification(message)
		if err != nil {
			logger.WithError(err).Warn("skipping malformed notification")
			return err
		}
		logger.WithFields(log.Fields{
			"source":  notification.Source,
			"sent_at": notification.SentAt,
		}).Info(notification.Message)
		return nil
	}

	consumer, err := kafka.NewConsumer(brokers, consumerGroup, []string{kafka.TopicNotifications}, handler)
	if err != nil {
		log.WithError(err).Fatal("failed to create kafka consumer")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		log.WithError(err).Fatal("failed to start kafka consumer")
	}

	<-ctx.Done()
	if err := consumer.Stop(); err != nil {
		log.WithError(err).Warn("consumer stopped with error")
	}
	log.Info("notify-worker остановлен")
}
