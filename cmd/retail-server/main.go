package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/app"
)

// setupLogger настраивает формат и уровень логирования для сервиса.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
}

// readConfig формирует конфигурацию приложения, позволяя переопределить
// значения через переменные окружения RETAIL_*.
func readConfig() app.Config {
	cfg := app.DefaultConfig()
	if v := os.Getenv("RETAIL_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("RETAIL_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("RETAIL_POSTGRES_DSN"); v != "" {
		cfg.PostgresDSN = v
	}
	if v := os.Getenv("RETAIL_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = strings.Split(v, ",")
	}
	if v := os.Getenv("RETAIL_MINIO_ENDPOINT"); v != "" {
		cfg.MinioEndpoint = v
		cfg.MinioAccessKey = os.Getenv("RETAIL_MINIO_ACCESS_KEY")
		cfg.MinioSecretKey = os.Getenv("RETAIL_MINIO_SECRET_KEY")
		cfg.MinioUseSSL = os.Getenv("RETAIL_MINIO_USE_SSL") == "true"
	}
	if v := os.Getenv("RETAIL_BLOB_BUCKET"); v != "" {
		cfg.BlobBucket = v
	}
	if v := os.Getenv("RETAIL_FILES_BUCKET"); v != "" {
		cfg.FilesBucket = v
	}
	if v := os.Getenv("RETAIL_SESSION_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil && ttl > 0 {
			cfg.SessionTTL = ttl
		}
	}
	return cfg
}

func main() {
	setupLogger()
	cfg := readConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"http_addr":    cfg.HTTPAddr,
		"metrics_addr": cfg.MetricsAddr,
	}).Info("запускаем retail-server")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	log.Info("retail-server остановлен")
}
