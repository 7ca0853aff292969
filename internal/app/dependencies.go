package app

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/storage/memory"
	storageminio "github.com/vladislavdragonenkov/retail-backoffice/internal/storage/minio"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/storage/postgres"
	storageredis "github.com/vladislavdragonenkov/retail-backoffice/internal/storage/redis"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Customers domain.CustomerRepository
	Products  domain.ProductRepository
	Orders    domain.OrderRepository
	Users     domain.UserRepository
	Blobs     domain.BlobStore
	Files     domain.FileShare
	Sessions  domain.SessionStore
	Notifier  domain.Notifier
	Logger    *log.Entry

	// Ненулевые только при настроенных внешних системах.
	Store    *postgres.Store
	Redis    *goredis.Client
	Producer *kafka.Producer
}

// logNotifier — fallback, когда Kafka не настроен: уведомления
// попадают только в лог.
type logNotifier struct {
	logger *log.Entry
}

func (n logNotifier) Send(_ context.Context, text string) error {
	n.logger.WithField("text", text).Info("notification")
	return nil
}

// NewDependencies создаёт зависимости приложения. Каждая внешняя
// система опциональна: при пустом адресе используется in-memory
// реализация.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	deps := &Dependencies{Logger: logger}

	if cfg.PostgresDSN != "" {
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		deps.Store = store
		deps.Customers = postgres.NewCustomerRepository(store)
		deps.Products = postgres.NewProductRepository(store)
		deps.Orders = postgres.NewOrderRepository(store)
		deps.Users = postgres.NewUserRepository(store)
		logger.Info("postgres storage initialized")
	} else {
		deps.Customers = memory.NewCustomerRepository()
		deps.Products = memory.NewProductRepository()
		deps.Orders = memory.NewOrderRepository()
		deps.Users = memory.NewUserRepository()
		logger.Warn("postgres is not configured, using in-memory storage")
	}

	if cfg.RedisAddr != "" {
		client, err := storageredis.Dial(ctx, cfg.RedisAddr)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		deps.Redis = client
		deps.Sessions = storageredis.NewSessionStore(client)
		logger.Info("redis session store initialized")
	} else {
		deps.Sessions = memory.NewSessionStore()
		logger.Warn("redis is not configured, using in-memory sessions")
	}

	if cfg.MinioEndpoint != "" {
		client, err := storageminio.Dial(ctx, storageminio.Config{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("connect object store: %w", err)
		}
		for _, bucket := range []string{cfg.BlobBucket, cfg.FilesBucket} {
			if err := storageminio.EnsureBucket(ctx, client, bucket); err != nil {
				deps.Close()
				return nil, err
			}
		}
		deps.Blobs = storageminio.NewBlobStore(client, cfg.BlobBucket)
		deps.Files = storageminio.NewFileShare(client, cfg.FilesBucket)
		logger.Info("object store initialized")
	} else {
		deps.Blobs = memory.NewBlobStore()
		deps.Files = memory.NewFileShare()
		logger.Warn("object store is not configured, using in-memory blobs")
	}

	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			// Уведомления некритичны: продолжаем без Kafka.
			logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		} else {
			deps.Producer = producer
			deps.Notifier = kafka.NewNotifier(producer, "retail-server")
			logger.WithField("brokers", cfg.KafkaBrokers).Info("kafka producer initialized")
		}
	}
	if deps.Notifier == nil {
		deps.Notifier = logNotifier{logger: logger.WithField("component", "notifier")}
		logger.Warn("kafka is not configured, notifications go to the log only")
	}

	return deps, nil
}

// Close освобождает внешние соединения в обратном порядке инициализации.
func (d *Dependencies) Close() {
	if d.Producer != nil {
		if err := d.Producer.Close(); err != nil {
			d.Logger.WithError(err).Warn("failed to close kafka producer")
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.WithError(err).Warn("failed to close redis client")
		}
	}
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.WithError(err).Warn("failed to close postgres store")
		}
	}
}
