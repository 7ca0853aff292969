// Package product реализует сценарии каталога: карточки товаров
// и их изображения в blob-хранилище.
package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/metrics"
)

const entityName = "product"

// Service описывает сценарии каталога товаров.
type Service interface {
	// Add сохраняет товар; image может быть nil, тогда товар
	// добавляется без изображения. Занятое имя изображения
	// отклоняется с ErrBlobExists до записи карточки.
	Add(ctx context.Context, p domain.Product, image io.Reader, imageName string) (domain.Product, error)
	Get(ctx context.Context, row string) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	// Delete удаляет карточку и её изображение. Если изображение
	// удалить не удалось, карточка сохраняется и возвращается ошибка.
	Delete(ctx context.Context, row string) error
}

type service struct {
	repo     domain.ProductRepository
	blobs    domain.BlobStore
	notifier domain.Notifier
	metrics  *metrics.StoreMetrics
	logger   *log.Entry
}

// New создаёт сервис каталога. metrics может быть nil (для тестов).
func New(repo domain.ProductRepository, blobs domain.BlobStore, notifier domain.Notifier, m *metrics.StoreMetrics, logger *log.Entry) Service {
	if logger == nil {
		logger = log.New().WithField("component", "product-service")
	}
	return &service{repo: repo, blobs: blobs, notifier: notifier, metrics: m, logger: logger}
}

func (s *service) Add(ctx context.Context, p domain.Product, image io.Reader, imageName string) (domain.Product, error) {
	if errs := p.Validate(); len(errs) > 0 {
		return domain.Product{}, fmt.Errorf("%w: %w", domain.ErrValidation, errors.Join(errs...))
	}

	if image != nil {
		url, err := s.blobs.Upload(ctx, image, imageName)
		if err != nil {
			return domain.Product{}, fmt.Errorf("upload product image: %w", err)
		}
		if s.metrics != nil {
			s.metrics.RecordBlobUpload()
		}
		p.ImageRef = url
	}

	p.PartitionKey = domain.ProductsPartition
	p.RowKey = uuid.NewString()

	start := time.Now()
	err := s.repo.Insert(ctx, p)
	if s.metrics != nil {
		s.metrics.RecordWriteDuration(entityName, time.Since(start))
	}
	if err != nil {
		// Запись не состоялась: свежезагруженное изображение не должно
		// остаться сиротой в blob-хранилище.
		if image != nil && p.ImageRef != "" {
			if cleanupErr := s.blobs.Delete(ctx, p.ImageRef); cleanupErr != nil {
				s.logger.WithError(cleanupErr).WithField("image_url", p.ImageRef).
					Warn("failed to clean up orphaned product image")
			} else if s.metrics != nil {
				s.metrics.RecordBlobDelete()
			}
		}
		if errors.Is(err, domain.ErrKeyExists) {
			s.recordWrite(metrics.ResultDuplicate)
			return domain.Product{}, fmt.Errorf("product row %s: %w", p.RowKey, domain.ErrKeyExists)
		}
		s.recordWrite(metrics.ResultError)
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}
	s.recordWrite(metrics.ResultOK)

	s.notify(ctx, fmt.Sprintf("Successfully added: %s at R%s. Image URL: %s", p.Name, p.Price, p.ImageRef))

	stored, err := s.repo.Get(ctx, domain.ProductsPartition, p.RowKey)
	if err != nil {
		return domain.Product{}, fmt.Errorf("load stored product: %w", err)
	}
	return stored, nil
}

func (s *service) Get(ctx context.Context, row string) (domain.Product, error) {
	return s.repo.Get(ctx, domain.ProductsPartition, row)
}

func (s *service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, row string) error {
	p, err := s.repo.Get(ctx, domain.ProductsPartition, row)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load product for deletion: %w", err)
	}

	// Сначала изображение: если его не удалить, карточка остаётся,
	// чтобы ссылка на blob не потерялась.
	if p.ImageRef != "" {
		if err := s.blobs.Delete(ctx, p.ImageRef); err != nil {
			return fmt.Errorf("delete product image: %w", err)
		}
		if s.metrics != nil {
			s.metrics.RecordBlobDelete()
		}
	}

	if err := s.repo.Delete(ctx, domain.ProductsPartition, row); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if s.metrics != nil {
		s.metrics.RecordEntityDelete(entityName)
	}
	return nil
}

func (s *service) notify(ctx context.Context, text string) {
	if err := s.notifier.Send(ctx, text); err != nil {
		s.logger.WithError(err).WithField("text", text).Warn("notification delivery failed")
		if s.metrics != nil {
			s.metrics.RecordNotificationFailure()
		}
		return
	}
	if s.metrics != nil {
		s.metrics.RecordNotificationSent()
	}
}

func (s *service) recordWrite(result string) {
	if s.metrics != nil {
		s.metrics.RecordEntityWrite(entityName, result)
	}
}

var _ Service = (*service)(nil)
