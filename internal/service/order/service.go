// Package order реализует регистрацию и редактирование заказов.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/metrics"
)

const entityName = "order"

// Service описывает сценарии работы с заказами.
type Service interface {
	// Register сохраняет новый заказ; повторный ID отклоняется
	// с ErrDuplicateID.
	Register(ctx context.Context, o domain.Order) (domain.Order, error)
	// Edit перезаписывает заказ целиком; отсутствующий ключ создаётся.
	// Уведомление при редактировании не отправляется.
	Edit(ctx context.Context, o domain.Order) (domain.Order, error)
	Get(ctx context.Context, row string) (domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Delete(ctx context.Context, row string) error
}

type service struct {
	repo     domain.OrderRepository
	notifier domain.Notifier
	metrics  *metrics.StoreMetrics
	logger   *log.Entry
}

// New создаёт сервис заказов. metrics может быть nil (для тестов).
func New(repo domain.OrderRepository, notifier domain.Notifier, m *metrics.StoreMetrics, logger *log.Entry) Service {
	if logger == nil {
		logger = log.New().WithField("component", "order-service")
	}
	return &service{repo: repo, notifier: notifier, metrics: m, logger: logger}
}

func (s *service) Register(ctx context.Context, o domain.Order) (domain.Order, error) {
	if errs := o.Validate(); len(errs) > 0 {
		return domain.Order{}, fmt.Errorf("%w: %w", domain.ErrValidation, errors.Join(errs...))
	}
	o.OrderDate = o.OrderDate.UTC()
	o.SetKeys()

	start := time.Now()
	err := s.repo.Insert(ctx, o)
	if s.metrics != nil {
		s.metrics.RecordWriteDuration(entityName, time.Since(start))
	}
	if err != nil {
		if errors.Is(err, domain.ErrKeyExists) {
			s.recordWrite(metrics.ResultDuplicate)
			return domain.Order{}, fmt.Errorf("order %d: %w", o.ID, domain.ErrDuplicateID)
		}
		s.recordWrite(metrics.ResultError)
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}
	s.recordWrite(metrics.ResultOK)

	s.notify(ctx, fmt.Sprintf("New order by Customer %d for Product %d at %s on %s",
		o.CustomerID, o.ProductID, o.Address, o.OrderDate.Format(time.RFC3339)))

	stored, err := s.repo.Get(ctx, domain.OrdersPartition, o.RowKey)
	if err != nil {
		return domain.Order{}, fmt.Errorf("load stored order: %w", err)
	}
	return stored, nil
}

func (s *service) Edit(ctx context.Context, o domain.Order) (domain.Order, error) {
	if errs := o.Validate(); len(errs) > 0 {
		return domain.Order{}, fmt.Errorf("%w: %w", domain.ErrValidation, errors.Join(errs...))
	}
	o.OrderDate = o.OrderDate.UTC()
	o.SetKeys()

	start := time.Now()
	err := s.repo.Put(ctx, o)
	if s.metrics != nil {
		s.metrics.RecordWriteDuration(entityName, time.Since(start))
	}
	if err != nil {
		s.recordWrite(metrics.ResultError)
		return domain.Order{}, fmt.Errorf("put order: %w", err)
	}
	s.recordWrite(metrics.ResultOK)

	stored, err := s.repo.Get(ctx, domain.OrdersPartition, o.RowKey)
	if err != nil {
		return domain.Order{}, fmt.Errorf("load stored order: %w", err)
	}
	return stored, nil
}

func (s *service) Get(ctx context.Context, row string) (domain.Order, error) {
	return s.repo.Get(ctx, domain.OrdersPartition, row)
}

func (s *service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, row string) error {
	if err := s.repo.Delete(ctx, domain.OrdersPartition, row); err != nil {
		return fmt.Errorf("delete order: %w", err)
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
