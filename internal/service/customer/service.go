// Package customer реализует сценарии работы с клиентами.
package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/metrics"
)

const entityName = "customer"

// Service описывает сценарии работы с клиентами.
type Service interface {
	// Register сохраняет нового клиента. Повторный ID отклоняется
	// с ErrDuplicateID без изменения данных.
	Register(ctx context.Context, c domain.Customer) (domain.Customer, error)
	Get(ctx context.Context, row string) (domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Delete(ctx context.Context, row string) error
}

type service struct {
	repo     domain.CustomerRepository
	notifier domain.Notifier
	metrics  *metrics.StoreMetrics
	logger   *log.Entry
}

// New создаёт сервис клиентов. metrics может быть nil (для тестов).
func New(repo domain.CustomerRepository, notifier domain.Notifier, m *metrics.StoreMetrics, logger *log.Entry) Service {
	if logger == nil {
		logger = log.New().WithField("component", "customer-service")
	}
	return &service{repo: repo, notifier: notifier, metrics: m, logger: logger}
}

func (s *service) Register(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if errs := c.Validate(); len(errs) > 0 {
		return domain.Customer{}, fmt.Errorf("%w: %w", domain.ErrValidation, errors.Join(errs...))
	}
	c.SetKeys()

	start := time.Now()
	err := s.repo.Insert(ctx, c)
	if s.metrics != nil {
		s.metrics.RecordWriteDuration(entityName, time.Since(start))
	}
	if err != nil {
		if errors.Is(err, domain.ErrKeyExists) {
			s.recordWrite(metrics.ResultDuplicate)
			return domain.Customer{}, fmt.Errorf("customer %d: %w", c.ID, domain.ErrDuplicateID)
		}
		s.recordWrite(metrics.ResultError)
		return domain.Customer{}, fmt.Errorf("insert customer: %w", err)
	}
	s.recordWrite(metrics.ResultOK)

	s.notify(ctx, fmt.Sprintf("New Customer Added with name %s", c.Name))

	stored, err := s.repo.Get(ctx, domain.CustomersPartition, c.RowKey)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("load stored customer: %w", err)
	}
	return stored, nil
}

func (s *service) Get(ctx context.Context, row string) (domain.Customer, error) {
	return s.repo.Get(ctx, domain.CustomersPartition, row)
}

func (s *service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, row string) error {
	if err := s.repo.Delete(ctx, domain.CustomersPartition, row); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if s.metrics != nil {
		s.metrics.RecordEntityDelete(entityName)
	}
	return nil
}

// notify отправляет уведомление. Отказ отправки не считается ошибкой
// операции: запись уже сохранена, теряется только оповещение.
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
