package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics содержит метрики операций хранилища и уведомлений.
type StoreMetrics struct {
	// Счётчики записей по сущностям
	entityWrites  *prometheus.CounterVec
	entityDeletes *prometheus.CounterVec

	// Счётчики уведомлений
	notificationsSent    prometheus.Counter
	notificationFailures prometheus.Counter

	// Счётчики blob-хранилища
	blobUploads prometheus.Counter
	blobDeletes prometheus.Counter

	// Гистограмма времени записи
	writeDuration *prometheus.HistogramVec
}

// Результаты операции записи.
const (
	ResultOK        = "ok"
	ResultDuplicate = "duplicate"
	ResultError     = "error"
)

// NewStoreMetrics создаёт метрики в составе default registry.
func NewStoreMetrics() *StoreMetrics {
	return newStoreMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newStoreMetricsWithRegisterer(registerer prometheus.Registerer) *StoreMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &StoreMetrics{
		entityWrites: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "retail_entity_writes_total",
			Help: "Total number of entity write attempts by entity and result",
		}, []string{"entity", "result"}),
		entityDeletes: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "retail_entity_deletes_total",
			Help: "Total number of entity deletions by entity",
		}, []string{"entity"}),
		notificationsSent: registerCounter(registerer, prometheus.CounterOpts{
			Name: "retail_notifications_sent_total",
			Help: "Total number of notifications published",
		}),
		notificationFailures: registerCounter(registerer, prometheus.CounterOpts{
			Name: "retail_notification_failures_total",
			Help: "Total number of notification publish failures (non-fatal)",
		}),
		blobUploads: registerCounter(registerer, prometheus.CounterOpts{
			Name: "retail_blob_uploads_total",
			Help: "Total number of blob uploads",
		}),
		blobDeletes: registerCounter(registerer, prometheus.CounterOpts{
			Name: "retail_blob_deletes_total",
			Help: "Total number of blob deletions",
		}),
		writeDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "retail_entity_write_duration_seconds",
			Help:    "Duration of entity write operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"entity"}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordEntityWrite фиксирует попытку записи сущности и её исход.
func (m *StoreMetrics) RecordEntityWrite(entity, result string) {
	m.entityWrites.WithLabelValues(entity, result).Inc()
}

// RecordEntityDelete фиксирует удаление сущности.
func (m *StoreMetrics) RecordEntityDelete(entity string) {
	m.entityDeletes.WithLabelValues(entity).Inc()
}

// RecordNotificationSent увеличивает счётчик отправленных уведомлений.
func (m *StoreMetrics) RecordNotificationSent() {
	m.notificationsSent.Inc()
}

// RecordNotificationFailure увеличивает счётчик неудачных отправок.
func (m *StoreMetrics) RecordNotificationFailure() {
	m.notificationFailures.Inc()
}

// RecordBlobUpload увеличивает счётчик загруженных blob-объектов.
func (m *StoreMetrics) RecordBlobUpload() {
	m.blobUploads.Inc()
}

// RecordBlobDelete увеличивает счётчик удалённых blob-объектов.
func (m *StoreMetrics) RecordBlobDelete() {
	m.blobDeletes.Inc()
}

// RecordWriteDuration записывает время операции записи.
func (m *StoreMetrics) RecordWriteDuration(entity string, duration time.Duration) {
	m.writeDuration.WithLabelValues(entity).Observe(duration.Seconds())
}
