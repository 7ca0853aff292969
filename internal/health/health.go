// Package health отдаёт состояние зависимостей сервиса по HTTP.
package health

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// Status представляет статус компонента
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// Probe проверяет одну зависимость. Возврат ошибки означает, что
// компонент нездоров; текст ошибки попадает в ответ.
type Probe func() error

// Check — результат выполнения одной пробы.
type Check struct {
	Status    Status `json:"status"`
	Message   string `json:"message,omitempty"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// Response — сводный ответ health check.
type Response struct {
	Status        Status           `json:"status"`
	CheckedAt     time.Time        `json:"checked_at"`
	Components    map[string]Check `json:"components,omitempty"`
	Version       string           `json:"version,omitempty"`
	UptimeSeconds int64            `json:"uptime_seconds"`
}

// Handler обрабатывает health check запросы
type Handler struct {
	mu        sync.RWMutex
	probes    map[string]Probe
	version   string
	startTime time.Time
}

// NewHandler создаёт новый health handler
func NewHandler(version string) *Handler {
	return &Handler{
		probes:    make(map[string]Probe),
		version:   version,
		startTime: time.Now(),
	}
}

// Register добавляет пробу под именем компонента. Повторная
// регистрация с тем же именем заменяет предыдущую пробу.
func (h *Handler) Register(name string, probe Probe) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.probes[name] = probe
}

// ServeHTTP выполняет все пробы и возвращает сводный статус.
// Любой нездоровый компонент делает весь ответ 503.
func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	components, overall := h.runProbes()

	response := Response{
		Status:        overall,
		CheckedAt:     time.Now(),
		Components:    components,
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}

	statusCode := http.StatusOK
	if overall == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

// LivenessHandler простой liveness probe (всегда возвращает 200)
func LivenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// ReadinessHandler проверяет готовность к обработке запросов
func (h *Handler) ReadinessHandler(w http.ResponseWriter, _ *http.Request) {
	if _, overall := h.runProbes(); overall == StatusUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (h *Handler) runProbes() (map[string]Check, Status) {
	h.mu.RLock()
	probes := make(map[string]Probe, len(h.probes))
	for name, probe := range h.probes {
		probes[name] = probe
	}
	h.mu.RUnlock()

	components := make(map[string]Check, len(probes))
	overall := StatusHealthy
	for name, probe := range probes {
		components[name] = runProbe(probe)
		if components[name].Status == StatusUnhealthy {
			overall = StatusUnhealthy
		}
	}
	return components, overall
}

func runProbe(probe Probe) Check {
	start := time.Now()
	err := probe()
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		return Check{Status: StatusUnhealthy, Message: err.Error(), ElapsedMs: elapsed}
	}
	return Check{Status: StatusHealthy, ElapsedMs: elapsed}
}
