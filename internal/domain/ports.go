package domain

import (
	"context"
	"io"
	"time"
)

// BlobStore хранит бинарные объекты (изображения товаров) по имени.
type BlobStore interface {
	// Upload загружает объект и возвращает его URL.
	// Возвращает ErrBlobExists, если имя уже занято: проверка существования
	// предшествует записи.
	Upload(ctx context.Context, r io.Reader, name string) (string, error)
	// Delete удаляет объект, определяя имя по последнему сегменту URL.
	// Повторное удаление не считается ошибкой.
	Delete(ctx context.Context, url string) error
}

// Notifier отправляет человекочитаемое уведомление после успешной записи.
// Доставка best-effort: сервисы логируют ошибку отправки и продолжают
// работу, запись при этом считается успешной.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// FileInfo описывает файл в файловом хранилище.
type FileInfo struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// FileShare принимает загрузки file relay и отдаёт их список.
type FileShare interface {
	Save(ctx context.Context, name string, r io.Reader, size int64) error
	List(ctx context.Context) ([]FileInfo, error)
	// Delete идемпотентен.
	Delete(ctx context.Context, name string) error
}

// Role — роль учётной записи. Вычисляется один раз при создании сессии,
// а не пересчитывается на каждый запрос.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Session — аутентифицированная сессия пользователя.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore хранит активные сессии с ограниченным временем жизни.
type SessionStore interface {
	Put(ctx context.Context, s Session, ttl time.Duration) error
	// Get возвращает сессию или ErrSessionNotFound, если токен неизвестен
	// либо срок жизни истёк.
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}
