package memory

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"sync"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

// blobStoreInMemory хранит бинарные объекты в map по имени.
type blobStoreInMemory struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string
}

// NewBlobStore возвращает in-memory blob store.
func NewBlobStore() domain.BlobStore {
	return &blobStoreInMemory{
		objects: make(map[string][]byte),
		baseURL: "memory://store",
	}
}

// Upload загружает объект; занятое имя отклоняется с ErrBlobExists.
func (s *blobStoreInMemory) Upload(_ context.Context, r io.Reader, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("blob name must not be empty")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read blob content: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.objects[name]; exists {
		return "", domain.ErrBlobExists
	}
	s.objects[name] = data
	return s.baseURL + "/" + name, nil
}

// Delete удаляет объект по URL; повторное удаление не ошибка.
func (s *blobStoreInMemory) Delete(_ context.Context, rawURL string) error {
	name, err := blobNameFromURL(rawURL)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.objects, name)
	return nil
}

// blobNameFromURL извлекает имя объекта из последнего сегмента пути URL.
func blobNameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse blob url: %w", err)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("blob url %q has no object name", rawURL)
	}
	return name, nil
}

var _ domain.BlobStore = (*blobStoreInMemory)(nil)
