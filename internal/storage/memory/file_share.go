package memory

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

type fileEntry struct {
	data     []byte
	modified time.Time
}

// fileShareInMemory — in-memory реализация файлового хранилища.
type fileShareInMemory struct {
	mu    sync.RWMutex
	files map[string]fileEntry
}

// NewFileShare возвращает in-memory file share.
func NewFileShare() domain.FileShare {
	return &fileShareInMemory{
		files: make(map[string]fileEntry),
	}
}

// Save записывает файл, перезаписывая существующий с тем же именем.
func (s *fileShareInMemory) Save(_ context.Context, name string, r io.Reader, _ int64) error {
	if name == "" {
		return fmt.Errorf("file name must not be empty")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read file content: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[name] = fileEntry{data: data, modified: time.Now().UTC()}
	return nil
}

// List возвращает файлы, отсортированные по имени.
func (s *fileShareInMemory) List(_ context.Context) ([]domain.FileInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.FileInfo, 0, len(s.files))
	for name, entry := range s.files {
		result = append(result, domain.FileInfo{
			Name:         name,
			Size:         int64(len(entry.data)),
			LastModified: entry.modified,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Delete идемпотентен.
func (s *fileShareInMemory) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.files, name)
	return nil
}

var _ domain.FileShare = (*fileShareInMemory)(nil)
