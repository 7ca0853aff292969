package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	miniogo "github.com/minio/minio-go/v7"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

// uploadsPrefix — каталог внутри бакета, куда складываются файлы обменника.
const uploadsPrefix = "uploads/"

// fileShare реализует файловый обменник back-office поверх отдельного
// бакета. В отличие от blob-хранилища повторная загрузка перезаписывает файл.
type fileShare struct {
	client *miniogo.Client
	bucket string
}

// NewFileShare возвращает файловый обменник поверх бакета bucket.
func NewFileShare(client *miniogo.Client, bucket string) domain.FileShare {
	return &fileShare{client: client, bucket: bucket}
}

func (s *fileShare) Save(ctx context.Context, name string, r io.Reader, size int64) error {
	if name == "" {
		return errors.New("file name is required")
	}
	if _, err := s.client.PutObject(ctx, s.bucket, uploadsPrefix+name, r, size, miniogo.PutObjectOptions{}); err != nil {
		return fmt.Errorf("save file %q: %w", name, err)
	}
	return nil
}

func (s *fileShare) List(ctx context.Context) ([]domain.FileInfo, error) {
	var files []domain.FileInfo
	for obj := range s.client.ListObjects(ctx, s.bucket, miniogo.ListObjectsOptions{Prefix: uploadsPrefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list files: %w", obj.Err)
		}
		files = append(files, domain.FileInfo{
			Name:         strings.TrimPrefix(obj.Key, uploadsPrefix),
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

func (s *fileShare) Delete(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("file name is required")
	}
	if err := s.client.RemoveObject(ctx, s.bucket, uploadsPrefix+name, miniogo.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete file %q: %w", name, err)
	}
	return nil
}

var _ domain.FileShare = (*fileShare)(nil)
