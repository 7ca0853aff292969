package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"

	miniogo "github.com/minio/minio-go/v7"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

// blobStore хранит изображения товаров в выделенном бакете.
// Upload отказывает при совпадении имени, существующий объект не трогается.
type blobStore struct {
	client *miniogo.Client
	bucket string
}

// NewBlobStore возвращает blob-хранилище поверх бакета bucket.
func NewBlobStore(client *miniogo.Client, bucket string) domain.BlobStore {
	return &blobStore{client: client, bucket: bucket}
}

func (s *blobStore) Upload(ctx context.Context, r io.Reader, name string) (string, error) {
	if name == "" {
		return "", errors.New("blob name is required")
	}

	_, err := s.client.StatObject(ctx, s.bucket, name, miniogo.StatObjectOptions{})
	switch {
	case err == nil:
		return "", domain.ErrBlobExists
	case miniogo.ToErrorResponse(err).Code != "NoSuchKey":
		return "", fmt.Errorf("stat blob %q: %w", name, err)
	}

	if _, err := s.client.PutObject(ctx, s.bucket, name, r, -1, miniogo.PutObjectOptions{}); err != nil {
		return "", fmt.Errorf("upload blob %q: %w", name, err)
	}
	return s.blobURL(name), nil
}

func (s *blobStore) Delete(ctx context.Context, blobURL string) error {
	name, err := blobNameFromURL(blobURL)
	if err != nil {
		return err
	}
	// RemoveObject не возвращает ошибку для отсутствующего объекта,
	// поэтому удаление идемпотентно.
	if err := s.client.RemoveObject(ctx, s.bucket, name, miniogo.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete blob %q: %w", name, err)
	}
	return nil
}

func (s *blobStore) blobURL(name string) string {
	endpoint := s.client.EndpointURL()
	return fmt.Sprintf("%s://%s/%s/%s", endpoint.Scheme, endpoint.Host, s.bucket, name)
}

// blobNameFromURL извлекает имя объекта: последний сегмент пути URL.
func blobNameFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse blob url %q: %w", raw, err)
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("blob url %q has no object name", raw)
	}
	return name, nil
}

var _ domain.BlobStore = (*blobStore)(nil)
