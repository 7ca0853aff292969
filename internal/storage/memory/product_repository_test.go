package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/storage/memory"
)

func newProduct() domain.Product {
	p := domain.Product{
		ID:          200,
		Name:        "Widget",
		Description: "A very useful widget",
		Price:       "9.99",
		Category:    "tools",
		ImageRef:    "memory://store/widget.png",
	}
	p.PartitionKey = domain.ProductsPartition
	p.RowKey = "row-widget"
	return p
}

func TestProductRepository_RoundTrip(t *testing.T) {
	repo := memory.NewProductRepository()
	ctx := context.Background()
	p := newProduct()

	if err := repo.Insert(ctx, p); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	stored, err := repo.Get(ctx, domain.ProductsPartition, "row-widget")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	// Поля round-trip: всё, кроме служебных, совпадает с записанным.
	if stored.ID != p.ID || stored.Name != p.Name || stored.Description != p.Description ||
		stored.Price != p.Price || stored.Category != p.Category || stored.ImageRef != p.ImageRef {
		t.Fatalf("stored product differs: %+v", stored)
	}
	if stored.ETag == "" || stored.LastModified.IsZero() {
		t.Fatal("expected store-assigned etag and last_modified")
	}
}

func TestProductRepository_InsertDuplicate(t *testing.T) {
	repo := memory.NewProductRepository()
	ctx := context.Background()

	if err := repo.Insert(ctx, newProduct()); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	err := repo.Insert(ctx, newProduct())
	if !errors.Is(err, domain.ErrKeyExists) {
		t.Fatalf("expected ErrKeyExists, got %v", err)
	}

	products, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected exactly 1 record, got %d", len(products))
	}
}

func TestProductRepository_InsertRequiresKeys(t *testing.T) {
	repo := memory.NewProductRepository()

	err := repo.Insert(context.Background(), domain.Product{ID: 200})
	if !errors.Is(err, domain.ErrKeysRequired) {
		t.Fatalf("expected ErrKeysRequired, got %v", err)
	}
}

func TestProductRepository_GetMissing(t *testing.T) {
	repo := memory.NewProductRepository()

	_, err := repo.Get(context.Background(), domain.ProductsPartition, "row-missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductRepository_DeleteIdempotent(t *testing.T) {
	repo := memory.NewProductRepository()
	ctx := context.Background()

	if err := repo.Insert(ctx, newProduct()); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := repo.Delete(ctx, domain.ProductsPartition, "row-widget"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := repo.Delete(ctx, domain.ProductsPartition, "row-widget"); err != nil {
		t.Fatalf("second delete must not fail: %v", err)
	}
}
