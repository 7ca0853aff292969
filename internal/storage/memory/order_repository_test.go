package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/storage/memory"
)

func newTestOrder() domain.Order {
	o := domain.Order{
		ID:         300,
		CustomerID: 101,
		ProductID:  200,
		OrderDate:  time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
		Address:    "12 Main Road",
	}
	o.SetKeys()
	return o
}

func TestOrderRepository_InsertDuplicate(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()

	if err := repo.Insert(ctx, newTestOrder()); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := repo.Insert(ctx, newTestOrder()); !errors.Is(err, domain.ErrKeyExists) {
		t.Fatalf("expected ErrKeyExists, got %v", err)
	}
}

func TestOrderRepository_PutOverwrites(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()
	o := newTestOrder()

	if err := repo.Insert(ctx, o); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	o.Address = "7 Harbour Street"
	if err := repo.Put(ctx, o); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	stored, err := repo.Get(ctx, domain.OrdersPartition, "300")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Address != "7 Harbour Street" {
		t.Fatalf("expected overwritten address, got %q", stored.Address)
	}
}

func TestOrderRepository_PutCreatesWhenAbsent(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()

	if err := repo.Put(ctx, newTestOrder()); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if _, err := repo.Get(ctx, domain.OrdersPartition, "300"); err != nil {
		t.Fatalf("get after put failed: %v", err)
	}
}

func TestOrderRepository_RoundTrip(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()
	o := newTestOrder()

	if err := repo.Insert(ctx, o); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	stored, err := repo.Get(ctx, domain.OrdersPartition, "300")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.ID != o.ID || stored.CustomerID != o.CustomerID || stored.ProductID != o.ProductID ||
		!stored.OrderDate.Equal(o.OrderDate) || stored.Address != o.Address {
		t.Fatalf("stored order differs: %+v", stored)
	}
}

func TestOrderRepository_DeleteIdempotent(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()

	if err := repo.Delete(ctx, domain.OrdersPartition, "300"); err != nil {
		t.Fatalf("delete of missing order must not fail: %v", err)
	}
}
