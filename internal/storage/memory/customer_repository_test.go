package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/storage/memory"
)

func newCustomer() domain.Customer {
	c := domain.Customer{
		ID:      101,
		Name:    "Ana",
		Surname: "Petrova",
		Email:   "ana@abc.example",
		Phone:   "555-0101",
	}
	c.SetKeys()
	return c
}

func TestCustomerRepository_RoundTrip(t *testing.T) {
	repo := memory.NewCustomerRepository()
	ctx := context.Background()
	c := newCustomer()

	if err := repo.Insert(ctx, c); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	stored, err := repo.Get(ctx, domain.CustomersPartition, "101")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	// Поля round-trip: всё, кроме служебных, совпадает с записанным.
	if stored.ID != c.ID || stored.Name != c.Name || stored.Surname != c.Surname ||
		stored.Email != c.Email || stored.Phone != c.Phone {
		t.Fatalf("stored customer differs: %+v", stored)
	}
	if stored.ETag == "" || stored.LastModified.IsZero() {
		t.Fatal("expected store-assigned etag and last_modified")
	}
}

func TestCustomerRepository_InsertDuplicate(t *testing.T) {
	repo := memory.NewCustomerRepository()
	ctx := context.Background()

	if err := repo.Insert(ctx, newCustomer()); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	err := repo.Insert(ctx, newCustomer())
	if !errors.Is(err, domain.ErrKeyExists) {
		t.Fatalf("expected ErrKeyExists, got %v", err)
	}

	customers, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("expected exactly 1 record, got %d", len(customers))
	}
}

func TestCustomerRepository_InsertRequiresKeys(t *testing.T) {
	repo := memory.NewCustomerRepository()

	err := repo.Insert(context.Background(), domain.Customer{ID: 101})
	if !errors.Is(err, domain.ErrKeysRequired) {
		t.Fatalf("expected ErrKeysRequired, got %v", err)
	}
}

func TestCustomerRepository_GetMissing(t *testing.T) {
	repo := memory.NewCustomerRepository()

	_, err := repo.Get(context.Background(), domain.CustomersPartition, "999")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCustomerRepository_DeleteIdempotent(t *testing.T) {
	repo := memory.NewCustomerRepository()
	ctx := context.Background()

	if err := repo.Insert(ctx, newCustomer()); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := repo.Delete(ctx, domain.CustomersPartition, "101"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := repo.Delete(ctx, domain.CustomersPartition, "101"); err != nil {
		t.Fatalf("second delete must not fail: %v", err)
	}
}
