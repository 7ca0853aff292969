package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/storage/memory"
)

func TestSessionStore_PutGetDelete(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()
	sess := domain.Session{Token: "tok-1", Email: "ops@abc.admin", Role: domain.RoleAdmin, CreatedAt: time.Now().UTC()}

	if err := store.Put(ctx, sess, time.Hour); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	stored, err := store.Get(ctx, "tok-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Email != sess.Email || stored.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session %+v", stored)
	}

	if err := store.Delete(ctx, "tok-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "tok-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()
	sess := domain.Session{Token: "tok-2", Email: "user@abc.example", Role: domain.RoleUser}

	if err := store.Put(ctx, sess, -time.Second); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if _, err := store.Get(ctx, "tok-2"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected expired session to be absent, got %v", err)
	}
}
