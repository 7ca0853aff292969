package memory_test

import (
	"context"
	"strings"
	"testing"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/storage/memory"
)

func TestFileShare_SaveListDelete(t *testing.T) {
	share := memory.NewFileShare()
	ctx := context.Background()

	if err := share.Save(ctx, "contract.pdf", strings.NewReader("pdf-bytes"), 9); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := share.Save(ctx, "avatar.png", strings.NewReader("png"), 3); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	files, err := share.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Name != "avatar.png" || files[1].Name != "contract.pdf" {
		t.Fatalf("expected sorted names, got %v", files)
	}
	if files[1].Size != 9 {
		t.Fatalf("expected size 9, got %d", files[1].Size)
	}

	if err := share.Delete(ctx, "contract.pdf"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := share.Delete(ctx, "contract.pdf"); err != nil {
		t.Fatalf("second delete must not fail: %v", err)
	}
}

func TestFileShare_SaveRequiresName(t *testing.T) {
	share := memory.NewFileShare()

	if err := share.Save(context.Background(), "", strings.NewReader("x"), 1); err == nil {
		t.Fatal("expected error for empty file name")
	}
}
