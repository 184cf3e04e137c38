package categorystore_test

import (
	"errors"
	"testing"

	categorystore "github.com/dalemusser/mlhub/internal/app/store/categories"
	"github.com/dalemusser/mlhub/internal/app/system/indexes"
	"github.com/dalemusser/mlhub/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func TestStore_ReplaceAllAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := categorystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.ReplaceAll(ctx, testutil.SampleCategories()); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if diff := cmp.Diff(testutil.SampleCategories(), got); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 8 {
		t.Errorf("Count = %d, want 8", n)
	}
}

func TestStore_ReplaceAll_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	store := categorystore.New(db)

	cats := testutil.SampleCategories()[:2]
	cats[1].Name = cats[0].Name
	if err := store.ReplaceAll(ctx, cats); !errors.Is(err, categorystore.ErrDuplicateCategory) {
		t.Errorf("err = %v, want ErrDuplicateCategory", err)
	}
}
