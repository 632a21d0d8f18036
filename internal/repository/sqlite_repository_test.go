package repository

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"inventory-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) *SQLiteInventoryRepository {
	t.Helper()

	repo, err := NewSQLiteInventoryRepository(filepath.Join(t.TempDir(), "inventory.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func TestCreateItem_AssignsIncreasingIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.CreateItem(ctx, "Hammer", 15, 18.50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ItemID)
	assert.Equal(t, "Hammer", first.Name)

	second, err := repo.CreateItem(ctx, "Screwdriver", 50, 4.99)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ItemID)
	assert.Greater(t, second.ItemID, first.ItemID)
}

func TestCreateItem_TrimsName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item, err := repo.CreateItem(ctx, "  Laptop  ", 3, 999.99)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", item.Name)

	stored, err := repo.GetItem(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", stored.Name)
}

func TestCreateItem_DuplicateNamesAllowed(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.CreateItem(ctx, "Hammer", 1, 1.0)
	require.NoError(t, err)
	second, err := repo.CreateItem(ctx, "Hammer", 2, 2.0)
	require.NoError(t, err)

	assert.NotEqual(t, first.ItemID, second.ItemID)
}

func TestCreateItem_ValidationError_NoWrite(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		itemName string
		quantity int
		price    float64
		field    string
	}{
		{"empty name", "   ", 1, 1.0, "name"},
		{"name too long", strings.Repeat("x", models.MaxNameLength+1), 1, 1.0, "name"},
		{"negative quantity", "Widget", -1, 1.0, "quantity"},
		{"quantity over max", "Widget", models.MaxQuantity + 1, 1.0, "quantity"},
		{"negative price", "Widget", 1, -0.01, "price"},
		{"price over max", "Widget", 1, models.MaxPrice + 1, "price"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := repo.CreateItem(ctx, tc.itemName, tc.quantity, tc.price)

			var valErr *models.ValidationError
			assert.ErrorAs(t, err, &valErr)
			assert.Equal(t, tc.field, valErr.Field)
		})
	}

	// Nothing persisted
	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetItem_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateItem(ctx, "Hammer", 15, 18.50)
	require.NoError(t, err)

	got, err := repo.GetItem(ctx, created.ItemID)
	require.NoError(t, err)
	assert.Equal(t, created.ItemID, got.ItemID)
	assert.Equal(t, "Hammer", got.Name)
	assert.Equal(t, 15, got.Quantity)
	assert.Equal(t, 18.50, got.Price)
}

func TestGetItem_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetItem(context.Background(), 42)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestListItems_EmptyStore(t *testing.T) {
	repo := newTestRepo(t)

	items, err := repo.ListItems(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestUpdateItem_PartialPriceOnly(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateItem(ctx, "Hammer", 15, 18.50)
	require.NoError(t, err)

	updated, err := repo.UpdateItem(ctx, created.ItemID, ItemUpdate{Price: floatPtr(21.99)})
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := repo.GetItem(ctx, created.ItemID)
	require.NoError(t, err)
	assert.Equal(t, "Hammer", got.Name)
	assert.Equal(t, 15, got.Quantity)
	assert.Equal(t, 21.99, got.Price)
}

func TestUpdateItem_AllFields(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateItem(ctx, "Hammer", 15, 18.50)
	require.NoError(t, err)

	updated, err := repo.UpdateItem(ctx, created.ItemID, ItemUpdate{
		Name:     strPtr("  Claw Hammer  "),
		Quantity: intPtr(20),
		Price:    floatPtr(21.99),
	})
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := repo.GetItem(ctx, created.ItemID)
	require.NoError(t, err)
	assert.Equal(t, "Claw Hammer", got.Name)
	assert.Equal(t, 20, got.Quantity)
	assert.Equal(t, 21.99, got.Price)
}

func TestUpdateItem_NonexistentID(t *testing.T) {
	repo := newTestRepo(t)

	updated, err := repo.UpdateItem(context.Background(), 42, ItemUpdate{Quantity: intPtr(5)})
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestUpdateItem_NoFieldsIsNoOp(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateItem(ctx, "Hammer", 15, 18.50)
	require.NoError(t, err)

	updated, err := repo.UpdateItem(ctx, created.ItemID, ItemUpdate{})
	require.NoError(t, err)
	assert.False(t, updated)

	got, err := repo.GetItem(ctx, created.ItemID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Quantity)
	assert.Equal(t, 18.50, got.Price)
}

func TestUpdateItem_ValidationError_NoWrite(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateItem(ctx, "Hammer", 15, 18.50)
	require.NoError(t, err)

	_, err = repo.UpdateItem(ctx, created.ItemID, ItemUpdate{
		Quantity: intPtr(20),
		Price:    floatPtr(-1.0),
	})

	var valErr *models.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Equal(t, "price", valErr.Field)

	// The invalid update must not have applied any field
	got, err := repo.GetItem(ctx, created.ItemID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Quantity)
	assert.Equal(t, 18.50, got.Price)
}

func TestDeleteItem(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateItem(ctx, "Hammer", 15, 18.50)
	require.NoError(t, err)

	deleted, err := repo.DeleteItem(ctx, created.ItemID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetItem(ctx, created.ItemID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestDeleteItem_Nonexistent(t *testing.T) {
	repo := newTestRepo(t)

	deleted, err := repo.DeleteItem(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCreateListDelete_Scenario(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	hammer, err := repo.CreateItem(ctx, "Hammer", 15, 18.50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), hammer.ItemID)
	assert.Equal(t, "Hammer", hammer.Name)

	screwdriver, err := repo.CreateItem(ctx, "Screwdriver", 50, 4.99)
	require.NoError(t, err)
	assert.Equal(t, int64(2), screwdriver.ItemID)

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Hammer", items[0].Name)
	assert.Equal(t, "Screwdriver", items[1].Name)

	deleted, err := repo.DeleteItem(ctx, hammer.ItemID)
	require.NoError(t, err)
	assert.True(t, deleted)

	items, err = repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ItemID)
}

func TestSchemaInit_IdempotentAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.db")
	ctx := context.Background()

	repo, err := NewSQLiteInventoryRepository(path, zap.NewNop())
	require.NoError(t, err)

	_, err = repo.CreateItem(ctx, "Hammer", 15, 18.50)
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	// Reopening must not clobber existing data
	repo, err = NewSQLiteInventoryRepository(path, zap.NewNop())
	require.NoError(t, err)
	defer repo.Close()

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Hammer", items[0].Name)

	// IDs keep increasing across restarts
	next, err := repo.CreateItem(ctx, "Screwdriver", 50, 4.99)
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ItemID)
}
