package repository

import (
	"context"
	"errors"

	"inventory-service/internal/models"
)

// ErrItemNotFound is returned when no row matches the requested item_id.
var ErrItemNotFound = errors.New("item not found")

// ItemUpdate carries the fields of a partial update. Nil fields are left
// unchanged. The set of updatable columns is closed: exactly these three.
type ItemUpdate struct {
	Name     *string
	Quantity *int
	Price    *float64
}

// Empty reports whether the update carries no fields at all.
func (u ItemUpdate) Empty() bool {
	return u.Name == nil && u.Quantity == nil && u.Price == nil
}

// InventoryRepository defines the interface for inventory persistence.
type InventoryRepository interface {
	// CreateItem validates and persists a new item, returning it with the
	// database-assigned item_id.
	CreateItem(ctx context.Context, name string, quantity int, price float64) (*models.InventoryItem, error)

	// ListItems returns the full collection in insertion order. It returns
	// an empty slice, never nil, when the store is empty.
	ListItems(ctx context.Context) ([]models.InventoryItem, error)

	// GetItem returns the item with the given id, or ErrItemNotFound.
	GetItem(ctx context.Context, itemID int64) (*models.InventoryItem, error)

	// UpdateItem applies the non-nil fields of update to the item in one
	// atomic write. It returns false when the item does not exist or when
	// the update carries no fields (a no-op, not an error).
	UpdateItem(ctx context.Context, itemID int64, update ItemUpdate) (bool, error)

	// DeleteItem removes the item, returning true iff a row was removed.
	DeleteItem(ctx context.Context, itemID int64) (bool, error)

	Close() error
}
