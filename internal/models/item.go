package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Validation limits for inventory items
const (
	MaxNameLength = 255
	MinQuantity   = 0
	MaxQuantity   = 1_000_000
	MinPrice      = 0.0
	MaxPrice      = 1_000_000.0
)

// InventoryItem represents a single inventory item.
// ItemID is assigned by the database on creation; it is zero for items
// that have not been persisted yet.
type InventoryItem struct {
	ItemID    int64      `json:"item_id"`
	Name      string     `json:"name"`
	Quantity  int        `json:"quantity"`
	Price     float64    `json:"price"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// NewItem creates a validated inventory item. Every code path that can
// persist an item goes through this constructor.
func NewItem(name string, quantity int, price float64) (*InventoryItem, error) {
	cleanName, err := ValidateName(name)
	if err != nil {
		return nil, err
	}
	if err := ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := ValidatePrice(price); err != nil {
		return nil, err
	}

	return &InventoryItem{
		Name:     cleanName,
		Quantity: quantity,
		Price:    price,
	}, nil
}

// ToMap converts the item into a field mapping for API responses.
// Unassigned ID and timestamps serialize as null.
func (i *InventoryItem) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"item_id":    nil,
		"name":       i.Name,
		"quantity":   i.Quantity,
		"price":      i.Price,
		"created_at": nil,
		"updated_at": nil,
	}
	if i.ItemID != 0 {
		m["item_id"] = i.ItemID
	}
	if i.CreatedAt != nil {
		m["created_at"] = i.CreatedAt
	}
	if i.UpdatedAt != nil {
		m["updated_at"] = i.UpdatedAt
	}
	return m
}

// ValidateName validates an item name and returns it with surrounding
// whitespace trimmed.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Field: "name", Message: "name cannot be empty"}
	}
	// Length limit is in characters, not bytes
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("name too long (max %d chars)", MaxNameLength),
		}
	}
	return name, nil
}

// ValidateQuantity validates a stock quantity.
func ValidateQuantity(quantity int) error {
	if quantity < MinQuantity {
		return &ValidationError{
			Field:   "quantity",
			Message: fmt.Sprintf("quantity cannot be negative, got %d", quantity),
		}
	}
	if quantity > MaxQuantity {
		return &ValidationError{
			Field:   "quantity",
			Message: fmt.Sprintf("quantity too large (max %d)", MaxQuantity),
		}
	}
	return nil
}

// ValidatePrice validates a unit price.
func ValidatePrice(price float64) error {
	if price < MinPrice {
		return &ValidationError{
			Field:   "price",
			Message: fmt.Sprintf("price cannot be negative, got %g", price),
		}
	}
	if price > MaxPrice {
		return &ValidationError{
			Field:   "price",
			Message: fmt.Sprintf("price too large (max %g)", MaxPrice),
		}
	}
	return nil
}

// ValidationError reports a field that violated a validation rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
