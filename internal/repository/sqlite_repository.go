package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"inventory-service/internal/database"
	"inventory-service/internal/models"

	"go.uber.org/zap"
)

// SQLiteInventoryRepository persists inventory items in SQLite. Every
// operation runs inside a single database session (transaction) that
// commits on success and rolls back on failure.
type SQLiteInventoryRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewSQLiteInventoryRepository opens the database and initializes the
// schema. Schema initialization is idempotent and safe across restarts.
func NewSQLiteInventoryRepository(path string, logger *zap.Logger) (*SQLiteInventoryRepository, error) {
	db, err := database.Open(path, logger)
	if err != nil {
		return nil, err
	}

	repo := &SQLiteInventoryRepository{db: db, logger: logger}
	if err := repo.initSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("SQLite database initialized", zap.String("path", path))
	return repo, nil
}

func (r *SQLiteInventoryRepository) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS inventory (
		item_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price REAL NOT NULL
	);
	`

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, schema)
		return err
	})
}

// CreateItem validates the fields, inserts the row and returns the item
// with the ID SQLite just assigned.
func (r *SQLiteInventoryRepository) CreateItem(ctx context.Context, name string, quantity int, price float64) (*models.InventoryItem, error) {
	item, err := models.NewItem(name, quantity, price)
	if err != nil {
		return nil, err
	}

	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO inventory (name, quantity, price) VALUES (?, ?, ?)",
			item.Name, item.Quantity, item.Price,
		)
		if err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read inserted id: %w", err)
		}
		item.ItemID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("Item created",
		zap.Int64("item_id", item.ItemID),
		zap.String("name", item.Name),
	)
	return item, nil
}

// ListItems returns every item ordered by item_id, which is insertion
// order for this schema.
func (r *SQLiteInventoryRepository) ListItems(ctx context.Context) ([]models.InventoryItem, error) {
	items := make([]models.InventoryItem, 0)

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			"SELECT item_id, name, quantity, price FROM inventory ORDER BY item_id",
		)
		if err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var item models.InventoryItem
			if err := rows.Scan(&item.ItemID, &item.Name, &item.Quantity, &item.Price); err != nil {
				return fmt.Errorf("failed to scan item: %w", err)
			}
			items = append(items, item)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// GetItem returns the item with the given id, or ErrItemNotFound.
func (r *SQLiteInventoryRepository) GetItem(ctx context.Context, itemID int64) (*models.InventoryItem, error) {
	var item models.InventoryItem

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			"SELECT item_id, name, quantity, price FROM inventory WHERE item_id = ?",
			itemID,
		).Scan(&item.ItemID, &item.Name, &item.Quantity, &item.Price)

		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrItemNotFound
			}
			return fmt.Errorf("failed to get item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// UpdateItem builds the SET clause from the non-nil fields of update and
// applies them in one atomic write. Provided fields are validated before
// anything touches the database. A zero-field update is a no-op and
// reports false without opening a session.
func (r *SQLiteInventoryRepository) UpdateItem(ctx context.Context, itemID int64, update ItemUpdate) (bool, error) {
	if update.Empty() {
		return false, nil
	}

	sets := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)

	if update.Name != nil {
		clean, err := models.ValidateName(*update.Name)
		if err != nil {
			return false, err
		}
		sets = append(sets, "name = ?")
		args = append(args, clean)
	}
	if update.Quantity != nil {
		if err := models.ValidateQuantity(*update.Quantity); err != nil {
			return false, err
		}
		sets = append(sets, "quantity = ?")
		args = append(args, *update.Quantity)
	}
	if update.Price != nil {
		if err := models.ValidatePrice(*update.Price); err != nil {
			return false, err
		}
		sets = append(sets, "price = ?")
		args = append(args, *update.Price)
	}

	query := fmt.Sprintf("UPDATE inventory SET %s WHERE item_id = ?", strings.Join(sets, ", "))
	args = append(args, itemID)

	var updated bool
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to update item: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		updated = affected > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	if updated {
		r.logger.Info("Item updated", zap.Int64("item_id", itemID))
	}
	return updated, nil
}

// DeleteItem removes the row permanently. No soft delete.
func (r *SQLiteInventoryRepository) DeleteItem(ctx context.Context, itemID int64) (bool, error) {
	var deleted bool

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM inventory WHERE item_id = ?", itemID)
		if err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		deleted = affected > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	if deleted {
		r.logger.Info("Item deleted", zap.Int64("item_id", itemID))
	}
	return deleted, nil
}

// Close closes the underlying database.
func (r *SQLiteInventoryRepository) Close() error {
	return r.db.Close()
}
