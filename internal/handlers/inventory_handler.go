package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"inventory-service/internal/models"
	"inventory-service/internal/repository"
	apierrors "inventory-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InventoryHandler translates HTTP requests into store calls. The store
// is constructed once at startup and passed in explicitly.
type InventoryHandler struct {
	logger *zap.Logger
	store  repository.InventoryRepository
}

func NewInventoryHandler(logger *zap.Logger, store repository.InventoryRepository) *InventoryHandler {
	return &InventoryHandler{
		logger: logger,
		store:  store,
	}
}

// GetInventory handles GET /api/v1/inventory
// @Summary      List all inventory items
// @Description  Returns the entire inventory with a count, in creation order.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  ListInventoryResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /inventory [get]
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	items, err := h.store.ListItems(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, "list items", err)
		return
	}

	inventory := make([]map[string]interface{}, 0, len(items))
	for i := range items {
		inventory = append(inventory, items[i].ToMap())
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"count":     len(inventory),
		"inventory": inventory,
	})
}

// AddItem handles POST /api/v1/inventory/items
// @Summary      Create a new inventory item
// @Description  Validates name, quantity and price, persists the item and returns it with its database-assigned item_id.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body      CreateItemRequest  true  "Item creation request"
// @Success      201      {object}  ItemResponse
// @Failure      400      {object}  ErrorResponse  "Missing or invalid field"
// @Failure      500      {object}  ErrorResponse
// @Router       /inventory/items [post]
func (h *InventoryHandler) AddItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid create request", zap.Error(err))
		stdErr := apierrors.NewInvalidRequest("invalid request body", err.Error())
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return
	}

	item, err := h.store.CreateItem(c.Request.Context(), req.Name, *req.Quantity, *req.Price)
	if err != nil {
		h.respondStoreError(c, "create item", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Item '%s' added successfully.", item.Name),
		"item":    item.ToMap(),
	})
}

// GetItem handles GET /api/v1/inventory/items/:id
// @Summary      Get an inventory item by ID
// @Tags         inventory
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  ItemResponse
// @Failure      400  {object}  ErrorResponse  "Invalid item ID"
// @Failure      404  {object}  ErrorResponse  "Item not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /inventory/items/{id} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	itemID, ok := h.parseItemID(c)
	if !ok {
		return
	}

	item, err := h.store.GetItem(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			stdErr := apierrors.NewItemNotFound(itemID)
			c.JSON(stdErr.HTTPStatus(), stdErr)
			return
		}
		h.respondStoreError(c, "get item", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"item":   item.ToMap(),
	})
}

// UpdateItem handles PUT /api/v1/inventory/items/:id
// @Summary      Update an inventory item
// @Description  Overwrites only the fields present in the body. A body with no fields is a no-op and reports not-updated.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id       path      int                true  "Item ID"
// @Param        request  body      UpdateItemRequest  true  "Fields to update"
// @Success      200      {object}  SuccessResponse
// @Failure      400      {object}  ErrorResponse  "Invalid ID or field value"
// @Failure      404      {object}  ErrorResponse  "Item not found or no changes provided"
// @Failure      500      {object}  ErrorResponse
// @Router       /inventory/items/{id} [put]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	itemID, ok := h.parseItemID(c)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		stdErr := apierrors.NewInvalidRequest("invalid request body", err.Error())
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return
	}

	updated, err := h.store.UpdateItem(c.Request.Context(), itemID, repository.ItemUpdate{
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		h.respondStoreError(c, "update item", err)
		return
	}

	if !updated {
		stdErr := apierrors.NewStandardError("ItemNotFound",
			fmt.Sprintf("item ID %d not found or no changes provided", itemID), "")
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Item ID %d updated successfully.", itemID),
	})
}

// DeleteItem handles DELETE /api/v1/inventory/items/:id
// @Summary      Delete an inventory item
// @Description  Removes the item permanently. This operation cannot be undone.
// @Tags         inventory
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  SuccessResponse
// @Failure      400  {object}  ErrorResponse  "Invalid item ID"
// @Failure      404  {object}  ErrorResponse  "Item not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /inventory/items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	itemID, ok := h.parseItemID(c)
	if !ok {
		return
	}

	deleted, err := h.store.DeleteItem(c.Request.Context(), itemID)
	if err != nil {
		h.respondStoreError(c, "delete item", err)
		return
	}

	if !deleted {
		stdErr := apierrors.NewItemNotFound(itemID)
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Item ID %d deleted successfully.", itemID),
	})
}

func (h *InventoryHandler) parseItemID(c *gin.Context) (int64, bool) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		stdErr := apierrors.NewInvalidRequest("invalid item id", c.Param("id"))
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return 0, false
	}
	return itemID, true
}

// respondStoreError maps store failures onto the error taxonomy:
// validation failures are client errors, everything else is a server error.
func (h *InventoryHandler) respondStoreError(c *gin.Context, operation string, err error) {
	var valErr *models.ValidationError
	if errors.As(err, &valErr) {
		h.logger.Warn("Validation failed",
			zap.String("field", valErr.Field),
			zap.String("reason", valErr.Message),
		)
		stdErr := apierrors.NewValidationError(valErr.Message, valErr.Field)
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return
	}

	h.logger.Error("Store operation failed", zap.String("operation", operation), zap.Error(err))
	stdErr := apierrors.NewDatabaseError(operation, err)
	c.JSON(stdErr.HTTPStatus(), stdErr)
}
