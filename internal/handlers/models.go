package handlers

// CreateItemRequest is the body for POST /inventory/items. Quantity and
// price are pointers so a legitimate zero binds instead of failing the
// required check.
type CreateItemRequest struct {
	Name     string   `json:"name" binding:"required" example:"Hammer"`
	Quantity *int     `json:"quantity" binding:"required" example:"15"`
	Price    *float64 `json:"price" binding:"required" example:"18.50"`
}

// UpdateItemRequest is the body for PUT /inventory/items/:id. Every field
// is optional; omitted fields are left unchanged.
type UpdateItemRequest struct {
	Name     *string  `json:"name" example:"Claw Hammer"`
	Quantity *int     `json:"quantity" example:"20"`
	Price    *float64 `json:"price" example:"21.99"`
}

// ListInventoryResponse is the envelope for GET /inventory
type ListInventoryResponse struct {
	Status    string                   `json:"status" example:"success"`
	Count     int                      `json:"count" example:"2"`
	Inventory []map[string]interface{} `json:"inventory"`
}

// ItemResponse is the envelope for single-item success responses
type ItemResponse struct {
	Status  string                 `json:"status" example:"success"`
	Message string                 `json:"message,omitempty"`
	Item    map[string]interface{} `json:"item"`
}

// SuccessResponse is the envelope for message-only success responses
type SuccessResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message"`
}

// ErrorResponse documents the error body produced by pkg/errors
type ErrorResponse struct {
	Code    string `json:"error" example:"ItemNotFound"`
	Message string `json:"message" example:"item not found"`
	Details string `json:"details,omitempty"`
}
