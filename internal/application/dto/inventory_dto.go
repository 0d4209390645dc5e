package dto

// Tipos de movimiento de stock.
const (
	MovementStockIn  = "in"
	MovementStockOut = "out"
)

// CreateInventoryItemRequest entrada para dar de alta un ítem.
type CreateInventoryItemRequest struct {
	ItemName      string `json:"itemName" validate:"required,min=1,max=200"`
	CurrentStock  int    `json:"currentStock" validate:"min=0"`
	MinStockLevel int    `json:"minStockLevel" validate:"min=0"`
	Unit          string `json:"unit" validate:"required,min=1,max=50"`
}

// UpdateInventoryItemRequest entrada para editar campos que no son stock.
// El stock solo se muta vía movimientos (in/out).
type UpdateInventoryItemRequest struct {
	ItemName      string `json:"itemName" validate:"required,min=1,max=200"`
	MinStockLevel int    `json:"minStockLevel" validate:"min=0"`
	Unit          string `json:"unit" validate:"required,min=1,max=50"`
}

// StockMovementRequest entrada de un movimiento de stock. Una salida mayor
// al stock actual no falla: el stock queda en 0.
type StockMovementRequest struct {
	Type     string `json:"type" validate:"required,oneof=in out"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}
