package entity

import "time"

// InventoryItem ítem de inventario. CurrentStock solo se muta por entradas
// (+cantidad) o salidas (−cantidad, con piso en 0); LastUpdated se refresca
// en toda mutación, incluida la edición de campos que no tocan el stock.
type InventoryItem struct {
	ID            string    `json:"id"`
	ItemName      string    `json:"itemName"`
	CurrentStock  int       `json:"currentStock"`  // entero, nunca negativo
	MinStockLevel int       `json:"minStockLevel"` // entero ≥ 0
	Unit          string    `json:"unit"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// LowStock indica si el ítem está en stock bajo (currentStock ≤ minStockLevel).
func (i InventoryItem) LowStock() bool {
	return i.CurrentStock <= i.MinStockLevel
}
