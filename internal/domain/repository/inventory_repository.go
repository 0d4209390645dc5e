package repository

import "github.com/tu-usuario/dwoms-api/internal/domain/entity"

// InventoryRepository puerto de la colección de inventario.
type InventoryRepository interface {
	List() ([]entity.InventoryItem, error)
	GetByID(id string) (*entity.InventoryItem, error)
	Create(item *entity.InventoryItem) error
	Update(item *entity.InventoryItem) error
	Delete(id string) error
}
