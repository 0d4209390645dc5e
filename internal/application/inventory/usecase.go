// Package inventory contiene los casos de uso de inventario: alta y edición
// de ítems, movimientos de stock y consulta de stock bajo.
package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/dwoms-api/internal/application/dto"
	"github.com/tu-usuario/dwoms-api/internal/domain"
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	"github.com/tu-usuario/dwoms-api/internal/domain/repository"
)

// UseCase aplica las reglas de negocio de inventario.
type UseCase struct {
	repo repository.InventoryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.InventoryRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List devuelve todos los ítems.
func (uc *UseCase) List() ([]entity.InventoryItem, error) {
	return uc.repo.List()
}

// AddItem da de alta un ítem nuevo.
func (uc *UseCase) AddItem(in dto.CreateInventoryItemRequest) (*entity.InventoryItem, error) {
	item := entity.InventoryItem{
		ID:            uuid.New().String(),
		ItemName:      in.ItemName,
		CurrentStock:  in.CurrentStock,
		MinStockLevel: in.MinStockLevel,
		Unit:          in.Unit,
		LastUpdated:   time.Now(),
	}
	if err := uc.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Move aplica un movimiento de stock. Una entrada suma; una salida resta
// con piso en 0: sacar más de lo que hay deja el stock en 0, nunca
// negativo. Toda mutación refresca LastUpdated.
func (uc *UseCase) Move(itemID string, in dto.StockMovementRequest) (*entity.InventoryItem, error) {
	item, err := uc.repo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	switch in.Type {
	case dto.MovementStockIn:
		item.CurrentStock += in.Quantity
	case dto.MovementStockOut:
		item.CurrentStock -= in.Quantity
		if item.CurrentStock < 0 {
			item.CurrentStock = 0
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	item.LastUpdated = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem edita los campos que no son stock. El stock solo se muta vía
// Move; LastUpdated se refresca igualmente.
func (uc *UseCase) UpdateItem(itemID string, in dto.UpdateInventoryItemRequest) (*entity.InventoryItem, error) {
	item, err := uc.repo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.ItemName = in.ItemName
	item.MinStockLevel = in.MinStockLevel
	item.Unit = in.Unit
	item.LastUpdated = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem elimina un ítem.
func (uc *UseCase) DeleteItem(itemID string) error {
	return uc.repo.Delete(itemID)
}

// LowStock devuelve los ítems con currentStock ≤ minStockLevel.
func (uc *UseCase) LowStock() ([]entity.InventoryItem, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	low := []entity.InventoryItem{}
	for _, it := range items {
		if it.LowStock() {
			low = append(low, it)
		}
	}
	return low, nil
}
