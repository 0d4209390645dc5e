package kvstore

import (
	"github.com/tu-usuario/dwoms-api/internal/domain"
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	"github.com/tu-usuario/dwoms-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre la
// colección dwoms_inventory del store.
type InventoryRepo struct {
	store *Store
}

// NewInventoryRepository construye el adaptador de persistencia para inventario.
func NewInventoryRepository(store *Store) *InventoryRepo {
	return &InventoryRepo{store: store}
}

// List devuelve la colección completa de ítems.
func (r *InventoryRepo) List() ([]entity.InventoryItem, error) {
	items := []entity.InventoryItem{}
	if err := r.store.Get(KeyInventory, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID obtiene un ítem por ID; nil si no existe.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	items, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Create agrega el ítem y reescribe la colección.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	items, err := r.List()
	if err != nil {
		return err
	}
	items = append(items, *item)
	return r.store.Set(KeyInventory, items)
}

// Update reemplaza el ítem por ID y reescribe la colección.
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	items, err := r.List()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = *item
			return r.store.Set(KeyInventory, items)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el ítem por ID y reescribe la colección.
func (r *InventoryRepo) Delete(id string) error {
	items, err := r.List()
	if err != nil {
		return err
	}
	kept := items[:0]
	found := false
	for _, it := range items {
		if it.ID == id {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return domain.ErrNotFound
	}
	return r.store.Set(KeyInventory, kept)
}
