package kvstore

import (
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	"github.com/tu-usuario/dwoms-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación del puerto ProductionRepository sobre la
// colección dwoms_production_entries del store. Append-only.
type ProductionRepo struct {
	store *Store
}

// NewProductionRepository construye el adaptador de persistencia para producción.
func NewProductionRepository(store *Store) *ProductionRepo {
	return &ProductionRepo{store: store}
}

// List devuelve la colección completa de entradas.
func (r *ProductionRepo) List() ([]entity.ProductionEntry, error) {
	entries := []entity.ProductionEntry{}
	if err := r.store.Get(KeyProductionEntries, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Create agrega la entrada y reescribe la colección.
func (r *ProductionRepo) Create(entry *entity.ProductionEntry) error {
	entries, err := r.List()
	if err != nil {
		return err
	}
	entries = append(entries, *entry)
	return r.store.Set(KeyProductionEntries, entries)
}
