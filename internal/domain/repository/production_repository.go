package repository

import "github.com/tu-usuario/dwoms-api/internal/domain/entity"

// ProductionRepository puerto de la colección de entradas de producción.
// Append-only: no hay Update ni Delete, los registros son inmutables.
type ProductionRepository interface {
	List() ([]entity.ProductionEntry, error)
	Create(entry *entity.ProductionEntry) error
}
