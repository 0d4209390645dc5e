package repository

import "github.com/tu-usuario/dwoms-api/internal/domain/entity"

// TaskRepository puerto de la colección de tareas. Update existe solo para
// el avance de estado (y su sello CompletedAt); el resto del registro es
// inmutable después de crear.
type TaskRepository interface {
	List() ([]entity.Task, error)
	GetByID(id string) (*entity.Task, error)
	Create(task *entity.Task) error
	Update(task *entity.Task) error
}
