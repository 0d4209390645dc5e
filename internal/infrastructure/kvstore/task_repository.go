package kvstore

import (
	"github.com/tu-usuario/dwoms-api/internal/domain"
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	"github.com/tu-usuario/dwoms-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación del puerto TaskRepository sobre la colección
// dwoms_tasks del store.
type TaskRepo struct {
	store *Store
}

// NewTaskRepository construye el adaptador de persistencia para tareas.
func NewTaskRepository(store *Store) *TaskRepo {
	return &TaskRepo{store: store}
}

// List devuelve la colección completa de tareas.
func (r *TaskRepo) List() ([]entity.Task, error) {
	tasks := []entity.Task{}
	if err := r.store.Get(KeyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetByID obtiene una tarea por ID; nil si no existe.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	tasks, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, nil
}

// Create agrega la tarea y reescribe la colección.
func (r *TaskRepo) Create(task *entity.Task) error {
	tasks, err := r.List()
	if err != nil {
		return err
	}
	tasks = append(tasks, *task)
	return r.store.Set(KeyTasks, tasks)
}

// Update reemplaza la tarea por ID y reescribe la colección.
func (r *TaskRepo) Update(task *entity.Task) error {
	tasks, err := r.List()
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = *task
			return r.store.Set(KeyTasks, tasks)
		}
	}
	return domain.ErrNotFound
}
