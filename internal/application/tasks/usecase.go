// Package tasks contiene los casos de uso de tareas: creación, visibilidad
// por rol y el avance de estado por el flujo fijo del workflow.
package tasks

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/dwoms-api/internal/application/dto"
	"github.com/tu-usuario/dwoms-api/internal/domain"
	"github.com/tu-usuario/dwoms-api/internal/domain/access"
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	"github.com/tu-usuario/dwoms-api/internal/domain/repository"
	"github.com/tu-usuario/dwoms-api/internal/domain/workflow"
)

// UseCase aplica las reglas de negocio de tareas.
type UseCase struct {
	repo  repository.TaskRepository
	users repository.UserRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.TaskRepository, users repository.UserRepository) *UseCase {
	return &UseCase{repo: repo, users: users}
}

// Create crea una tarea en estado Assigned. Solo admin y supervisor asignan
// trabajo; cualquier otro rol recibe ErrForbidden. AssignedWorkerName es un
// snapshot del nombre del trabajador al momento de crear.
func (uc *UseCase) Create(actorID string, actorRole access.Role, in dto.CreateTaskRequest) (*entity.Task, error) {
	if !access.CanCreateTask(actorRole) {
		return nil, domain.ErrForbidden
	}
	worker, err := uc.users.GetByID(in.AssignedWorkerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrNotFound
	}
	task := entity.Task{
		ID:                 uuid.New().String(),
		ProductType:        in.ProductType,
		AssignedWorkerID:   worker.ID,
		AssignedWorkerName: worker.Name,
		Status:             workflow.StatusAssigned,
		EstimatedTime:      in.EstimatedTime,
		CreatedBy:          actorID,
		Timestamp:          time.Now(),
	}
	if err := uc.repo.Create(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ListFor devuelve las tareas visibles para el actor: un worker ve solo las
// asignadas a sí mismo; admin y supervisor ven todas. Un rol sin la
// capacidad manage-tasks (client) recibe ErrForbidden, nunca una lista
// parcial; la regla se aplica aquí además de en el router.
func (uc *UseCase) ListFor(actorID string, actorRole access.Role) ([]entity.Task, error) {
	if !access.Can(actorRole, access.CapManageTasks) {
		return nil, domain.ErrForbidden
	}
	tasks, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if actorRole != access.RoleWorker {
		return tasks, nil
	}
	own := []entity.Task{}
	for _, t := range tasks {
		if t.AssignedWorkerID == actorID {
			own = append(own, t)
		}
	}
	return own, nil
}

// Advance intenta la transición de estado taskID → target.
//
// Orden de verificación: existencia, propiedad (worker solo sobre sus
// tareas), flujo. Una transición fuera de workflow.NextStatuses devuelve
// ErrInvalidTransition y deja status y CompletedAt intactos. CompletedAt se
// sella exactamente una vez, al llegar a Completed; como Completed es
// terminal, ninguna llamada posterior puede sobreescribirlo.
func (uc *UseCase) Advance(actorID string, actorRole access.Role, taskID string, target workflow.Status) (*entity.Task, error) {
	task, err := uc.repo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if !access.CanMutateTask(actorRole, actorID, task.AssignedWorkerID) {
		return nil, domain.ErrForbidden
	}
	if !workflow.CanTransition(task.Status, target) {
		return nil, domain.ErrInvalidTransition
	}
	task.Status = target
	if target == workflow.StatusCompleted && task.CompletedAt == nil {
		now := time.Now()
		task.CompletedAt = &now
	}
	if err := uc.repo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

// Counts devuelve los totales de tareas por estado.
func (uc *UseCase) Counts() (*dto.TaskCountsDTO, error) {
	tasks, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	counts := dto.TaskCountsDTO{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case workflow.StatusAssigned:
			counts.Assigned++
		case workflow.StatusInProgress:
			counts.InProgress++
		case workflow.StatusQualityCheck:
			counts.QualityCheck++
		case workflow.StatusCompleted:
			counts.Completed++
		}
	}
	return &counts, nil
}
