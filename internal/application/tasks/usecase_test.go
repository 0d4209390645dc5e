package tasks_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/dwoms-api/internal/application/dto"
	"github.com/tu-usuario/dwoms-api/internal/application/tasks"
	"github.com/tu-usuario/dwoms-api/internal/domain"
	"github.com/tu-usuario/dwoms-api/internal/domain/access"
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	"github.com/tu-usuario/dwoms-api/internal/domain/workflow"
	"github.com/tu-usuario/dwoms-api/internal/infrastructure/kvstore"
)

func setupTaskUC(t *testing.T) (*tasks.UseCase, *kvstore.UserRepo) {
	t.Helper()
	store, err := kvstore.Open(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	users := kvstore.NewUserRepository(store)
	uc := tasks.NewUseCase(kvstore.NewTaskRepository(store), users)
	return uc, users
}

func seedWorker(t *testing.T, users *kvstore.UserRepo, id, name string) {
	t.Helper()
	require.NoError(t, users.Create(&entity.User{
		ID: id, Name: name, Email: name + "@dwoms.local", Role: access.RoleWorker,
	}))
}

// Ciclo completo: el supervisor asigna, el worker avanza su propia tarea
// paso a paso hasta Completed, y CompletedAt se sella una sola vez.
func TestAdvance_CicloCompletoDelWorker(t *testing.T) {
	uc, users := setupTaskUC(t)
	seedWorker(t, users, "w-1", "Wendy")

	task, err := uc.Create("sup-1", access.RoleSupervisor, dto.CreateTaskRequest{
		ProductType: "Camisa clásica", AssignedWorkerID: "w-1", EstimatedTime: 90,
	})
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusAssigned, task.Status)
	assert.Equal(t, "Wendy", task.AssignedWorkerName)
	assert.Nil(t, task.CompletedAt)

	// El worker arranca su propia tarea.
	task, err = uc.Advance("w-1", access.RoleWorker, task.ID, workflow.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusInProgress, task.Status)

	// El supervisor la pasa a control de calidad.
	task, err = uc.Advance("sup-1", access.RoleSupervisor, task.ID, workflow.StatusQualityCheck)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusQualityCheck, task.Status)

	// El worker la cierra; se sella CompletedAt.
	task, err = uc.Advance("w-1", access.RoleWorker, task.ID, workflow.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)
	sealed := *task.CompletedAt

	// Completed es terminal: cualquier avance posterior falla y la tarea
	// queda intacta.
	_, err = uc.Advance("sup-1", access.RoleSupervisor, task.ID, workflow.StatusAssigned)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	visible, err := uc.ListFor("w-1", access.RoleWorker)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, workflow.StatusCompleted, visible[0].Status)
	require.NotNil(t, visible[0].CompletedAt)
	assert.True(t, sealed.Equal(*visible[0].CompletedAt), "CompletedAt no debe reescribirse")
}

// Un worker no puede tocar tareas ajenas; el estado no cambia.
func TestAdvance_WorkerBloqueadoEnTareaAjena(t *testing.T) {
	uc, users := setupTaskUC(t)
	seedWorker(t, users, "w-1", "Wendy")
	seedWorker(t, users, "w-2", "Walter")

	task, err := uc.Create("sup-1", access.RoleSupervisor, dto.CreateTaskRequest{
		ProductType: "Pantalón cargo", AssignedWorkerID: "w-1", EstimatedTime: 120,
	})
	require.NoError(t, err)

	_, err = uc.Advance("w-2", access.RoleWorker, task.ID, workflow.StatusInProgress)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// La verificación de propiedad va antes que la de flujo: incluso una
	// transición inválida sobre tarea ajena reporta ErrForbidden.
	_, err = uc.Advance("w-2", access.RoleWorker, task.ID, workflow.StatusCompleted)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	own, err := uc.ListFor("w-1", access.RoleWorker)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, workflow.StatusAssigned, own[0].Status)
}

// Saltarse un paso del flujo devuelve ErrInvalidTransition.
func TestAdvance_SaltoDeEstado(t *testing.T) {
	uc, users := setupTaskUC(t)
	seedWorker(t, users, "w-1", "Wendy")

	task, err := uc.Create("adm-1", access.RoleAdmin, dto.CreateTaskRequest{
		ProductType: "Chaqueta denim", AssignedWorkerID: "w-1", EstimatedTime: 240,
	})
	require.NoError(t, err)

	_, err = uc.Advance("adm-1", access.RoleAdmin, task.ID, workflow.StatusCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Solo admin y supervisor crean tareas.
func TestCreate_RolesSinPermiso(t *testing.T) {
	uc, users := setupTaskUC(t)
	seedWorker(t, users, "w-1", "Wendy")

	in := dto.CreateTaskRequest{ProductType: "Gorra", AssignedWorkerID: "w-1", EstimatedTime: 45}

	_, err := uc.Create("w-1", access.RoleWorker, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Create("c-1", access.RoleClient, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Asignar a un trabajador inexistente devuelve ErrNotFound.
func TestCreate_WorkerInexistente(t *testing.T) {
	uc, _ := setupTaskUC(t)

	_, err := uc.Create("adm-1", access.RoleAdmin, dto.CreateTaskRequest{
		ProductType: "Gorra", AssignedWorkerID: "fantasma", EstimatedTime: 45,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Avanzar una tarea inexistente devuelve ErrNotFound antes que cualquier
// otra verificación.
func TestAdvance_TareaInexistente(t *testing.T) {
	uc, _ := setupTaskUC(t)

	_, err := uc.Advance("adm-1", access.RoleAdmin, "fantasma", workflow.StatusInProgress)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un client no tiene la capacidad manage-tasks: ListFor devuelve ErrForbidden
// y ningún dato, aun con tareas existentes en el sistema.
func TestListFor_ClientSinAcceso(t *testing.T) {
	uc, users := setupTaskUC(t)
	seedWorker(t, users, "w-1", "Wendy")

	_, err := uc.Create("sup-1", access.RoleSupervisor, dto.CreateTaskRequest{
		ProductType: "Camisa", AssignedWorkerID: "w-1", EstimatedTime: 60,
	})
	require.NoError(t, err)

	visible, err := uc.ListFor("client-1", access.RoleClient)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, visible)
}

// La visibilidad por rol: admin y supervisor ven todo, el worker solo lo suyo.
func TestListFor_VisibilidadPorRol(t *testing.T) {
	uc, users := setupTaskUC(t)
	seedWorker(t, users, "w-1", "Wendy")
	seedWorker(t, users, "w-2", "Walter")

	for _, workerID := range []string{"w-1", "w-1", "w-2"} {
		_, err := uc.Create("sup-1", access.RoleSupervisor, dto.CreateTaskRequest{
			ProductType: "Camisa", AssignedWorkerID: workerID, EstimatedTime: 60,
		})
		require.NoError(t, err)
	}

	all, err := uc.ListFor("sup-1", access.RoleSupervisor)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	own, err := uc.ListFor("w-1", access.RoleWorker)
	require.NoError(t, err)
	assert.Len(t, own, 2)

	counts, err := uc.Counts()
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, 3, counts.Assigned)
	assert.Equal(t, 0, counts.Completed)
}
