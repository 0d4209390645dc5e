package entity

import (
	"time"

	"github.com/tu-usuario/dwoms-api/internal/domain/workflow"
)

// Task tarea de producción asignada a un trabajador. El status solo avanza
// por el flujo de workflow.NextStatuses; CompletedAt se escribe exactamente
// una vez, al llegar a Completed, y nunca se limpia.
type Task struct {
	ID                 string          `json:"id"`
	ProductType        string          `json:"productType"`
	AssignedWorkerID   string          `json:"assignedWorkerId"`
	AssignedWorkerName string          `json:"assignedWorkerName"` // snapshot al momento de crear
	Status             workflow.Status `json:"status"`
	EstimatedTime      int             `json:"estimatedTime"` // minutos, positivo
	CreatedBy          string          `json:"createdBy"`
	Timestamp          time.Time       `json:"timestamp"`
	CompletedAt        *time.Time      `json:"completedAt,omitempty"`
}
