package dto

// CreateTaskRequest entrada para crear una tarea (solo admin/supervisor).
// El estado inicial siempre es Assigned; no se acepta en la entrada.
type CreateTaskRequest struct {
	ProductType      string `json:"productType" validate:"required,min=1,max=200"`
	AssignedWorkerID string `json:"assignedWorkerId" validate:"required"`
	EstimatedTime    int    `json:"estimatedTime" validate:"required,min=1"` // minutos
}

// UpdateTaskStatusRequest entrada para avanzar el estado de una tarea.
// La forma acepta cualquiera de los cuatro estados; decidir si la transición
// es legal (p. ej. retroceder a Assigned) es asunto del flujo, que responde
// con INVALID_TRANSITION.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Assigned 'In Progress' 'Quality Check' Completed"`
}

// TaskCountsDTO totales de tareas por estado.
type TaskCountsDTO struct {
	Assigned     int `json:"assigned"`
	InProgress   int `json:"inProgress"`
	QualityCheck int `json:"qualityCheck"`
	Completed    int `json:"completed"`
	Total        int `json:"total"`
}
