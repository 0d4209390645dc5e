// Package analytics contiene el caso de uso del dashboard: métricas
// agregadas de producción, tareas e inventario para la vista de inicio.
package analytics

import (
	"sort"
	"time"

	"github.com/tu-usuario/dwoms-api/internal/application/dto"
	"github.com/tu-usuario/dwoms-api/internal/domain/repository"
	"github.com/tu-usuario/dwoms-api/internal/domain/workflow"
)

const dateLayout = "2006-01-02"

// DashboardUseCase genera el resumen operativo del sistema.
//
// Fuente de datos: los puertos de las tres colecciones, en modo read-only.
type DashboardUseCase struct {
	production repository.ProductionRepository
	tasks      repository.TaskRepository
	inventory  repository.InventoryRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	production repository.ProductionRepository,
	tasks repository.TaskRepository,
	inventory repository.InventoryRepository,
) *DashboardUseCase {
	return &DashboardUseCase{production: production, tasks: tasks, inventory: inventory}
}

// GetMetrics construye el DashboardMetricsDTO: producción total y de hoy,
// tareas activas (estado distinto de Completed) y completadas, ítems en
// stock bajo y productividad por trabajador en orden descendente.
func (uc *DashboardUseCase) GetMetrics() (*dto.DashboardMetricsDTO, error) {
	entries, err := uc.production.List()
	if err != nil {
		return nil, err
	}
	taskList, err := uc.tasks.List()
	if err != nil {
		return nil, err
	}
	items, err := uc.inventory.List()
	if err != nil {
		return nil, err
	}

	metrics := dto.DashboardMetricsDTO{}
	today := time.Now().Format(dateLayout)

	byWorker := map[string]*dto.WorkerProductivityDTO{}
	order := []string{}
	for _, e := range entries {
		metrics.TotalProduction += e.Quantity
		if e.Date == today {
			metrics.TodayProduction += e.Quantity
		}
		p, ok := byWorker[e.WorkerID]
		if !ok {
			p = &dto.WorkerProductivityDTO{WorkerID: e.WorkerID, WorkerName: e.WorkerName}
			byWorker[e.WorkerID] = p
			order = append(order, e.WorkerID)
		}
		p.Quantity += e.Quantity
	}
	productivity := make([]dto.WorkerProductivityDTO, 0, len(order))
	for _, id := range order {
		productivity = append(productivity, *byWorker[id])
	}
	sort.SliceStable(productivity, func(i, j int) bool {
		return productivity[i].Quantity > productivity[j].Quantity
	})
	metrics.WorkerProductivity = productivity

	for _, t := range taskList {
		if t.Status == workflow.StatusCompleted {
			metrics.CompletedTasks++
		} else {
			metrics.ActiveTasks++
		}
	}

	for _, it := range items {
		if it.LowStock() {
			metrics.LowStockItems++
		}
	}

	return &metrics, nil
}
