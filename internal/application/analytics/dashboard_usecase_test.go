package analytics_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/dwoms-api/internal/application/analytics"
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	"github.com/tu-usuario/dwoms-api/internal/domain/workflow"
	"github.com/tu-usuario/dwoms-api/internal/infrastructure/kvstore"
)

func TestGetMetrics(t *testing.T) {
	store, err := kvstore.Open(filepath.Join(t.TempDir(), "dashboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	production := kvstore.NewProductionRepository(store)
	tasks := kvstore.NewTaskRepository(store)
	inventory := kvstore.NewInventoryRepository(store)
	uc := analytics.NewDashboardUseCase(production, tasks, inventory)

	today := time.Now().Format("2006-01-02")
	seed := []entity.ProductionEntry{
		{ID: "p-1", WorkerID: "w-1", WorkerName: "Wendy", Quantity: 30, Date: today},
		{ID: "p-2", WorkerID: "w-2", WorkerName: "Walter", Quantity: 50, Date: "2020-01-01"},
		{ID: "p-3", WorkerID: "w-1", WorkerName: "Wendy", Quantity: 5, Date: "2020-01-01"},
	}
	for i := range seed {
		require.NoError(t, production.Create(&seed[i]))
	}

	for i, status := range []workflow.Status{
		workflow.StatusAssigned, workflow.StatusInProgress,
		workflow.StatusQualityCheck, workflow.StatusCompleted,
	} {
		require.NoError(t, tasks.Create(&entity.Task{
			ID: string(rune('a' + i)), ProductType: "Camisa", Status: status,
		}))
	}

	require.NoError(t, inventory.Create(&entity.InventoryItem{ID: "i-1", ItemName: "Hilo", CurrentStock: 5, MinStockLevel: 20}))
	require.NoError(t, inventory.Create(&entity.InventoryItem{ID: "i-2", ItemName: "Tela", CurrentStock: 100, MinStockLevel: 20}))

	metrics, err := uc.GetMetrics()
	require.NoError(t, err)

	assert.Equal(t, 85, metrics.TotalProduction)
	assert.Equal(t, 30, metrics.TodayProduction)
	assert.Equal(t, 3, metrics.ActiveTasks, "todo estado distinto de Completed es activo")
	assert.Equal(t, 1, metrics.CompletedTasks)
	assert.Equal(t, 1, metrics.LowStockItems)

	require.Len(t, metrics.WorkerProductivity, 2)
	assert.Equal(t, "Walter", metrics.WorkerProductivity[0].WorkerName, "orden descendente por cantidad")
	assert.Equal(t, 50, metrics.WorkerProductivity[0].Quantity)
	assert.Equal(t, 35, metrics.WorkerProductivity[1].Quantity)
}

// Un sistema vacío produce métricas en cero, no errores.
func TestGetMetrics_SinDatos(t *testing.T) {
	store, err := kvstore.Open(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	uc := analytics.NewDashboardUseCase(
		kvstore.NewProductionRepository(store),
		kvstore.NewTaskRepository(store),
		kvstore.NewInventoryRepository(store),
	)

	metrics, err := uc.GetMetrics()
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.TotalProduction)
	assert.Equal(t, 0, metrics.ActiveTasks)
	assert.Empty(t, metrics.WorkerProductivity)
}
