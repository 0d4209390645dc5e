package reports_test

import (
	"context"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/dwoms-api/internal/application/reports"
	"github.com/tu-usuario/dwoms-api/internal/domain"
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	"github.com/tu-usuario/dwoms-api/internal/domain/workflow"
	"github.com/tu-usuario/dwoms-api/internal/infrastructure/kvstore"
)

// generatorStub captura el documento que le piden generar.
type generatorStub struct {
	last reports.Document
}

func (g *generatorStub) Generate(_ context.Context, doc reports.Document) ([]byte, error) {
	g.last = doc
	return []byte("%PDF-stub"), nil
}

func setupReportUC(t *testing.T) (*reports.UseCase, *kvstore.ProductionRepo, *kvstore.TaskRepo, *kvstore.InventoryRepo, *generatorStub) {
	t.Helper()
	store, err := kvstore.Open(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	production := kvstore.NewProductionRepository(store)
	tasks := kvstore.NewTaskRepository(store)
	inventory := kvstore.NewInventoryRepository(store)
	gen := &generatorStub{}
	uc := reports.NewUseCase(production, tasks, inventory, gen)
	return uc, production, tasks, inventory, gen
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	return rows
}

// El reporte de producción filtra por el rango inclusivo de fechas y arma
// las columnas fijas.
func TestBuildCSV_Produccion_FiltraPorRango(t *testing.T) {
	uc, production, _, _, _ := setupReportUC(t)

	seed := []struct {
		date string
		qty  int
	}{
		{"2026-07-01", 10}, // fuera del rango
		{"2026-08-01", 20},
		{"2026-08-15", 30},
		{"2026-09-01", 40}, // fuera del rango
	}
	for i, s := range seed {
		require.NoError(t, production.Create(&entity.ProductionEntry{
			ID: fmt.Sprintf("p-%d", i), WorkerID: "w-1", WorkerName: "Wendy",
			ProductName: "Camisa", Quantity: s.qty, Shift: entity.ShiftMorning, Date: s.date,
		}))
	}

	rng := reports.DateRange{Start: "2026-08-01", End: "2026-08-31"}
	filename, data, err := uc.BuildCSV(reports.TypeProduction, rng)
	require.NoError(t, err)
	assert.Equal(t, "production_2026-08-01_to_2026-08-31.csv", filename)

	rows := parseCSV(t, data)
	require.Len(t, rows, 3, "cabecera + 2 entradas dentro del rango")
	assert.Equal(t, []string{"Date", "Worker", "Product", "Quantity", "Shift"}, rows[0])
	assert.Equal(t, []string{"2026-08-01", "Wendy", "Camisa", "20", "morning"}, rows[1])
}

// El reporte de tareas filtra por el día de creación.
func TestBuildCSV_Tareas(t *testing.T) {
	uc, _, tasks, _, _ := setupReportUC(t)

	inRange := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	outOfRange := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, tasks.Create(&entity.Task{
		ID: "t-1", ProductType: "Camisa", AssignedWorkerName: "Wendy",
		Status: workflow.StatusCompleted, EstimatedTime: 90, Timestamp: inRange,
	}))
	require.NoError(t, tasks.Create(&entity.Task{
		ID: "t-2", ProductType: "Gorra", AssignedWorkerName: "Walter",
		Status: workflow.StatusAssigned, EstimatedTime: 45, Timestamp: outOfRange,
	}))

	rng := reports.DateRange{Start: "2026-08-01", End: "2026-08-31"}
	_, data, err := uc.BuildCSV(reports.TypeTasks, rng)
	require.NoError(t, err)

	rows := parseCSV(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Product Type", "Assigned Worker", "Status", "Estimated Time (min)", "Created Date"}, rows[0])
	assert.Equal(t, []string{"Camisa", "Wendy", "Completed", "90", "2026-08-10"}, rows[1])
}

// El reporte de inventario es un snapshot completo: no filtra por fecha y
// el nombre de archivo lleva la fecha de hoy.
func TestBuildCSV_Inventario_SinFiltro(t *testing.T) {
	uc, _, _, inventory, _ := setupReportUC(t)

	require.NoError(t, inventory.Create(&entity.InventoryItem{
		ID: "i-1", ItemName: "Hilo", CurrentStock: 5, MinStockLevel: 20, Unit: "conos",
		LastUpdated: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}))

	filename, data, err := uc.BuildCSV(reports.TypeInventory, reports.DateRange{Start: "2026-08-01", End: "2026-08-31"})
	require.NoError(t, err)
	assert.Equal(t, "inventory_"+time.Now().Format("2006-01-02")+".csv", filename)

	rows := parseCSV(t, data)
	require.Len(t, rows, 2, "el rango no filtra el inventario")
	assert.Equal(t, []string{"Item Name", "Current Stock", "Min Stock Level", "Unit", "Last Updated"}, rows[0])
	assert.Equal(t, []string{"Hilo", "5", "20", "conos", "2020-01-01"}, rows[1])
}

// BuildPDF delega en el puerto con el mismo documento que el CSV.
func TestBuildPDF_DelegaEnElPuerto(t *testing.T) {
	uc, production, _, _, gen := setupReportUC(t)

	require.NoError(t, production.Create(&entity.ProductionEntry{
		ID: "p-1", WorkerID: "w-1", WorkerName: "Wendy",
		ProductName: "Camisa", Quantity: 30, Shift: entity.ShiftNight, Date: "2026-08-15",
	}))

	rng := reports.DateRange{Start: "2026-08-01", End: "2026-08-31"}
	filename, data, err := uc.BuildPDF(context.Background(), reports.TypeProduction, rng)
	require.NoError(t, err)
	assert.Equal(t, "production_2026-08-01_to_2026-08-31.pdf", filename)
	assert.Equal(t, []byte("%PDF-stub"), data)

	assert.Equal(t, "Production Report (2026-08-01 to 2026-08-31)", gen.last.Title)
	require.Len(t, gen.last.Rows, 1)
	assert.Contains(t, gen.last.Summary, "Total Quantity: 30")
}

func TestParseType(t *testing.T) {
	for _, valid := range []string{"production", "tasks", "inventory"} {
		typ, err := reports.ParseType(valid)
		require.NoError(t, err)
		assert.Equal(t, reports.Type(valid), typ)
	}

	_, err := reports.ParseType("payroll")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// DefaultRange cubre los últimos 30 días hasta hoy.
func TestDefaultRange(t *testing.T) {
	rng := reports.DefaultRange()
	assert.Equal(t, time.Now().Format("2006-01-02"), rng.End)
	assert.Equal(t, time.Now().AddDate(0, 0, -30).Format("2006-01-02"), rng.Start)
}
