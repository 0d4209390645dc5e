// Package reports contiene el exportador de reportes: filtra un corte por
// rango de fechas de producción, tareas o inventario y lo entrega como CSV
// o como documento paginado vía el puerto DocumentGenerator.
package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/tu-usuario/dwoms-api/internal/domain"
	"github.com/tu-usuario/dwoms-api/internal/domain/repository"
	"github.com/tu-usuario/dwoms-api/internal/domain/workflow"
)

// Type tipo de reporte exportable.
type Type string

// Tipos de reporte.
const (
	TypeProduction Type = "production"
	TypeTasks      Type = "tasks"
	TypeInventory  Type = "inventory"
)

// ParseType valida el tipo recibido por la ruta.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeProduction, TypeTasks, TypeInventory:
		return Type(s), nil
	}
	return "", domain.ErrInvalidInput
}

// DateRange rango inclusivo de días calendario (YYYY-MM-DD). El formato
// ISO permite comparar por string, igual que las fechas de las entradas.
type DateRange struct {
	Start string
	End   string
}

const dateLayout = "2006-01-02"

// DefaultRange últimos 30 días hasta hoy.
func DefaultRange() DateRange {
	now := time.Now()
	return DateRange{
		Start: now.AddDate(0, 0, -30).Format(dateLayout),
		End:   now.Format(dateLayout),
	}
}

func (r DateRange) contains(date string) bool {
	return date >= r.Start && date <= r.End
}

// UseCase arma los reportes a partir de snapshots read-only de las colecciones.
type UseCase struct {
	production repository.ProductionRepository
	tasks      repository.TaskRepository
	inventory  repository.InventoryRepository
	pdf        DocumentGenerator
}

// NewUseCase construye el exportador.
func NewUseCase(
	production repository.ProductionRepository,
	tasks repository.TaskRepository,
	inventory repository.InventoryRepository,
	pdf DocumentGenerator,
) *UseCase {
	return &UseCase{production: production, tasks: tasks, inventory: inventory, pdf: pdf}
}

// BuildCSV genera el CSV del tipo pedido. Devuelve el nombre de archivo
// sugerido y el contenido.
func (uc *UseCase) BuildCSV(typ Type, rng DateRange) (string, []byte, error) {
	doc, filename, err := uc.buildDocument(typ, rng)
	if err != nil {
		return "", nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(doc.Headers); err != nil {
		return "", nil, fmt.Errorf("reports: escribir cabecera CSV: %w", err)
	}
	if err := w.WriteAll(doc.Rows); err != nil {
		return "", nil, fmt.Errorf("reports: escribir filas CSV: %w", err)
	}
	return filename + ".csv", buf.Bytes(), nil
}

// BuildPDF genera el documento paginado del tipo pedido vía el puerto.
func (uc *UseCase) BuildPDF(ctx context.Context, typ Type, rng DateRange) (string, []byte, error) {
	doc, filename, err := uc.buildDocument(typ, rng)
	if err != nil {
		return "", nil, err
	}
	out, err := uc.pdf.Generate(ctx, doc)
	if err != nil {
		return "", nil, err
	}
	return filename + ".pdf", out, nil
}

// buildDocument arma la tabla del reporte; la comparten CSV y PDF.
func (uc *UseCase) buildDocument(typ Type, rng DateRange) (Document, string, error) {
	switch typ {
	case TypeProduction:
		doc, err := uc.productionDocument(rng)
		return doc, fmt.Sprintf("production_%s_to_%s", rng.Start, rng.End), err
	case TypeTasks:
		doc, err := uc.tasksDocument(rng)
		return doc, fmt.Sprintf("tasks_%s_to_%s", rng.Start, rng.End), err
	case TypeInventory:
		doc, err := uc.inventoryDocument()
		return doc, fmt.Sprintf("inventory_%s", time.Now().Format(dateLayout)), err
	}
	return Document{}, "", domain.ErrInvalidInput
}

func (uc *UseCase) productionDocument(rng DateRange) (Document, error) {
	entries, err := uc.production.List()
	if err != nil {
		return Document{}, err
	}
	rows := [][]string{}
	totalQty := 0
	for _, e := range entries {
		if !rng.contains(e.Date) {
			continue
		}
		rows = append(rows, []string{
			e.Date, e.WorkerName, e.ProductName, strconv.Itoa(e.Quantity), e.Shift,
		})
		totalQty += e.Quantity
	}
	return Document{
		Title: fmt.Sprintf("Production Report (%s to %s)", rng.Start, rng.End),
		Summary: []string{
			fmt.Sprintf("Total Entries: %d", len(rows)),
			fmt.Sprintf("Total Quantity: %d", totalQty),
		},
		Headers: []string{"Date", "Worker", "Product", "Quantity", "Shift"},
		Rows:    rows,
	}, nil
}

func (uc *UseCase) tasksDocument(rng DateRange) (Document, error) {
	tasks, err := uc.tasks.List()
	if err != nil {
		return Document{}, err
	}
	rows := [][]string{}
	completed := 0
	for _, t := range tasks {
		// Las tareas se filtran por el día de su creación.
		day := t.Timestamp.Format(dateLayout)
		if !rng.contains(day) {
			continue
		}
		rows = append(rows, []string{
			t.ProductType, t.AssignedWorkerName, string(t.Status),
			strconv.Itoa(t.EstimatedTime), day,
		})
		if t.Status == workflow.StatusCompleted {
			completed++
		}
	}
	return Document{
		Title: fmt.Sprintf("Tasks Report (%s to %s)", rng.Start, rng.End),
		Summary: []string{
			fmt.Sprintf("Total Tasks: %d", len(rows)),
			fmt.Sprintf("Completed: %d", completed),
		},
		Headers: []string{"Product Type", "Assigned Worker", "Status", "Estimated Time (min)", "Created Date"},
		Rows:    rows,
	}, nil
}

// inventoryDocument no filtra por fecha: el inventario es un snapshot del
// estado actual.
func (uc *UseCase) inventoryDocument() (Document, error) {
	items, err := uc.inventory.List()
	if err != nil {
		return Document{}, err
	}
	rows := [][]string{}
	low := 0
	for _, it := range items {
		rows = append(rows, []string{
			it.ItemName, strconv.Itoa(it.CurrentStock), strconv.Itoa(it.MinStockLevel),
			it.Unit, it.LastUpdated.Format(dateLayout),
		})
		if it.LowStock() {
			low++
		}
	}
	return Document{
		Title: fmt.Sprintf("Inventory Report (%s)", time.Now().Format(dateLayout)),
		Summary: []string{
			fmt.Sprintf("Total Items: %d", len(rows)),
			fmt.Sprintf("Low Stock Items: %d", low),
		},
		Headers: []string{"Item Name", "Current Stock", "Min Stock Level", "Unit", "Last Updated"},
		Rows:    rows,
	}, nil
}
