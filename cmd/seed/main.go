// seed puebla el almacén local con datos de demostración: un usuario por
// rol, ítems de inventario (uno en stock bajo), tareas en cada estado del
// flujo y una semana de entradas de producción.
//
// Uso: go run ./cmd/seed
// Respeta STORE_PATH (por defecto dwoms.db). Es idempotente por email: si
// ya existe el admin de demo, no vuelve a sembrar.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/dwoms-api/internal/domain/access"
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	"github.com/tu-usuario/dwoms-api/internal/domain/workflow"
	"github.com/tu-usuario/dwoms-api/internal/infrastructure/kvstore"
	"github.com/tu-usuario/dwoms-api/pkg/config"
)

const demoPassword = "demo1234"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	store, err := kvstore.Open(cfg.Store.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "abrir almacén %s: %v\n", cfg.Store.Path, err)
		os.Exit(1)
	}
	defer store.Close()

	userRepo := kvstore.NewUserRepository(store)
	productionRepo := kvstore.NewProductionRepository(store)
	taskRepo := kvstore.NewTaskRepository(store)
	inventoryRepo := kvstore.NewInventoryRepository(store)

	existing, err := userRepo.FindByEmail("admin@dwoms.local")
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar usuarios: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Println("el almacén ya contiene datos de demo; nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar hash: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()

	newUser := func(name, email string, role access.Role) *entity.User {
		return &entity.User{
			ID:           uuid.NewString(),
			Name:         name,
			Email:        email,
			Role:         role,
			PasswordHash: string(hash),
			CreatedAt:    now,
		}
	}

	admin := newUser("Ana Admin", "admin@dwoms.local", access.RoleAdmin)
	supervisor := newUser("Sergio Supervisor", "supervisor@dwoms.local", access.RoleSupervisor)
	worker := newUser("Wendy Worker", "worker@dwoms.local", access.RoleWorker)
	client := newUser("Carlos Cliente", "client@dwoms.local", access.RoleClient)

	for _, u := range []*entity.User{admin, supervisor, worker, client} {
		if err := userRepo.Create(u); err != nil {
			fmt.Fprintf(os.Stderr, "crear usuario %s: %v\n", u.Email, err)
			os.Exit(1)
		}
	}

	items := []*entity.InventoryItem{
		{ID: uuid.NewString(), ItemName: "Tela de algodón", CurrentStock: 120, MinStockLevel: 40, Unit: "m", LastUpdated: now},
		{ID: uuid.NewString(), ItemName: "Hilo poliéster", CurrentStock: 15, MinStockLevel: 20, Unit: "conos", LastUpdated: now}, // stock bajo
		{ID: uuid.NewString(), ItemName: "Botones 12mm", CurrentStock: 800, MinStockLevel: 200, Unit: "uds", LastUpdated: now},
	}
	for _, it := range items {
		if err := inventoryRepo.Create(it); err != nil {
			fmt.Fprintf(os.Stderr, "crear ítem %s: %v\n", it.ItemName, err)
			os.Exit(1)
		}
	}

	completedAt := now.Add(-24 * time.Hour)
	demoTasks := []*entity.Task{
		{Status: workflow.StatusAssigned, ProductType: "Camisa clásica", EstimatedTime: 90},
		{Status: workflow.StatusInProgress, ProductType: "Pantalón cargo", EstimatedTime: 150},
		{Status: workflow.StatusQualityCheck, ProductType: "Chaqueta denim", EstimatedTime: 240},
		{Status: workflow.StatusCompleted, ProductType: "Gorra bordada", EstimatedTime: 45},
	}
	for i, t := range demoTasks {
		t.ID = uuid.NewString()
		t.AssignedWorkerID = worker.ID
		t.AssignedWorkerName = worker.Name
		t.CreatedBy = supervisor.ID
		t.Timestamp = now.AddDate(0, 0, -i)
		if t.Status == workflow.StatusCompleted {
			t.CompletedAt = &completedAt
		}
		if err := taskRepo.Create(t); err != nil {
			fmt.Fprintf(os.Stderr, "crear tarea %s: %v\n", t.ProductType, err)
			os.Exit(1)
		}
	}

	shifts := []string{entity.ShiftMorning, entity.ShiftAfternoon, entity.ShiftNight}
	products := []string{"Camisa clásica", "Pantalón cargo", "Chaqueta denim"}
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, -i)
		entry := &entity.ProductionEntry{
			ID:          uuid.NewString(),
			WorkerID:    worker.ID,
			WorkerName:  worker.Name,
			ProductName: products[i%len(products)],
			Quantity:    20 + i*5,
			Shift:       shifts[i%len(shifts)],
			Date:        day.Format("2006-01-02"),
			Timestamp:   day,
		}
		if err := productionRepo.Create(entry); err != nil {
			fmt.Fprintf(os.Stderr, "crear entrada de producción: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("datos de demo sembrados en %s\n", cfg.Store.Path)
	fmt.Printf("usuarios (password %q): admin@dwoms.local, supervisor@dwoms.local, worker@dwoms.local, client@dwoms.local\n", demoPassword)
}
