package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/dwoms-api/internal/application/analytics"
	"github.com/tu-usuario/dwoms-api/internal/application/auth"
	"github.com/tu-usuario/dwoms-api/internal/application/inventory"
	"github.com/tu-usuario/dwoms-api/internal/application/production"
	"github.com/tu-usuario/dwoms-api/internal/application/reports"
	"github.com/tu-usuario/dwoms-api/internal/application/tasks"
	"github.com/tu-usuario/dwoms-api/internal/application/users"
	"github.com/tu-usuario/dwoms-api/internal/domain/access"
	"github.com/tu-usuario/dwoms-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	UserUC       *users.UseCase
	ProductionUC *production.UseCase
	TaskUC       *tasks.UseCase
	InventoryUC  *inventory.UseCase
	ReportUC     *reports.UseCase
	DashboardUC  *analytics.DashboardUseCase
	Sessions     repository.SessionRepository
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token con sesión vigente)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Dashboard (todos los roles lo ven)
	dashboard := protected.Group("/dashboard", RequireCapability(access.CapViewDashboard))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/metrics", dashboardHandler.Metrics)

	// Production: leer exige ver el panel; registrar exige submit-production.
	prodGroup := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.ProductionUC)
	prodGroup.Get("/", RequireCapability(access.CapViewDashboard), productionHandler.List)
	prodGroup.Post("/", RequireCapability(access.CapSubmitProduction), productionHandler.Create)

	// Tasks: todo el módulo exige manage-tasks (admin, supervisor y worker);
	// el caso de uso recorta además la vista del worker y valida la propiedad.
	taskGroup := protected.Group("/tasks", RequireCapability(access.CapManageTasks))
	taskHandler := NewTaskHandler(deps.TaskUC)
	taskGroup.Get("/", taskHandler.List)
	taskGroup.Get("/counts", taskHandler.Counts)
	taskGroup.Post("/", taskHandler.Create)
	taskGroup.Patch("/:id/status", taskHandler.UpdateStatus)

	// Inventory (protegido; mutaciones solo con manage-inventory)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", RequireCapability(access.CapViewDashboard), inventoryHandler.List)
	invGroup.Get("/low-stock", RequireCapability(access.CapViewDashboard), inventoryHandler.LowStock)
	invGroup.Post("/", RequireCapability(access.CapManageInventory), inventoryHandler.Create)
	invGroup.Put("/:id", RequireCapability(access.CapManageInventory), inventoryHandler.Update)
	invGroup.Post("/:id/movements", RequireCapability(access.CapManageInventory), inventoryHandler.Move)
	invGroup.Delete("/:id", RequireCapability(access.CapManageInventory), inventoryHandler.Delete)

	// Reports (protegido)
	reportGroup := protected.Group("/reports", RequireCapability(access.CapViewReports))
	reportHandler := NewReportHandler(deps.ReportUC)
	reportGroup.Get("/:type/csv", reportHandler.CSV)
	reportGroup.Get("/:type/pdf", reportHandler.PDF)

	// Users (solo admin). El listado de workers vive fuera del grupo para
	// que supervisores puedan asignar tareas sin manage-users.
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/workers", RequireCapability(access.CapManageTasks), userHandler.Workers)

	userGroup := protected.Group("/users", RequireCapability(access.CapManageUsers))
	userGroup.Get("/", userHandler.List)
	userGroup.Post("/", userHandler.Create)
	userGroup.Patch("/:id/role", userHandler.UpdateRole)
	userGroup.Delete("/:id", userHandler.Delete)
}
