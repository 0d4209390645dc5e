package dto

// DashboardMetricsDTO resumen del dashboard para cualquier rol con
// view-dashboard. Todas las métricas son lecturas agregadas.
type DashboardMetricsDTO struct {
	TotalProduction    int                     `json:"totalProduction"`
	TodayProduction    int                     `json:"todayProduction"`
	ActiveTasks        int                     `json:"activeTasks"` // status distinto de Completed
	CompletedTasks     int                     `json:"completedTasks"`
	LowStockItems      int                     `json:"lowStockItems"`
	WorkerProductivity []WorkerProductivityDTO `json:"workerProductivity"`
}
