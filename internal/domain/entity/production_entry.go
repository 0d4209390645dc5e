package entity

import "time"

// Turnos de trabajo válidos para una entrada de producción.
const (
	ShiftMorning   = "morning"
	ShiftAfternoon = "afternoon"
	ShiftNight     = "night"
)

// ProductionEntry registro de producción de un trabajador. Inmutable una vez
// creado: la colección es append-only, no hay edición ni borrado.
type ProductionEntry struct {
	ID          string    `json:"id"`
	WorkerID    string    `json:"workerId"`
	WorkerName  string    `json:"workerName"` // snapshot al momento de crear; no sigue renombres del usuario
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"` // entero ≥ 0
	Shift       string    `json:"shift"`    // morning | afternoon | night
	Date        string    `json:"date"`     // día calendario YYYY-MM-DD, distinto del timestamp
	Timestamp   time.Time `json:"timestamp"`
}
