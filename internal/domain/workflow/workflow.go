// Package workflow implementa la máquina de estados del ciclo de vida de una
// tarea de producción. Es el único protocolo con estado del sistema:
//
//	Assigned → In Progress → Quality Check → Completed (terminal)
//
// Los estados solo avanzan hacia adelante, nunca retroceden ni se saltan.
// Una transición siempre es una acción explícita del usuario; el motor nunca
// infiere un estado por tiempo transcurrido ni por disparadores externos.
package workflow

// Status estado de una tarea dentro del flujo fijo.
type Status string

// Estados válidos, en orden de avance.
const (
	StatusAssigned     Status = "Assigned"
	StatusInProgress   Status = "In Progress"
	StatusQualityCheck Status = "Quality Check"
	StatusCompleted    Status = "Completed"
)

// Valid indica si s es uno de los cuatro estados del flujo.
func (s Status) Valid() bool {
	switch s {
	case StatusAssigned, StatusInProgress, StatusQualityCheck, StatusCompleted:
		return true
	}
	return false
}

// Terminal indica si s no admite más transiciones.
func (s Status) Terminal() bool {
	return s == StatusCompleted
}

// NextStatuses devuelve el conjunto de estados a los que se puede avanzar
// desde current. Función pura y total: para Completed (o un estado
// desconocido) devuelve el conjunto vacío.
func NextStatuses(current Status) []Status {
	switch current {
	case StatusAssigned:
		return []Status{StatusInProgress}
	case StatusInProgress:
		return []Status{StatusQualityCheck}
	case StatusQualityCheck:
		return []Status{StatusCompleted}
	default:
		return nil
	}
}

// CanTransition indica si el avance from → to está permitido por el flujo.
func CanTransition(from, to Status) bool {
	for _, s := range NextStatuses(from) {
		if s == to {
			return true
		}
	}
	return false
}
