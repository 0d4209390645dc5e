// Package access define la matriz de control de acceso por rol: una tabla
// fija de rol → conjunto de capacidades, consultada por el middleware HTTP,
// por el filtrado de navegación y por las mutaciones dentro de cada módulo.
//
// No es un motor de políticas: una tabla cerrada sobre cuatro roles más un
// único refinamiento de propiedad para la mutación de tareas (el rol worker
// solo puede avanzar tareas asignadas a sí mismo).
package access

// Role rol de un usuario del sistema (enum cerrado).
type Role string

// Roles válidos.
const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleWorker     Role = "worker"
	RoleClient     Role = "client"
)

// Valid indica si r es uno de los cuatro roles conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleWorker, RoleClient:
		return true
	}
	return false
}

// Capability acción o vista atómica permitida por rol.
type Capability string

// Capacidades del sistema.
const (
	CapViewDashboard    Capability = "view-dashboard"
	CapSubmitProduction Capability = "submit-production"
	CapManageTasks      Capability = "manage-tasks"
	CapManageInventory  Capability = "manage-inventory"
	CapViewReports      Capability = "view-reports"
	CapManageUsers      Capability = "manage-users"
)

// matrix tabla fija rol → capacidades. El orden de cada fila es el orden en
// que se muestran las entradas de navegación.
var matrix = map[Role][]Capability{
	RoleAdmin: {
		CapViewDashboard, CapSubmitProduction, CapManageTasks,
		CapManageInventory, CapViewReports, CapManageUsers,
	},
	RoleSupervisor: {
		CapViewDashboard, CapSubmitProduction, CapManageTasks,
		CapManageInventory, CapViewReports,
	},
	RoleWorker: {
		CapViewDashboard, CapSubmitProduction, CapManageTasks,
	},
	RoleClient: {
		CapViewDashboard,
	},
}

// Can indica si el rol tiene la capacidad. Lookup puro sobre la tabla;
// un rol desconocido no tiene ninguna capacidad.
func Can(role Role, cap Capability) bool {
	for _, c := range matrix[role] {
		if c == cap {
			return true
		}
	}
	return false
}

// Capabilities devuelve las capacidades del rol (copia; la tabla no se muta).
func Capabilities(role Role) []Capability {
	row := matrix[role]
	out := make([]Capability, len(row))
	copy(out, row)
	return out
}

// CanMutateTask refinamiento de propiedad para el cambio de estado de tareas:
// admin y supervisor pueden avanzar cualquier tarea; worker solo las asignadas
// a sí mismo; client ninguna.
func CanMutateTask(role Role, actorID, assignedWorkerID string) bool {
	switch role {
	case RoleAdmin, RoleSupervisor:
		return true
	case RoleWorker:
		return actorID != "" && actorID == assignedWorkerID
	default:
		return false
	}
}

// CanCreateTask indica si el rol puede crear y asignar tareas.
// Solo admin y supervisor asignan trabajo; worker únicamente lo ejecuta.
func CanCreateTask(role Role) bool {
	return role == RoleAdmin || role == RoleSupervisor
}
