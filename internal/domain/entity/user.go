package entity

import (
	"time"

	"github.com/tu-usuario/dwoms-api/internal/domain/access"
)

// User representa un usuario del sistema. Se crea en el registro público o
// por un admin desde el módulo de usuarios; solo un admin puede cambiar el
// rol o eliminar la cuenta (nunca la propia).
//
// Los tags JSON definen la forma persistida en la colección del store.
type User struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"` // único en la colección (comparación case-insensitive)
	Role         access.Role `json:"role"`
	PasswordHash string      `json:"passwordHash,omitempty"` // bcrypt; vacío si lo creó un admin sin password
	CreatedBy    string      `json:"createdBy,omitempty"`    // ID del admin creador; vacío en registro público
	CreatedAt    time.Time   `json:"createdAt"`
}
