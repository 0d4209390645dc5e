package entity

import (
	"time"

	"github.com/tu-usuario/dwoms-api/internal/domain/access"
)

// Session sesión autenticada. Se crea en login/registro y se elimina en
// logout; un token JWT cuya sesión ya no existe se rechaza. El rol se
// congela al iniciar sesión: un cambio de rol posterior no afecta a las
// sesiones abiertas.
type Session struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Role      access.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}
