package repository

import "github.com/tu-usuario/dwoms-api/internal/domain/entity"

// SessionRepository puerto de persistencia de sesiones activas.
type SessionRepository interface {
	GetByID(id string) (*entity.Session, error)
	Create(session *entity.Session) error
	Delete(id string) error
}
