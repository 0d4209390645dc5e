package repository

import "github.com/tu-usuario/dwoms-api/internal/domain/entity"

// UserRepository puerto de persistencia de la colección de usuarios.
// FindByEmail compara case-insensitive (el email es único bajo esa regla).
type UserRepository interface {
	List() ([]entity.User, error)
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Create(user *entity.User) error
	Update(user *entity.User) error
	Delete(id string) error
}
