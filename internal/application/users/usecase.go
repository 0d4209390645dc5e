// Package users contiene los casos de uso del módulo de usuarios
// (solo accesible con la capacidad manage-users).
package users

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/dwoms-api/internal/application/dto"
	"github.com/tu-usuario/dwoms-api/internal/domain"
	"github.com/tu-usuario/dwoms-api/internal/domain/access"
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	"github.com/tu-usuario/dwoms-api/internal/domain/repository"
)

// UseCase aplica las reglas de negocio de usuarios.
type UseCase struct {
	repo repository.UserRepository
}

// NewUseCase construye el caso de uso con el puerto de persistencia.
func NewUseCase(repo repository.UserRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List devuelve todos los usuarios.
func (uc *UseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, len(users))
	for i := range users {
		out[i] = *toUserResponse(&users[i])
	}
	return out, nil
}

// Workers devuelve solo los usuarios con rol worker (para asignar tareas
// y registrar producción).
func (uc *UseCase) Workers() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := []dto.UserResponse{}
	for i := range users {
		if users[i].Role == access.RoleWorker {
			out = append(out, *toUserResponse(&users[i]))
		}
	}
	return out, nil
}

// Create crea un usuario en nombre de un admin (sin password: la cuenta
// solo puede entrar en modo demo). Devuelve ErrEmailAlreadyExists si el
// email ya existe, con comparación case-insensitive.
func (uc *UseCase) Create(createdBy string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role := access.Role(in.Role)
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	user := entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      role,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(&user); err != nil {
		return nil, err
	}
	return toUserResponse(&user), nil
}

// UpdateRole cambia el rol de un usuario (solo admin).
func (uc *UseCase) UpdateRole(userID string, newRole access.Role) (*dto.UserResponse, error) {
	if !newRole.Valid() {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Role = newRole
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario. La auto-eliminación se rechaza con
// ErrSelfDeletion y la colección queda intacta.
func (uc *UseCase) Delete(actorID, userID string) error {
	if actorID == userID {
		return domain.ErrSelfDeletion
	}
	return uc.repo.Delete(userID)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedBy: u.CreatedBy,
		CreatedAt: u.CreatedAt,
	}
}
