package kvstore

import (
	"strings"

	"github.com/tu-usuario/dwoms-api/internal/domain"
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	"github.com/tu-usuario/dwoms-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre la colección
// dwoms_users del store.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// List devuelve la colección completa de usuarios.
func (r *UserRepo) List() ([]entity.User, error) {
	users := []entity.User{}
	if err := r.store.Get(KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// FindByEmail busca por email con comparación case-insensitive; nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Create agrega el usuario y reescribe la colección.
func (r *UserRepo) Create(user *entity.User) error {
	users, err := r.List()
	if err != nil {
		return err
	}
	users = append(users, *user)
	return r.store.Set(KeyUsers, users)
}

// Update reemplaza el usuario por ID y reescribe la colección.
func (r *UserRepo) Update(user *entity.User) error {
	users, err := r.List()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			return r.store.Set(KeyUsers, users)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el usuario por ID y reescribe la colección.
func (r *UserRepo) Delete(id string) error {
	users, err := r.List()
	if err != nil {
		return err
	}
	kept := users[:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return domain.ErrNotFound
	}
	return r.store.Set(KeyUsers, kept)
}
