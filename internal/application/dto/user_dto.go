package dto

import "time"

// SignupRequest entrada del registro público (password en texto, se hashea en el use case).
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin supervisor worker client"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest entrada para que un admin cree un usuario (sin password;
// la cuenta solo puede iniciar sesión mientras el modo demo esté activo).
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin supervisor worker client"`
}

// UpdateRoleRequest entrada para cambiar el rol de un usuario (solo admin).
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin supervisor worker client"`
}

// UserResponse salida de un usuario (nunca incluye el hash de password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// MeResponse usuario autenticado más sus capacidades; el cliente filtra la
// navegación visible con esta lista.
type MeResponse struct {
	User         UserResponse `json:"user"`
	Capabilities []string     `json:"capabilities"`
}
