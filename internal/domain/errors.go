package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todos son recuperables:
// se devuelven al cliente como acción rechazada, nunca tumban el proceso.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autenticado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrSelfDeletion       = errors.New("un usuario no puede eliminar su propia cuenta")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
)
