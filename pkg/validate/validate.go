// Package validate centraliza la validación de DTOs de entrada contra sus
// tags `validate:`. Es la "capa de formulario" del sistema: los casos de uso
// asumen entradas ya validadas y no re-validan al crear.
package validate

import "github.com/go-playground/validator/v10"

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida s contra sus tags `validate:`. Devuelve nil si es válido.
func Struct(s interface{}) error {
	return v.Struct(s)
}
