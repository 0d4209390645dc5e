package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/dwoms-api/internal/application/dto"
	"github.com/tu-usuario/dwoms-api/pkg/validate"
)

// La forma acepta los cuatro estados del flujo, incluido Assigned: si la
// transición pedida no es legal, eso lo decide el flujo (409), no la
// validación de entrada (400).
func TestUpdateTaskStatusRequest_AceptaLosCuatroEstados(t *testing.T) {
	for _, status := range []string{"Assigned", "In Progress", "Quality Check", "Completed"} {
		err := validate.Struct(dto.UpdateTaskStatusRequest{Status: status})
		assert.NoError(t, err, "el estado %q debe pasar la validación de forma", status)
	}
}

// Un estado fuera del flujo sí se rechaza en la forma.
func TestUpdateTaskStatusRequest_RechazaEstadoDesconocido(t *testing.T) {
	assert.Error(t, validate.Struct(dto.UpdateTaskStatusRequest{Status: "Archived"}))
	assert.Error(t, validate.Struct(dto.UpdateTaskStatusRequest{Status: ""}))
}
