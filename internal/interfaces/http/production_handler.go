package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/dwoms-api/internal/application/dto"
	"github.com/tu-usuario/dwoms-api/internal/application/production"
	"github.com/tu-usuario/dwoms-api/internal/domain"
	"github.com/tu-usuario/dwoms-api/pkg/validate"
)

// ProductionHandler maneja las entradas de producción (protegido).
type ProductionHandler struct {
	uc *production.UseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.UseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// List godoc
// @Summary      Listar entradas de producción
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        date       query  string  false  "Filtrar por día calendario (YYYY-MM-DD)"
// @Param        worker_id  query  string  false  "Filtrar por trabajador"
// @Success      200  {array}   entity.ProductionEntry
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/production [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	if date := c.Query("date"); date != "" {
		entries, err := h.uc.ListByDate(date)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(entries)
	}
	if workerID := c.Query("worker_id"); workerID != "" {
		entries, err := h.uc.ListByWorker(workerID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(entries)
	}
	entries, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(entries)
}

// Create godoc
// @Summary      Registrar producción del usuario autenticado
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionEntryRequest  true  "productName, quantity, shift, date"
// @Success      201  {object}  entity.ProductionEntry
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/production [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductionEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	entry, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el usuario de la sesión ya no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}
