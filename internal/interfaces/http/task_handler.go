package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/dwoms-api/internal/application/dto"
	"github.com/tu-usuario/dwoms-api/internal/application/tasks"
	"github.com/tu-usuario/dwoms-api/internal/domain"
	"github.com/tu-usuario/dwoms-api/internal/domain/access"
	"github.com/tu-usuario/dwoms-api/internal/domain/workflow"
	"github.com/tu-usuario/dwoms-api/pkg/validate"
)

// TaskHandler maneja las tareas y su flujo de estados (protegido).
type TaskHandler struct {
	uc *tasks.UseCase
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *tasks.UseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// List godoc
// @Summary      Listar tareas visibles para el actor
// @Description  Un worker ve solo sus tareas asignadas; admin y supervisor ven todas.
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   entity.Task
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListFor(GetUserID(c), access.Role(GetRole(c)))
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol no tiene acceso al módulo de tareas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Counts godoc
// @Summary      Totales de tareas por estado
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TaskCountsDTO
// @Router       /api/tasks/counts [get]
func (h *TaskHandler) Counts(c *fiber.Ctx) error {
	counts, err := h.uc.Counts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(counts)
}

// Create godoc
// @Summary      Crear tarea (solo admin/supervisor)
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaskRequest  true  "productType, assignedWorkerId, estimatedTime"
// @Success      201  {object}  entity.Task
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	task, err := h.uc.Create(GetUserID(c), access.Role(GetRole(c)), in)
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo admin y supervisor crean tareas"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "trabajador no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// UpdateStatus godoc
// @Summary      Avanzar el estado de una tarea
// @Description  Solo transiciones del flujo Assigned → In Progress → Quality Check → Completed.
//
//	Un worker solo puede avanzar tareas asignadas a sí mismo.
//
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.UpdateTaskStatusRequest  true  "status destino"
// @Success      200  {object}  entity.Task
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/status [patch]
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	task, err := h.uc.Advance(GetUserID(c), access.Role(GetRole(c)), c.Params("id"), workflow.Status(in.Status))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarea no encontrada"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "un worker solo avanza sus propias tareas"})
		}
		if err == domain.ErrInvalidTransition {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado no permitida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(task)
}
