package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/dwoms-api/internal/application/dto"
	"github.com/tu-usuario/dwoms-api/internal/application/reports"
	"github.com/tu-usuario/dwoms-api/internal/domain"
)

// ReportHandler expone la exportación de reportes en CSV y PDF.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// rangeFromQuery lee start/end; si falta alguno aplica los últimos 30 días.
func rangeFromQuery(c *fiber.Ctx) reports.DateRange {
	rng := reports.DefaultRange()
	if s := c.Query("start"); s != "" {
		rng.Start = s
	}
	if e := c.Query("end"); e != "" {
		rng.End = e
	}
	return rng
}

// CSV godoc
// @Summary      Exportar reporte en CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        type   path   string  true   "production | tasks | inventory"
// @Param        start  query  string  false  "YYYY-MM-DD (default: hace 30 días)"
// @Param        end    query  string  false  "YYYY-MM-DD (default: hoy)"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/{type}/csv [get]
func (h *ReportHandler) CSV(c *fiber.Ctx) error {
	typ, err := reports.ParseType(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_REPORT_TYPE", Message: "tipo de reporte desconocido"})
	}
	filename, data, err := h.uc.BuildCSV(typ, rangeFromQuery(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

// PDF godoc
// @Summary      Exportar reporte en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        type   path   string  true   "production | tasks | inventory"
// @Param        start  query  string  false  "YYYY-MM-DD (default: hace 30 días)"
// @Param        end    query  string  false  "YYYY-MM-DD (default: hoy)"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/{type}/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	typ, err := reports.ParseType(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_REPORT_TYPE", Message: "tipo de reporte desconocido"})
	}
	filename, data, err := h.uc.BuildPDF(c.Context(), typ, rangeFromQuery(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_GENERATION_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
