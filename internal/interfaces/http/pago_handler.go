package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/application/usecase"
	"github.com/necesito-esto/admin-api/internal/domain"
)

// PagoHandler maneja las vistas de pagos del panel (solo lectura).
type PagoHandler struct {
	uc *usecase.PagoUseCase
}

// NewPagoHandler construye el handler.
func NewPagoHandler(uc *usecase.PagoUseCase) *PagoHandler {
	return &PagoHandler{uc: uc}
}

// Consolidados GET /api/pagos/consolidados
func (h *PagoHandler) Consolidados(c *fiber.Ctx) error {
	filas, err := h.uc.Consolidados(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(filas)
}

// PorDemanda GET /api/demandas/:id/pagos
func (h *PagoHandler) PorDemanda(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	pagos, err := h.uc.PorDemanda(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDemandaNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "demanda no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(pagos)
}

// Reporte GET /api/pagos/reporte
// Devuelve el consolidado como PDF descargable.
func (h *PagoHandler) Reporte(c *fiber.Ctx) error {
	pdf, err := h.uc.ReportePDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	nombre := fmt.Sprintf("pagos-consolidados-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(pdf)
}
