package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/application/usecase"
	"github.com/necesito-esto/admin-api/internal/domain"
	"github.com/necesito-esto/admin-api/internal/domain/entity"
)

// DemandaHandler maneja las peticiones de moderación de demandas.
type DemandaHandler struct {
	uc *usecase.DemandaUseCase
}

// NewDemandaHandler construye el handler.
func NewDemandaHandler(uc *usecase.DemandaUseCase) *DemandaHandler {
	return &DemandaHandler{uc: uc}
}

// List GET /api/demandas?estado=pendiente
func (h *DemandaHandler) List(c *fiber.Ctx) error {
	estado := c.Query("estado", entity.EstadoPendiente)
	demandas, err := h.uc.ListByEstado(c.Context(), estado)
	if err != nil {
		if errors.Is(err, domain.ErrEstadoInvalido) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido: debe ser pendiente, aprobada o rechazada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(demandas)
}

// GetByID GET /api/demandas/:id
func (h *DemandaHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	demanda, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDemandaNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "demanda no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(demanda)
}

// Aprobar PUT /api/demandas/:id/aprobar
func (h *DemandaHandler) Aprobar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	demanda, err := h.uc.Aprobar(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDemandaNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "demanda no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(demanda)
}

// Rechazar DELETE /api/demandas/:id
// El cuerpo es opcional: {"motivo_rechazo": "..."}.
func (h *DemandaHandler) Rechazar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.RechazarDemandaRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if err := h.uc.Rechazar(c.Context(), id, in.MotivoRechazo); err != nil {
		if errors.Is(err, domain.ErrDemandaNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "demanda no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensajeResponse{Message: "demanda rechazada y eliminada"})
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return id, nil
}
