package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/application/estadisticas"
)

// EstadisticasHandler sirve el snapshot de uso de la plataforma.
type EstadisticasHandler struct {
	uc *estadisticas.SnapshotUseCase
}

// NewEstadisticasHandler construye el handler.
func NewEstadisticasHandler(uc *estadisticas.SnapshotUseCase) *EstadisticasHandler {
	return &EstadisticasHandler{uc: uc}
}

// Snapshot GET /api/estadisticas
// El snapshot es caro (seis consultas); se marca cacheable 5 minutos para
// que el CDN/proxy lo sirva sin volver a la API.
func (h *EstadisticasHandler) Snapshot(c *fiber.Ctx) error {
	snap, err := h.uc.Snapshot(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderCacheControl, "s-maxage=300, stale-while-revalidate")
	return c.JSON(snap)
}
