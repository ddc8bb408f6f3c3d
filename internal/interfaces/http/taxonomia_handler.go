package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/application/usecase"
)

// TaxonomiaHandler sirve las tablas de referencia del panel.
type TaxonomiaHandler struct {
	uc *usecase.TaxonomiaUseCase
}

// NewTaxonomiaHandler construye el handler.
func NewTaxonomiaHandler(uc *usecase.TaxonomiaUseCase) *TaxonomiaHandler {
	return &TaxonomiaHandler{uc: uc}
}

// Categorias GET /api/categorias
func (h *TaxonomiaHandler) Categorias(c *fiber.Ctx) error {
	categorias, err := h.uc.Categorias(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(categorias)
}

// Rubros GET /api/rubros
func (h *TaxonomiaHandler) Rubros(c *fiber.Ctx) error {
	rubros, err := h.uc.Rubros(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rubros)
}
