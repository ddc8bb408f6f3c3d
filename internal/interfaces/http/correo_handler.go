package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/necesito-esto/admin-api/internal/application/correo"
	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/domain"
)

// CorreoHandler expone los endpoints de notificación: los transaccionales
// de moderación (para reenvíos manuales desde el panel) y el envío masivo.
type CorreoHandler struct {
	notificador *correo.Notificador
	bulk        *correo.BulkDispatcher
}

// NewCorreoHandler construye el handler.
func NewCorreoHandler(notificador *correo.Notificador, bulk *correo.BulkDispatcher) *CorreoHandler {
	return &CorreoHandler{notificador: notificador, bulk: bulk}
}

// Aceptada POST /api/correos/aceptada
func (h *CorreoHandler) Aceptada(c *fiber.Ctx) error {
	var in dto.NotificacionDemandaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.notificador.DemandaAceptada(c.Context(), in); err != nil {
		return respuestaErrorCorreo(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "correo de aceptación enviado"})
}

// Rechazada POST /api/correos/rechazada
func (h *CorreoHandler) Rechazada(c *fiber.Ctx) error {
	var in dto.NotificacionDemandaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.notificador.DemandaRechazada(c.Context(), in); err != nil {
		return respuestaErrorCorreo(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "correo de rechazo enviado"})
}

// UsuarioEliminado POST /api/correos/usuario-eliminado
func (h *CorreoHandler) UsuarioEliminado(c *fiber.Ctx) error {
	var in dto.UsuarioEliminadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.notificador.UsuarioEliminado(c.Context(), in.Email, in.Nombre); err != nil {
		return respuestaErrorCorreo(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "correo de cuenta eliminada enviado"})
}

// Masivo POST /api/correos/masivo
// Si el tiempo se agota antes de atender todos los destinatarios responde
// 408 con el parcial; el cliente reintenta con un conjunto menor.
func (h *CorreoHandler) Masivo(c *fiber.Ctx) error {
	var in dto.EnvioMasivoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.bulk.Enviar(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "asunto, mensaje y usuariosIds son requeridos"})
		case errors.Is(err, domain.ErrSinDestinatarios):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ninguno de los IDs corresponde a un usuario"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	if resp.TiempoAgotado {
		return c.Status(fiber.StatusRequestTimeout).JSON(resp)
	}
	return c.JSON(resp)
}

func respuestaErrorCorreo(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "faltan campos requeridos"})
	case errors.Is(err, domain.ErrInvalidEmail):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email de destino inválido"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
