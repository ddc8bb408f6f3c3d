package correo

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/domain"
)

// MotivoRechazoPorDefecto se usa cuando la moderación rechaza sin detallar
// un motivo propio.
const MotivoRechazoPorDefecto = "Incumplimiento de las políticas de publicación."

// Notificador envía los correos transaccionales de moderación. Cada envío
// es un solo mensaje; los llamadores que lo usan best-effort deben tratar
// el error como no fatal.
type Notificador struct {
	sender Sender
}

// NewNotificador construye el caso de uso con el puerto de correo.
func NewNotificador(sender Sender) *Notificador {
	return &Notificador{sender: sender}
}

// DemandaAceptada envía el correo de aceptación al contacto de la demanda.
func (n *Notificador) DemandaAceptada(ctx context.Context, in dto.NotificacionDemandaRequest) error {
	if err := validarNotificacion(in); err != nil {
		return err
	}
	html, err := renderAceptada(datosDemanda{
		Responsable: in.ResponsableSolicitud,
		DemandaID:   in.DemandaID,
		Detalle:     in.DemandaDetalle,
	})
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, Mensaje{
		ParaEmail:  in.EmailContacto,
		ParaNombre: in.ResponsableSolicitud,
		Asunto:     fmt.Sprintf("Tu demanda ha sido aceptada - Detalle: %s", in.DemandaDetalle),
		HTML:       html,
		Texto: fmt.Sprintf(
			"¡Buena noticia, %s! Tu demanda #%d (%s) fue aceptada y ya está publicada en el portal.",
			in.ResponsableSolicitud, in.DemandaID, in.DemandaDetalle),
	})
}

// DemandaRechazada envía el correo de rechazo. Si no viene motivo usa el
// motivo fijo de políticas. El asunto lleva el número de demanda (#id).
func (n *Notificador) DemandaRechazada(ctx context.Context, in dto.NotificacionDemandaRequest) error {
	if err := validarNotificacion(in); err != nil {
		return err
	}
	motivo := in.MotivoRechazo
	if motivo == "" {
		motivo = MotivoRechazoPorDefecto
	}
	html, err := renderRechazada(datosDemanda{
		Responsable: in.ResponsableSolicitud,
		DemandaID:   in.DemandaID,
		Detalle:     in.DemandaDetalle,
		Motivo:      motivo,
	})
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, Mensaje{
		ParaEmail:  in.EmailContacto,
		ParaNombre: in.ResponsableSolicitud,
		Asunto:     fmt.Sprintf("Demanda rechazada - #%d", in.DemandaID),
		HTML:       html,
		Texto: fmt.Sprintf(
			"Hola %s, tu demanda #%d (%s) fue rechazada. Motivo: %s",
			in.ResponsableSolicitud, in.DemandaID, in.DemandaDetalle, motivo),
	})
}

// UsuarioEliminado notifica la eliminación permanente de una cuenta.
func (n *Notificador) UsuarioEliminado(ctx context.Context, email, nombre string) error {
	if email == "" || nombre == "" {
		return domain.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.ErrInvalidEmail
	}
	html, err := renderUsuarioEliminado(nombre)
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, Mensaje{
		ParaEmail:  email,
		ParaNombre: nombre,
		Asunto:     "Tu cuenta ha sido eliminada",
		HTML:       html,
		Texto: fmt.Sprintf(
			"Hola %s, tu cuenta fue eliminada permanentemente por incumplimiento de las políticas de la comunidad.",
			nombre),
	})
}

func validarNotificacion(in dto.NotificacionDemandaRequest) error {
	if in.EmailContacto == "" || in.ResponsableSolicitud == "" || in.DemandaID == 0 || in.DemandaDetalle == "" {
		return domain.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(in.EmailContacto); err != nil {
		return domain.ErrInvalidEmail
	}
	return nil
}
