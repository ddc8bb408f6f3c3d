// Package correo contiene los casos de uso de notificación por correo:
// los transaccionales de moderación y el envío masivo con throttling.
package correo

import "context"

// Mensaje un correo listo para el relay: destinatario único, asunto y
// cuerpo en HTML con alternativa de texto plano.
type Mensaje struct {
	ParaEmail  string
	ParaNombre string
	Asunto     string
	HTML       string
	Texto      string
}

// Sender puerto hacia el relay de correo (SendGrid en producción).
// Send transporta un mensaje; no reintenta.
type Sender interface {
	Send(ctx context.Context, msg Mensaje) error
}
