package correo

import (
	"bytes"
	"fmt"
	htmltmpl "html/template"
	"strings"
)

// Plantillas HTML de los correos del panel. Se parsean una sola vez al
// cargar el paquete; un error aquí es un bug de compilación de plantilla
// y debe reventar en el arranque.
var (
	tmplAceptada = htmltmpl.Must(htmltmpl.New("aceptada").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">¡Buena noticia, {{.Responsable}}!</h2>
  <p>Tu demanda ha sido revisada y aceptada por nuestro equipo.</p>
  <div style="background-color: #f3f4f6; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <p><strong>ID de Demanda:</strong> {{.DemandaID}}</p>
    <p><strong>Detalle:</strong> {{.Detalle}}</p>
  </div>
  <p>Ahora está disponible en nuestro portal de demandas para que los proveedores interesados puedan contactarte.</p>
  <p style="margin-top: 30px;">Atentamente,</p>
  <p><strong>Equipo de Administración</strong></p>
</div>`))

	tmplRechazada = htmltmpl.Must(htmltmpl.New("rechazada").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #dc3545;">Notificación de demanda rechazada</h2>
  <p>Hola {{.Responsable}},</p>
  <p>Lamentamos informarte que tu demanda ha sido rechazada por no cumplir con nuestros requisitos de publicación.</p>
  <div style="background-color: #f8f9fa; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <p><strong>ID de Demanda:</strong> #{{.DemandaID}}</p>
    <p><strong>Descripción:</strong> {{.Detalle}}</p>
    <p><strong>Motivo de rechazo:</strong> {{.Motivo}}</p>
  </div>
  <p>Puedes revisar nuestros términos y condiciones y volver a enviar la demanda si lo consideras apropiado.</p>
  <p style="margin-top: 30px;">Atentamente,<br><strong>Equipo de Moderación</strong></p>
</div>`))

	tmplUsuarioEliminado = htmltmpl.Must(htmltmpl.New("usuario-eliminado").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #dc3545;">Tu cuenta ha sido eliminada</h2>
  <p>Hola {{.Nombre}},</p>
  <p>Te informamos que tu cuenta ha sido <strong>eliminada permanentemente</strong> debido al incumplimiento reiterado de nuestras normas de uso.</p>
  <div style="background-color: #f8f9fa; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Motivo:</strong> Incumplimiento de las políticas de la comunidad.</p>
    <p><strong>Acción tomada:</strong> Eliminación permanente del perfil.</p>
  </div>
  <p>Si consideras que esta acción ha sido un error, puedes contactarnos para solicitar una revisión.</p>
  <p style="margin-top: 30px;">Atentamente,<br><strong>Equipo de Moderación</strong></p>
  <p style="font-size: 0.9em; color: #888;">Este mensaje es automático, por favor no responder.</p>
</div>`))

	tmplMasivo = htmltmpl.Must(htmltmpl.New("masivo").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 30px; color: white; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="margin: 0; font-size: 24px;">Notificación del Sistema</h1>
  </div>
  <div style="background: white; padding: 30px; border: 1px solid #e0e0e0; border-top: none; border-radius: 0 0 10px 10px;">
    {{.Cuerpo}}
  </div>
  <div style="text-align: center; margin-top: 20px; padding: 20px; color: #666; font-size: 12px; border-top: 1px solid #e0e0e0;">
    <p>Este es un correo automático. Por favor no respondas a este mensaje.</p>
    <p>Si tienes alguna pregunta, contacta al administrador del sistema.</p>
  </div>
</div>`))
)

type datosDemanda struct {
	Responsable string
	DemandaID   int64
	Detalle     string
	Motivo      string
}

func renderAceptada(d datosDemanda) (string, error) {
	return render(tmplAceptada, d)
}

func renderRechazada(d datosDemanda) (string, error) {
	return render(tmplRechazada, d)
}

func renderUsuarioEliminado(nombre string) (string, error) {
	return render(tmplUsuarioEliminado, struct{ Nombre string }{nombre})
}

// renderMasivo convierte el mensaje plano del formulario en el cuerpo HTML
// del correo masivo. Los saltos de línea pasan a <br>; el texto se escapa
// antes para que el contenido del admin no inyecte HTML.
func renderMasivo(mensaje string) (string, error) {
	escapado := htmltmpl.HTMLEscapeString(mensaje)
	cuerpo := strings.ReplaceAll(escapado, "\n", "<br>")
	return render(tmplMasivo, struct{ Cuerpo htmltmpl.HTML }{htmltmpl.HTML(cuerpo)})
}

func render(t *htmltmpl.Template, data interface{}) (string, error) {
	var buff bytes.Buffer
	if err := t.Execute(&buff, data); err != nil {
		return "", fmt.Errorf("render plantilla %s: %w", t.Name(), err)
	}
	return buff.String(), nil
}
