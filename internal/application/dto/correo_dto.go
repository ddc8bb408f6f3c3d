package dto

// NotificacionDemandaRequest cuerpo de los correos transaccionales de
// moderación (aceptación y rechazo). MotivoRechazo solo aplica al rechazo.
type NotificacionDemandaRequest struct {
	EmailContacto        string `json:"email_contacto"`
	ResponsableSolicitud string `json:"responsable_solicitud"`
	DemandaID            int64  `json:"demanda_id"`
	DemandaDetalle       string `json:"demanda_detalle"`
	MotivoRechazo        string `json:"motivo_rechazo,omitempty"`
}

// UsuarioEliminadoRequest cuerpo de POST /api/correos/usuario-eliminado.
type UsuarioEliminadoRequest struct {
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
}

// EnvioMasivoRequest cuerpo de POST /api/correos/masivo.
type EnvioMasivoRequest struct {
	Asunto      string   `json:"asunto"`
	Mensaje     string   `json:"mensaje"`
	UsuariosIDs []string `json:"usuariosIds"`
}

// ErrorEnvio falla individual de un destinatario del envío masivo.
type ErrorEnvio struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// EnvioMasivoResponse resultado contable de un envío masivo. Restantes
// cuenta destinatarios que esta llamada no intentó (tope por llamada o
// tiempo agotado); el cliente decide si reintenta con un conjunto menor.
type EnvioMasivoResponse struct {
	EnvioID       string       `json:"envio_id"`
	Total         int          `json:"total"`
	Enviados      int          `json:"enviados"`
	Fallidos      int          `json:"fallidos"`
	Restantes     int          `json:"restantes"`
	TiempoAgotado bool         `json:"tiempo_agotado"`
	Errores       []ErrorEnvio `json:"detallesErrores"`
}

// LoginRequest cuerpo de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sesión más el perfil del staff autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
