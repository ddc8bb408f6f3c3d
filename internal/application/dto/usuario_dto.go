package dto

import "time"

// UsuarioResponse perfil tal como lo consume la tabla de usuarios del panel.
type UsuarioResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Admin         bool      `json:"admin"`
	DemandaGratis bool      `json:"demanda_gratis"`
	Empresa       string    `json:"empresa"`
	PaisID        *int64    `json:"pais_id"`
	Provincia     string    `json:"provincia"`
	Municipio     string    `json:"municipio"`
	Localidad     string    `json:"localidad"`
	Direccion     string    `json:"direccion"`
	CodigoPostal  string    `json:"codigo_postal"`
	CreatedAt     time.Time `json:"created_at"`
}

// UsuarioUpdates flags que el panel puede cambiar; nil = no tocar.
type UsuarioUpdates struct {
	Admin         *bool `json:"admin"`
	DemandaGratis *bool `json:"demanda_gratis"`
}

// ActualizarUsuarioRequest cuerpo de PUT /api/usuarios.
type ActualizarUsuarioRequest struct {
	ID      string         `json:"id"`
	Updates UsuarioUpdates `json:"updates"`
}

// EliminarUsuarioRequest cuerpo de POST /api/usuarios/eliminar.
type EliminarUsuarioRequest struct {
	UserID string `json:"userId"`
}

// PaisResponse respuesta del lookup de país; Nombre trae un texto de
// fallback si el país no existe o la consulta falla.
type PaisResponse struct {
	Nombre string `json:"nombre"`
}
