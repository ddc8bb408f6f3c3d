package entity

import "time"

// Profile es el registro de aplicación de un usuario, distinto de la
// identidad de autenticación a la que está ligado (misma ID).
type Profile struct {
	ID            string // uuid, igual al de la identidad de auth
	Email         string
	Nombre        string
	Apellido      string
	Admin         bool
	DemandaGratis bool
	Empresa       string
	PaisID        *int64
	Provincia     string
	Municipio     string
	Localidad     string
	Direccion     string
	CodigoPostal  string
	CreatedAt     time.Time
}

// NombreCompleto devuelve "Nombre Apellido" sin espacios sobrantes.
func (p Profile) NombreCompleto() string {
	if p.Apellido == "" {
		return p.Nombre
	}
	if p.Nombre == "" {
		return p.Apellido
	}
	return p.Nombre + " " + p.Apellido
}

// Identity son las credenciales de acceso al panel. Vive en el proveedor
// de autenticación; aquí se modela detrás de un puerto para poder borrar
// la identidad al final de la cascada de eliminación.
type Identity struct {
	ID           string // igual a Profile.ID
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
}
