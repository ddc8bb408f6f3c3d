package entity

import "time"

// Estados válidos para Demanda.
const (
	EstadoPendiente = "pendiente"
	EstadoAprobada  = "aprobada"
	EstadoRechazada = "rechazada"
)

// EstadoValido reporta si s es uno de los estados del ciclo de vida.
func EstadoValido(s string) bool {
	return s == EstadoPendiente || s == EstadoAprobada || s == EstadoRechazada
}

// Demanda es una solicitud de producto/servicio enviada por un usuario,
// pendiente de moderación. Se crea fuera de este panel; aquí solo se
// aprueba (pendiente -> aprobada) o se elimina (rechazo).
type Demanda struct {
	ID                   int64
	Detalle              string
	FechaInicio          time.Time
	FechaVencimiento     time.Time
	Estado               string // pendiente, aprobada, rechazada
	EmailContacto        string
	ResponsableSolicitud string
	Empresa              string
	IDCategoria          *int64 // nullable: la categoría pudo ser borrada
	RubroID              *int64
	ProfileID            string
}
