package dto

import "time"

// DemandaResponse demanda tal como la consumen las tablas de moderación.
type DemandaResponse struct {
	ID                   int64     `json:"id"`
	Detalle              string    `json:"detalle"`
	FechaInicio          time.Time `json:"fecha_inicio"`
	FechaVencimiento     time.Time `json:"fecha_vencimiento"`
	Estado               string    `json:"estado"`
	EmailContacto        string    `json:"email_contacto"`
	ResponsableSolicitud string    `json:"responsable_solicitud"`
	Empresa              string    `json:"empresa"`
	IDCategoria          *int64    `json:"id_categoria"`
	RubroID              *int64    `json:"rubro_id"`
	ProfileID            string    `json:"profile_id"`
}

// RechazarDemandaRequest cuerpo opcional de DELETE /api/demandas/:id.
// Si MotivoRechazo viene vacío se usa el motivo fijo de políticas.
type RechazarDemandaRequest struct {
	MotivoRechazo string `json:"motivo_rechazo"`
}
