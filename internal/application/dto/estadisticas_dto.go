package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MesCantidadDTO bucket mensual de conteos (mes 1..12).
type MesCantidadDTO struct {
	Mes      int   `json:"mes"`
	Cantidad int64 `json:"cantidad"`
}

// CategoriaUsoDTO frecuencia de una categoría entre las demandas.
type CategoriaUsoDTO struct {
	Categoria string `json:"categoria"`
	Cantidad  int64  `json:"cantidad"`
}

// RubroUsoDTO frecuencia de un rubro entre las demandas.
type RubroUsoDTO struct {
	Rubro    string `json:"rubro"`
	Cantidad int64  `json:"cantidad"`
}

// MesPagoDTO bucket mensual de pagos completados.
type MesPagoDTO struct {
	Mes      int             `json:"mes"`
	Total    decimal.Decimal `json:"total"`
	Cantidad int64           `json:"cantidad"`
}

// EstadisticasDTO respuesta de GET /api/estadisticas: un snapshot completo
// del uso de la plataforma. Los arreglos mensuales traen siempre 12
// buckets; las listas top-10 nunca son null.
type EstadisticasDTO struct {
	TotalDemandas   int64 `json:"totalDemandas"`
	TotalCategorias int64 `json:"totalCategorias"`
	TotalRubros     int64 `json:"totalRubros"`
	TotalUsuarios   int64 `json:"totalUsuarios"`

	UsuariosPorMes      []MesCantidadDTO  `json:"usuariosPorMes"`
	CategoriasMasUsadas []CategoriaUsoDTO `json:"categoriasMasUsadas"`
	RubrosMasUsados     []RubroUsoDTO     `json:"rubrosMasUsados"`
	PagosPorMes         []MesPagoDTO      `json:"pagosPorMes"`
	DemandasPorEstado   map[string]int64  `json:"demandasPorEstado"`

	Timestamp time.Time `json:"timestamp"`
}
