package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PagoDetalleDTO un pago individual dentro del detalle consolidado.
type PagoDetalleDTO struct {
	ID         int64           `json:"id"`
	Monto      decimal.Decimal `json:"monto"`
	FechaPago  time.Time       `json:"fecha_pago"`
	MetodoPago string          `json:"metodo_pago"`
	EstadoPago string          `json:"estado_pago"`
}

// PagoConsolidadoDTO una fila por demanda con pagos: totales más el detalle.
type PagoConsolidadoDTO struct {
	DemandaID     int64            `json:"demanda_id"`
	TituloDemanda string           `json:"titulo_demanda"`
	Creador       string           `json:"creador"`
	EmailContacto string           `json:"email_contacto"`
	CantidadPagos int              `json:"cantidad_pagos"`
	TotalPagado   decimal.Decimal  `json:"total_pagado"`
	UltimoPago    time.Time        `json:"ultimo_pago"`
	EstadoDemanda string           `json:"estado_demanda"`
	PagosDetalle  []PagoDetalleDTO `json:"pagos_detalle"`
}
