package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado de pago que cuenta para las estadísticas mensuales.
const EstadoPagoCompletado = "completado"

// Pago es un registro de pago asociado a una demanda. Solo lectura en
// este panel: se consolida por demanda y se agrega por mes.
type Pago struct {
	ID          int64
	DemandaID   int64
	Monto       decimal.Decimal
	FechaPago   time.Time
	MetodoPago  string
	EstadoPago  string
	PayerNombre string
	PayerEmail  string
}
