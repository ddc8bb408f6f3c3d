package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/necesito-esto/admin-api/internal/domain/entity"
)

// PagoConsolidado resultado crudo de la consulta de pagos agrupados por
// demanda. Lo produce la DB; el use case lo convierte en DTO junto con el
// detalle de pagos.
type PagoConsolidado struct {
	DemandaID     int64
	TituloDemanda string
	Creador       string
	EmailContacto string
	EstadoDemanda string
	CantidadPagos int
	TotalPagado   decimal.Decimal
	UltimoPago    time.Time
}

// PagoRepository define las consultas de solo lectura sobre pagos.
type PagoRepository interface {
	// ListAll devuelve todos los pagos, más reciente primero.
	ListAll(ctx context.Context) ([]entity.Pago, error)
	// ListByDemanda devuelve los pagos de una demanda, más reciente primero.
	ListByDemanda(ctx context.Context, demandaID int64) ([]entity.Pago, error)
	// ListConsolidados devuelve una fila por demanda que tenga pagos.
	ListConsolidados(ctx context.Context) ([]PagoConsolidado, error)
	// DeleteByProfile elimina los pagos de todas las demandas de un perfil
	// (primer paso de la cascada de eliminación de cuenta).
	DeleteByProfile(ctx context.Context, profileID string) error
}
