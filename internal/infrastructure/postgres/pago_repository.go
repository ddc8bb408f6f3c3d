package postgres

import (
	"context"
	"fmt"

	"github.com/necesito-esto/admin-api/internal/domain/entity"
	"github.com/necesito-esto/admin-api/internal/domain/repository"
)

var _ repository.PagoRepository = (*PagoRepo)(nil)

// PagoRepo consultas de solo lectura sobre pagos, más el borrado en cascada.
type PagoRepo struct {
	db DB
}

// NewPagoRepository construye el adaptador de pagos.
func NewPagoRepository(db DB) *PagoRepo {
	return &PagoRepo{db: db}
}

// ListAll devuelve todos los pagos, más reciente primero. Alimenta el
// armado del consolidado en una sola pasada.
func (r *PagoRepo) ListAll(ctx context.Context) ([]entity.Pago, error) {
	const query = `
	SELECT id, demanda_id, monto, fecha_pago, metodo_pago, estado_pago,
	       payer_nombre, payer_email
	FROM pagos
	ORDER BY fecha_pago DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pagos.ListAll: %w", err)
	}
	defer rows.Close()

	var list []entity.Pago
	for rows.Next() {
		var p entity.Pago
		if err := rows.Scan(
			&p.ID, &p.DemandaID, &p.Monto, &p.FechaPago, &p.MetodoPago,
			&p.EstadoPago, &p.PayerNombre, &p.PayerEmail,
		); err != nil {
			return nil, fmt.Errorf("pagos.ListAll scan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListByDemanda devuelve los pagos de una demanda, más reciente primero.
func (r *PagoRepo) ListByDemanda(ctx context.Context, demandaID int64) ([]entity.Pago, error) {
	const query = `
	SELECT id, demanda_id, monto, fecha_pago, metodo_pago, estado_pago,
	       payer_nombre, payer_email
	FROM pagos
	WHERE demanda_id = $1
	ORDER BY fecha_pago DESC`

	rows, err := r.db.Query(ctx, query, demandaID)
	if err != nil {
		return nil, fmt.Errorf("pagos.ListByDemanda: %w", err)
	}
	defer rows.Close()

	var list []entity.Pago
	for rows.Next() {
		var p entity.Pago
		if err := rows.Scan(
			&p.ID, &p.DemandaID, &p.Monto, &p.FechaPago, &p.MetodoPago,
			&p.EstadoPago, &p.PayerNombre, &p.PayerEmail,
		); err != nil {
			return nil, fmt.Errorf("pagos.ListByDemanda scan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListConsolidados agrupa los pagos por demanda: cantidad, total y fecha
// del último pago. Solo aparecen demandas con al menos un pago.
func (r *PagoRepo) ListConsolidados(ctx context.Context) ([]repository.PagoConsolidado, error) {
	const query = `
	SELECT
	    d.id                    AS demanda_id,
	    d.detalle               AS titulo_demanda,
	    d.responsable_solicitud AS creador,
	    d.email_contacto,
	    d.estado                AS estado_demanda,
	    COUNT(p.id)             AS cantidad_pagos,
	    COALESCE(SUM(p.monto), 0) AS total_pagado,
	    MAX(p.fecha_pago)       AS ultimo_pago
	FROM demandas d
	JOIN pagos p ON p.demanda_id = d.id
	GROUP BY d.id, d.detalle, d.responsable_solicitud, d.email_contacto, d.estado
	ORDER BY MAX(p.fecha_pago) DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pagos.ListConsolidados: %w", err)
	}
	defer rows.Close()

	var results []repository.PagoConsolidado
	for rows.Next() {
		var row repository.PagoConsolidado
		if err := rows.Scan(
			&row.DemandaID, &row.TituloDemanda, &row.Creador, &row.EmailContacto,
			&row.EstadoDemanda, &row.CantidadPagos, &row.TotalPagado, &row.UltimoPago,
		); err != nil {
			return nil, fmt.Errorf("pagos.ListConsolidados scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// DeleteByProfile elimina los pagos de todas las demandas del perfil en un
// solo statement (la versión anterior iteraba demanda por demanda).
func (r *PagoRepo) DeleteByProfile(ctx context.Context, profileID string) error {
	const query = `
	DELETE FROM pagos
	WHERE demanda_id IN (SELECT id FROM demandas WHERE profile_id = $1)`
	if _, err := r.db.Exec(ctx, query, profileID); err != nil {
		return fmt.Errorf("delete pagos del perfil: %w", err)
	}
	return nil
}
