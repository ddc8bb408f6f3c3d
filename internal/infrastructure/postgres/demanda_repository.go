package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/necesito-esto/admin-api/internal/domain/entity"
	"github.com/necesito-esto/admin-api/internal/domain/repository"
)

var _ repository.DemandaRepository = (*DemandaRepo)(nil)

const demandaColumns = `
	id, detalle, fecha_inicio, fecha_vencimiento, estado, email_contacto,
	responsable_solicitud, empresa, id_categoria, rubro_id, profile_id`

// DemandaRepo implementación del puerto DemandaRepository sobre PostgreSQL.
type DemandaRepo struct {
	db DB
}

// NewDemandaRepository construye el adaptador de persistencia para demandas.
func NewDemandaRepository(db DB) *DemandaRepo {
	return &DemandaRepo{db: db}
}

// ListByEstado devuelve las demandas en el estado dado, más recientes primero.
func (r *DemandaRepo) ListByEstado(ctx context.Context, estado string) ([]entity.Demanda, error) {
	query := `SELECT ` + demandaColumns + ` FROM demandas WHERE estado = $1 ORDER BY fecha_inicio DESC, id DESC`
	rows, err := r.db.Query(ctx, query, estado)
	if err != nil {
		return nil, fmt.Errorf("list demandas: %w", err)
	}
	defer rows.Close()

	var list []entity.Demanda
	for rows.Next() {
		d, err := scanDemanda(rows)
		if err != nil {
			return nil, fmt.Errorf("scan demanda: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// GetByID devuelve nil, nil si la demanda no existe.
func (r *DemandaRepo) GetByID(ctx context.Context, id int64) (*entity.Demanda, error) {
	query := `SELECT ` + demandaColumns + ` FROM demandas WHERE id = $1`
	d, err := scanDemanda(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get demanda by id: %w", err)
	}
	return &d, nil
}

// Aprobar fija estado='aprobada' y devuelve la fila actualizada.
// UPDATE idempotente: re-aprobar no cambia nada y devuelve la misma fila.
func (r *DemandaRepo) Aprobar(ctx context.Context, id int64) (*entity.Demanda, error) {
	query := `UPDATE demandas SET estado = 'aprobada' WHERE id = $1 RETURNING ` + demandaColumns
	d, err := scanDemanda(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("aprobar demanda: %w", err)
	}
	return &d, nil
}

// Delete elimina la demanda (camino de rechazo).
func (r *DemandaRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM demandas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete demanda: %w", err)
	}
	return nil
}

// DeleteByProfile elimina todas las demandas de un perfil (cascada).
func (r *DemandaRepo) DeleteByProfile(ctx context.Context, profileID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM demandas WHERE profile_id = $1`, profileID); err != nil {
		return fmt.Errorf("delete demandas del perfil: %w", err)
	}
	return nil
}

// scanDemanda mapea una fila a entity.Demanda (pgx.Row y pgx.Rows comparten Scan).
func scanDemanda(row pgx.Row) (entity.Demanda, error) {
	var d entity.Demanda
	err := row.Scan(
		&d.ID, &d.Detalle, &d.FechaInicio, &d.FechaVencimiento, &d.Estado,
		&d.EmailContacto, &d.ResponsableSolicitud, &d.Empresa,
		&d.IDCategoria, &d.RubroID, &d.ProfileID,
	)
	return d, err
}
