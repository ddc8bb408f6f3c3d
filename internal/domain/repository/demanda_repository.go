package repository

import (
	"context"

	"github.com/necesito-esto/admin-api/internal/domain/entity"
)

// DemandaRepository define el puerto de persistencia para Demanda (DIP).
type DemandaRepository interface {
	// ListByEstado devuelve las demandas en el estado dado, más recientes primero.
	ListByEstado(ctx context.Context, estado string) ([]entity.Demanda, error)
	// GetByID devuelve nil, nil si la demanda no existe.
	GetByID(ctx context.Context, id int64) (*entity.Demanda, error)
	// Aprobar fija estado='aprobada' y devuelve la fila actualizada.
	// Es idempotente: aprobar una demanda ya aprobada es un UPDATE sin cambios.
	Aprobar(ctx context.Context, id int64) (*entity.Demanda, error)
	// Delete elimina la demanda (camino de rechazo).
	Delete(ctx context.Context, id int64) error
	// DeleteByProfile elimina todas las demandas de un perfil (cascada).
	DeleteByProfile(ctx context.Context, profileID string) error
}
