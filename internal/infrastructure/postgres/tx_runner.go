package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/necesito-esto/admin-api/internal/application/usecase"
	"github.com/necesito-esto/admin-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Lo usa
// la cascada de eliminación de cuenta para que pagos, demandas, perfil e
// identidad se borren atómicamente.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	pagoRepo repository.PagoRepository,
	demandaRepo repository.DemandaRepository,
	profileRepo repository.ProfileRepository,
	identityRepo repository.IdentityRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	pagoRepo := NewPagoRepository(tx)
	demandaRepo := NewDemandaRepository(tx)
	profileRepo := NewProfileRepository(tx)
	identityRepo := NewIdentityRepository(tx)

	if err := fn(pagoRepo, demandaRepo, profileRepo, identityRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
