// Package usecase contiene los casos de uso administrativos del panel:
// moderación de demandas, gestión de usuarios, pagos y taxonomías.
package usecase

import (
	"context"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con los repositorios
// ligados a esa transacción. Si fn devuelve error la transacción se
// revierte completa.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		pagoRepo repository.PagoRepository,
		demandaRepo repository.DemandaRepository,
		profileRepo repository.ProfileRepository,
		identityRepo repository.IdentityRepository,
	) error) error
}

// NotificadorDemandas puerto hacia los correos de moderación. Los casos
// de uso lo invocan best-effort: una falla de correo no revierte la
// decisión de moderación.
type NotificadorDemandas interface {
	DemandaAceptada(ctx context.Context, in dto.NotificacionDemandaRequest) error
	DemandaRechazada(ctx context.Context, in dto.NotificacionDemandaRequest) error
}

// NotificadorCuentas puerto hacia el correo de cuenta eliminada.
type NotificadorCuentas interface {
	UsuarioEliminado(ctx context.Context, email, nombre string) error
}

// GeneradorReportePagos produce el reporte PDF de pagos consolidados.
type GeneradorReportePagos interface {
	Generar(filas []dto.PagoConsolidadoDTO) ([]byte, error)
}
