package usecase

import (
	"context"
	"fmt"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/domain"
	"github.com/necesito-esto/admin-api/internal/domain/entity"
	"github.com/necesito-esto/admin-api/internal/domain/repository"
)

// PagoUseCase expone las vistas de pagos del panel: el consolidado por
// demanda, el detalle por demanda y el reporte PDF.
type PagoUseCase struct {
	pagos    repository.PagoRepository
	demandas repository.DemandaRepository
	reporte  GeneradorReportePagos
}

// NewPagoUseCase construye el caso de uso.
func NewPagoUseCase(pagos repository.PagoRepository, demandas repository.DemandaRepository, reporte GeneradorReportePagos) *PagoUseCase {
	return &PagoUseCase{pagos: pagos, demandas: demandas, reporte: reporte}
}

// Consolidados devuelve una fila por demanda con pagos, cada una con sus
// totales y el detalle de pagos individuales. El detalle sale de una sola
// consulta y se agrupa por demanda en memoria, en lugar de una consulta
// por fila.
func (uc *PagoUseCase) Consolidados(ctx context.Context) ([]dto.PagoConsolidadoDTO, error) {
	filas, err := uc.pagos.ListConsolidados(ctx)
	if err != nil {
		return nil, fmt.Errorf("pagos consolidados: %w", err)
	}
	if len(filas) == 0 {
		return []dto.PagoConsolidadoDTO{}, nil
	}

	pagos, err := uc.pagos.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("detalle de pagos: %w", err)
	}
	detallePorDemanda := make(map[int64][]dto.PagoDetalleDTO, len(filas))
	for _, p := range pagos {
		detallePorDemanda[p.DemandaID] = append(detallePorDemanda[p.DemandaID], dto.PagoDetalleDTO{
			ID:         p.ID,
			Monto:      p.Monto,
			FechaPago:  p.FechaPago,
			MetodoPago: p.MetodoPago,
			EstadoPago: p.EstadoPago,
		})
	}

	out := make([]dto.PagoConsolidadoDTO, 0, len(filas))
	for _, f := range filas {
		detalle := detallePorDemanda[f.DemandaID]
		if detalle == nil {
			detalle = []dto.PagoDetalleDTO{}
		}
		out = append(out, dto.PagoConsolidadoDTO{
			DemandaID:     f.DemandaID,
			TituloDemanda: f.TituloDemanda,
			Creador:       f.Creador,
			EmailContacto: f.EmailContacto,
			CantidadPagos: f.CantidadPagos,
			TotalPagado:   f.TotalPagado,
			UltimoPago:    f.UltimoPago,
			EstadoDemanda: f.EstadoDemanda,
			PagosDetalle:  detalle,
		})
	}
	return out, nil
}

// PorDemanda devuelve los pagos de una demanda puntual. La demanda debe
// existir; una demanda sin pagos responde lista vacía.
func (uc *PagoUseCase) PorDemanda(ctx context.Context, demandaID int64) ([]dto.PagoDetalleDTO, error) {
	d, err := uc.demandas.GetByID(ctx, demandaID)
	if err != nil {
		return nil, fmt.Errorf("pagos por demanda: %w", err)
	}
	if d == nil {
		return nil, domain.ErrDemandaNotFound
	}
	pagos, err := uc.pagos.ListByDemanda(ctx, demandaID)
	if err != nil {
		return nil, fmt.Errorf("pagos por demanda: %w", err)
	}
	return aPagosDTO(pagos), nil
}

// ReportePDF arma el consolidado y lo vuelca al reporte PDF.
func (uc *PagoUseCase) ReportePDF(ctx context.Context) ([]byte, error) {
	filas, err := uc.Consolidados(ctx)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.reporte.Generar(filas)
	if err != nil {
		return nil, fmt.Errorf("reporte de pagos: %w", err)
	}
	return pdf, nil
}

func aPagosDTO(pagos []entity.Pago) []dto.PagoDetalleDTO {
	out := make([]dto.PagoDetalleDTO, 0, len(pagos))
	for _, p := range pagos {
		out = append(out, dto.PagoDetalleDTO{
			ID:         p.ID,
			Monto:      p.Monto,
			FechaPago:  p.FechaPago,
			MetodoPago: p.MetodoPago,
			EstadoPago: p.EstadoPago,
		})
	}
	return out
}
