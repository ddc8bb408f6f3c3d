package usecase

import (
	"context"
	"fmt"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/domain"
	"github.com/necesito-esto/admin-api/internal/domain/entity"
	"github.com/necesito-esto/admin-api/internal/domain/repository"
	"github.com/necesito-esto/admin-api/pkg/logger"
)

// DemandaUseCase orquesta la moderación de demandas: listado por estado,
// aprobación y rechazo. Aprobar y rechazar disparan el correo de
// notificación al contacto; el correo es best-effort y nunca revierte la
// decisión tomada sobre la demanda.
type DemandaUseCase struct {
	demandas repository.DemandaRepository
	correos  NotificadorDemandas
	log      *logger.Logger
}

// NewDemandaUseCase construye el caso de uso.
func NewDemandaUseCase(demandas repository.DemandaRepository, correos NotificadorDemandas, log *logger.Logger) *DemandaUseCase {
	return &DemandaUseCase{demandas: demandas, correos: correos, log: log}
}

// ListByEstado devuelve las demandas en el estado pedido. Un estado fuera
// del ciclo de vida es error de validación, no una lista vacía.
func (uc *DemandaUseCase) ListByEstado(ctx context.Context, estado string) ([]dto.DemandaResponse, error) {
	if !entity.EstadoValido(estado) {
		return nil, domain.ErrEstadoInvalido
	}
	demandas, err := uc.demandas.ListByEstado(ctx, estado)
	if err != nil {
		return nil, fmt.Errorf("listar demandas: %w", err)
	}
	out := make([]dto.DemandaResponse, 0, len(demandas))
	for _, d := range demandas {
		out = append(out, aDemandaDTO(d))
	}
	return out, nil
}

// GetByID devuelve una demanda puntual.
func (uc *DemandaUseCase) GetByID(ctx context.Context, id int64) (*dto.DemandaResponse, error) {
	d, err := uc.demandas.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener demanda: %w", err)
	}
	if d == nil {
		return nil, domain.ErrDemandaNotFound
	}
	resp := aDemandaDTO(*d)
	return &resp, nil
}

// Aprobar pasa la demanda a 'aprobada' y notifica al contacto. Re-aprobar
// una demanda aprobada es un no-op que vuelve a responder la fila.
func (uc *DemandaUseCase) Aprobar(ctx context.Context, id int64) (*dto.DemandaResponse, error) {
	d, err := uc.demandas.Aprobar(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("aprobar demanda: %w", err)
	}
	if d == nil {
		return nil, domain.ErrDemandaNotFound
	}

	if err := uc.correos.DemandaAceptada(ctx, dto.NotificacionDemandaRequest{
		EmailContacto:        d.EmailContacto,
		ResponsableSolicitud: d.ResponsableSolicitud,
		DemandaID:            d.ID,
		DemandaDetalle:       d.Detalle,
	}); err != nil {
		uc.log.Warn().Err(err).Int64("demanda_id", d.ID).
			Msg("demanda aprobada pero el correo de aceptación falló")
	}

	resp := aDemandaDTO(*d)
	return &resp, nil
}

// Rechazar elimina la demanda y notifica el rechazo con el motivo dado
// (o el motivo fijo de políticas si viene vacío). La demanda se lee antes
// de borrarla para poder armar el correo.
func (uc *DemandaUseCase) Rechazar(ctx context.Context, id int64, motivo string) error {
	d, err := uc.demandas.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("rechazar demanda: %w", err)
	}
	if d == nil {
		return domain.ErrDemandaNotFound
	}

	if err := uc.demandas.Delete(ctx, id); err != nil {
		return fmt.Errorf("rechazar demanda: %w", err)
	}

	if err := uc.correos.DemandaRechazada(ctx, dto.NotificacionDemandaRequest{
		EmailContacto:        d.EmailContacto,
		ResponsableSolicitud: d.ResponsableSolicitud,
		DemandaID:            d.ID,
		DemandaDetalle:       d.Detalle,
		MotivoRechazo:        motivo,
	}); err != nil {
		uc.log.Warn().Err(err).Int64("demanda_id", d.ID).
			Msg("demanda rechazada pero el correo de rechazo falló")
	}
	return nil
}

func aDemandaDTO(d entity.Demanda) dto.DemandaResponse {
	return dto.DemandaResponse{
		ID:                   d.ID,
		Detalle:              d.Detalle,
		FechaInicio:          d.FechaInicio,
		FechaVencimiento:     d.FechaVencimiento,
		Estado:               d.Estado,
		EmailContacto:        d.EmailContacto,
		ResponsableSolicitud: d.ResponsableSolicitud,
		Empresa:              d.Empresa,
		IDCategoria:          d.IDCategoria,
		RubroID:              d.RubroID,
		ProfileID:            d.ProfileID,
	}
}
