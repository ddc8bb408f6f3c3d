package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/application/usecase"
	"github.com/necesito-esto/admin-api/internal/domain"
	"github.com/necesito-esto/admin-api/internal/domain/entity"
	"github.com/necesito-esto/admin-api/internal/domain/repository"
)

// fakePagos repositorio en memoria que cuenta cuántas veces se consulta
// cada vista.
type fakePagos struct {
	consolidados []repository.PagoConsolidado
	pagos        []entity.Pago

	llamadasListAll      int
	llamadasPorDemanda   int
	llamadasConsolidados int
}

func (f *fakePagos) ListAll(ctx context.Context) ([]entity.Pago, error) {
	f.llamadasListAll++
	return f.pagos, nil
}

func (f *fakePagos) ListByDemanda(ctx context.Context, demandaID int64) ([]entity.Pago, error) {
	f.llamadasPorDemanda++
	var out []entity.Pago
	for _, p := range f.pagos {
		if p.DemandaID == demandaID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePagos) ListConsolidados(ctx context.Context) ([]repository.PagoConsolidado, error) {
	f.llamadasConsolidados++
	return f.consolidados, nil
}

func (f *fakePagos) DeleteByProfile(ctx context.Context, profileID string) error { return nil }

// fakeReporte captura las filas que llegan al generador de PDF.
type fakeReporte struct {
	filas []dto.PagoConsolidadoDTO
}

func (f *fakeReporte) Generar(filas []dto.PagoConsolidadoDTO) ([]byte, error) {
	f.filas = filas
	return []byte("%PDF-1.4"), nil
}

func pagoDe(id, demandaID int64, monto int64, fecha time.Time) entity.Pago {
	return entity.Pago{
		ID:         id,
		DemandaID:  demandaID,
		Monto:      decimal.NewFromInt(monto),
		FechaPago:  fecha,
		MetodoPago: "mercadopago",
		EstadoPago: entity.EstadoPagoCompletado,
	}
}

func TestConsolidados_AgrupaDetallePorDemanda(t *testing.T) {
	hoy := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	repo := &fakePagos{
		consolidados: []repository.PagoConsolidado{
			{DemandaID: 1, TituloDemanda: "Compra de maquinaria", CantidadPagos: 2, TotalPagado: decimal.NewFromInt(300)},
			{DemandaID: 2, TituloDemanda: "Servicio de transporte", CantidadPagos: 1, TotalPagado: decimal.NewFromInt(50)},
		},
		pagos: []entity.Pago{
			pagoDe(10, 1, 200, hoy),
			pagoDe(11, 2, 50, hoy.Add(-time.Hour)),
			pagoDe(12, 1, 100, hoy.Add(-2*time.Hour)),
		},
	}
	uc := usecase.NewPagoUseCase(repo, &fakeDemandas{}, &fakeReporte{})

	filas, err := uc.Consolidados(context.Background())
	require.NoError(t, err)
	require.Len(t, filas, 2)

	require.Len(t, filas[0].PagosDetalle, 2)
	assert.Equal(t, int64(10), filas[0].PagosDetalle[0].ID, "el detalle conserva el orden más reciente primero")
	assert.Equal(t, int64(12), filas[0].PagosDetalle[1].ID)

	require.Len(t, filas[1].PagosDetalle, 1)
	assert.Equal(t, int64(11), filas[1].PagosDetalle[0].ID)
}

func TestConsolidados_UnaSolaConsultaDeDetalle(t *testing.T) {
	hoy := time.Now().UTC()
	repo := &fakePagos{
		consolidados: []repository.PagoConsolidado{
			{DemandaID: 1}, {DemandaID: 2}, {DemandaID: 3},
		},
		pagos: []entity.Pago{
			pagoDe(1, 1, 10, hoy),
			pagoDe(2, 2, 20, hoy),
			pagoDe(3, 3, 30, hoy),
		},
	}
	uc := usecase.NewPagoUseCase(repo, &fakeDemandas{}, &fakeReporte{})

	_, err := uc.Consolidados(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.llamadasListAll, "el detalle sale de una única consulta")
	assert.Zero(t, repo.llamadasPorDemanda, "sin consultas por fila")
}

func TestConsolidados_SinFilasNoConsultaDetalle(t *testing.T) {
	repo := &fakePagos{}
	uc := usecase.NewPagoUseCase(repo, &fakeDemandas{}, &fakeReporte{})

	filas, err := uc.Consolidados(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, filas)
	assert.Empty(t, filas)
	assert.Zero(t, repo.llamadasListAll)
}

func TestConsolidados_FilaSinDetalleQuedaListaVacia(t *testing.T) {
	repo := &fakePagos{
		consolidados: []repository.PagoConsolidado{{DemandaID: 9}},
	}
	uc := usecase.NewPagoUseCase(repo, &fakeDemandas{}, &fakeReporte{})

	filas, err := uc.Consolidados(context.Background())
	require.NoError(t, err)
	require.Len(t, filas, 1)

	assert.NotNil(t, filas[0].PagosDetalle, "el detalle vacío serializa como lista, no como nulo")
	assert.Empty(t, filas[0].PagosDetalle)
}

func TestPorDemanda_DemandaInexistente(t *testing.T) {
	uc := usecase.NewPagoUseCase(&fakePagos{}, &fakeDemandas{demandas: map[int64]entity.Demanda{}}, &fakeReporte{})

	_, err := uc.PorDemanda(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrDemandaNotFound)
}

func TestPorDemanda_DemandaSinPagos(t *testing.T) {
	demandas := &fakeDemandas{demandas: map[int64]entity.Demanda{7: demandaPendiente(7)}}
	uc := usecase.NewPagoUseCase(&fakePagos{}, demandas, &fakeReporte{})

	pagos, err := uc.PorDemanda(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, pagos)
	assert.Empty(t, pagos)
}

func TestReportePDF_RecibeElConsolidado(t *testing.T) {
	hoy := time.Now().UTC()
	repo := &fakePagos{
		consolidados: []repository.PagoConsolidado{{DemandaID: 1, TituloDemanda: "Compra de maquinaria"}},
		pagos:        []entity.Pago{pagoDe(1, 1, 100, hoy)},
	}
	reporte := &fakeReporte{}
	uc := usecase.NewPagoUseCase(repo, &fakeDemandas{}, reporte)

	pdf, err := uc.ReportePDF(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, pdf)
	require.Len(t, reporte.filas, 1)
	assert.Equal(t, "Compra de maquinaria", reporte.filas[0].TituloDemanda)
}
