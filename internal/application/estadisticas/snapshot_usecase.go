// Package estadisticas contiene el caso de uso del snapshot de uso de la
// plataforma que alimenta la página de inicio del panel.
package estadisticas

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/domain/repository"
)

const topTaxonomias = 10 // tamaño de las listas de categorías/rubros más usados

// SnapshotUseCase arma el snapshot de estadísticas del año en curso.
//
// Fuente de datos: EstadisticasRepository (consultas read-only). Las seis
// consultas corren en paralelo y se juntan antes de responder; el primer
// error aborta el snapshot completo.
type SnapshotUseCase struct {
	repo repository.EstadisticasRepository
}

// NewSnapshotUseCase construye el caso de uso.
func NewSnapshotUseCase(repo repository.EstadisticasRepository) *SnapshotUseCase {
	return &SnapshotUseCase{repo: repo}
}

// Snapshot construye el EstadisticasDTO.
//
// Seis goroutines en paralelo:
//  1. ContarTotales            → totales básicos
//  2. UsuariosPorMes(año)      → 12 buckets de registros
//  3. CategoriasMasUsadas(10)  → top categorías
//  4. RubrosMasUsados(10)      → top rubros
//  5. PagosPorMes(año)         → 12 buckets de pagos completados
//  6. DemandasPorEstado        → mapa estado→conteo
func (uc *SnapshotUseCase) Snapshot(ctx context.Context) (*dto.EstadisticasDTO, error) {
	now := time.Now()
	year := now.Year()

	type totalesResult struct {
		totales repository.Totales
		err     error
	}
	type mesesResult struct {
		meses []repository.MesCantidad
		err   error
	}
	type etiquetasResult struct {
		etiquetas []repository.EtiquetaCantidad
		err       error
	}
	type pagosResult struct {
		meses []repository.MesPago
		err   error
	}
	type estadosResult struct {
		estados map[string]int64
		err     error
	}

	totalesCh := make(chan totalesResult, 1)
	usuariosCh := make(chan mesesResult, 1)
	categoriasCh := make(chan etiquetasResult, 1)
	rubrosCh := make(chan etiquetasResult, 1)
	pagosCh := make(chan pagosResult, 1)
	estadosCh := make(chan estadosResult, 1)

	go func() {
		t, err := uc.repo.ContarTotales(ctx)
		totalesCh <- totalesResult{t, err}
	}()
	go func() {
		m, err := uc.repo.UsuariosPorMes(ctx, year)
		usuariosCh <- mesesResult{m, err}
	}()
	go func() {
		e, err := uc.repo.CategoriasMasUsadas(ctx, topTaxonomias)
		categoriasCh <- etiquetasResult{e, err}
	}()
	go func() {
		e, err := uc.repo.RubrosMasUsados(ctx, topTaxonomias)
		rubrosCh <- etiquetasResult{e, err}
	}()
	go func() {
		m, err := uc.repo.PagosPorMes(ctx, year)
		pagosCh <- pagosResult{m, err}
	}()
	go func() {
		e, err := uc.repo.DemandasPorEstado(ctx)
		estadosCh <- estadosResult{e, err}
	}()

	totales := <-totalesCh
	usuarios := <-usuariosCh
	categorias := <-categoriasCh
	rubros := <-rubrosCh
	pagos := <-pagosCh
	estados := <-estadosCh

	if totales.err != nil {
		return nil, fmt.Errorf("estadisticas: totales: %w", totales.err)
	}
	if usuarios.err != nil {
		return nil, fmt.Errorf("estadisticas: usuarios por mes: %w", usuarios.err)
	}
	if categorias.err != nil {
		return nil, fmt.Errorf("estadisticas: categorías más usadas: %w", categorias.err)
	}
	if rubros.err != nil {
		return nil, fmt.Errorf("estadisticas: rubros más usados: %w", rubros.err)
	}
	if pagos.err != nil {
		return nil, fmt.Errorf("estadisticas: pagos por mes: %w", pagos.err)
	}
	if estados.err != nil {
		return nil, fmt.Errorf("estadisticas: demandas por estado: %w", estados.err)
	}

	snap := &dto.EstadisticasDTO{
		TotalDemandas:       totales.totales.Demandas,
		TotalCategorias:     totales.totales.Categorias,
		TotalRubros:         totales.totales.Rubros,
		TotalUsuarios:       totales.totales.Usuarios,
		UsuariosPorMes:      rellenarMeses(usuarios.meses),
		CategoriasMasUsadas: aCategoriasDTO(categorias.etiquetas),
		RubrosMasUsados:     aRubrosDTO(rubros.etiquetas),
		PagosPorMes:         rellenarMesesPago(pagos.meses),
		DemandasPorEstado:   estados.estados,
		Timestamp:           now.UTC(),
	}
	if snap.DemandasPorEstado == nil {
		snap.DemandasPorEstado = map[string]int64{}
	}
	return snap, nil
}

// rellenarMeses expande las filas dispersas de la DB a los 12 buckets del
// año; los meses sin filas quedan en cero.
func rellenarMeses(filas []repository.MesCantidad) []dto.MesCantidadDTO {
	buckets := make([]dto.MesCantidadDTO, 12)
	for i := range buckets {
		buckets[i].Mes = i + 1
	}
	for _, f := range filas {
		if f.Mes >= 1 && f.Mes <= 12 {
			buckets[f.Mes-1].Cantidad = f.Cantidad
		}
	}
	return buckets
}

func rellenarMesesPago(filas []repository.MesPago) []dto.MesPagoDTO {
	buckets := make([]dto.MesPagoDTO, 12)
	for i := range buckets {
		buckets[i].Mes = i + 1
		buckets[i].Total = decimal.Zero
	}
	for _, f := range filas {
		if f.Mes >= 1 && f.Mes <= 12 {
			buckets[f.Mes-1].Total = f.Total
			buckets[f.Mes-1].Cantidad = f.Cantidad
		}
	}
	return buckets
}

func aCategoriasDTO(filas []repository.EtiquetaCantidad) []dto.CategoriaUsoDTO {
	out := make([]dto.CategoriaUsoDTO, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.CategoriaUsoDTO{Categoria: f.Etiqueta, Cantidad: f.Cantidad})
	}
	return out
}

func aRubrosDTO(filas []repository.EtiquetaCantidad) []dto.RubroUsoDTO {
	out := make([]dto.RubroUsoDTO, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.RubroUsoDTO{Rubro: f.Etiqueta, Cantidad: f.Cantidad})
	}
	return out
}
