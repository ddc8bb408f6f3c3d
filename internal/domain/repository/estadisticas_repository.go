package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// Totales conteos globales de las tablas principales.
type Totales struct {
	Demandas   int64
	Categorias int64
	Rubros     int64
	Usuarios   int64
}

// MesCantidad cantidad de filas en un mes calendario (1..12).
type MesCantidad struct {
	Mes      int
	Cantidad int64
}

// EtiquetaCantidad frecuencia de una etiqueta de taxonomía entre las
// demandas. Si la categoría/rubro referenciada fue borrada, Etiqueta trae
// el placeholder ("Categoría <id>" / "Rubro <id>") en lugar de excluirse.
type EtiquetaCantidad struct {
	Etiqueta string
	Cantidad int64
}

// MesPago total y cantidad de pagos completados de un mes calendario.
type MesPago struct {
	Mes      int
	Total    decimal.Decimal
	Cantidad int64
}

// EstadisticasRepository define las consultas de lectura del snapshot de
// estadísticas. Las implementaciones son read-only.
type EstadisticasRepository interface {
	// ContarTotales cuenta demandas, categorías, rubros y usuarios.
	ContarTotales(ctx context.Context) (Totales, error)
	// UsuariosPorMes devuelve los meses con registros del año dado; los
	// meses sin filas no aparecen (el use case rellena a 12 buckets).
	UsuariosPorMes(ctx context.Context, year int) ([]MesCantidad, error)
	// CategoriasMasUsadas top `limit` por frecuencia entre demandas.
	CategoriasMasUsadas(ctx context.Context, limit int) ([]EtiquetaCantidad, error)
	// RubrosMasUsados top `limit` por frecuencia entre demandas.
	RubrosMasUsados(ctx context.Context, limit int) ([]EtiquetaCantidad, error)
	// PagosPorMes agrega pagos con estado 'completado' del año dado.
	PagosPorMes(ctx context.Context, year int) ([]MesPago, error)
	// DemandasPorEstado devuelve el conteo por valor de estado.
	DemandasPorEstado(ctx context.Context) (map[string]int64, error)
}
