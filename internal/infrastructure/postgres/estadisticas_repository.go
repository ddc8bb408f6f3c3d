package postgres

import (
	"context"
	"fmt"

	"github.com/necesito-esto/admin-api/internal/domain/repository"
)

var _ repository.EstadisticasRepository = (*EstadisticasRepo)(nil)

// EstadisticasRepo consultas de solo lectura para el snapshot de uso del
// panel. Toda la agregación se hace en SQL (GROUP BY + COALESCE) para no
// traer tablas completas a memoria.
type EstadisticasRepo struct {
	db DB
}

// NewEstadisticasRepository construye el adaptador de estadísticas.
func NewEstadisticasRepository(db DB) *EstadisticasRepo {
	return &EstadisticasRepo{db: db}
}

// ContarTotales cuenta demandas, categorías, rubros y usuarios en una sola consulta.
func (r *EstadisticasRepo) ContarTotales(ctx context.Context) (repository.Totales, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM demandas)   AS total_demandas,
	    (SELECT COUNT(*) FROM categorias) AS total_categorias,
	    (SELECT COUNT(*) FROM rubros)     AS total_rubros,
	    (SELECT COUNT(*) FROM profile)    AS total_usuarios`

	var t repository.Totales
	err := r.db.QueryRow(ctx, query).Scan(&t.Demandas, &t.Categorias, &t.Rubros, &t.Usuarios)
	if err != nil {
		return repository.Totales{}, fmt.Errorf("estadisticas.ContarTotales: %w", err)
	}
	return t, nil
}

// UsuariosPorMes cuenta registros de perfil por mes calendario del año dado.
// Los meses sin registros no aparecen; el use case rellena los 12 buckets.
func (r *EstadisticasRepo) UsuariosPorMes(ctx context.Context, year int) ([]repository.MesCantidad, error) {
	const query = `
	SELECT EXTRACT(MONTH FROM created_at)::INT AS mes, COUNT(*) AS cantidad
	FROM profile
	WHERE created_at >= make_date($1, 1, 1)
	  AND created_at <  make_date($1 + 1, 1, 1)
	GROUP BY mes
	ORDER BY mes`

	rows, err := r.db.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("estadisticas.UsuariosPorMes: %w", err)
	}
	defer rows.Close()

	var results []repository.MesCantidad
	for rows.Next() {
		var row repository.MesCantidad
		if err := rows.Scan(&row.Mes, &row.Cantidad); err != nil {
			return nil, fmt.Errorf("estadisticas.UsuariosPorMes scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CategoriasMasUsadas devuelve las `limit` categorías más referenciadas por
// las demandas. El LEFT JOIN conserva demandas cuya categoría fue borrada:
// esas filas agrupan bajo el placeholder 'Categoría <id>'.
func (r *EstadisticasRepo) CategoriasMasUsadas(ctx context.Context, limit int) ([]repository.EtiquetaCantidad, error) {
	const query = `
	SELECT
	    COALESCE(c.categoria, 'Categoría ' || d.id_categoria::TEXT) AS etiqueta,
	    COUNT(*) AS cantidad
	FROM demandas d
	LEFT JOIN categorias c ON c.id = d.id_categoria
	WHERE d.id_categoria IS NOT NULL
	GROUP BY etiqueta
	ORDER BY cantidad DESC
	LIMIT $1`

	return r.queryEtiquetas(ctx, query, "CategoriasMasUsadas", limit)
}

// RubrosMasUsados devuelve los `limit` rubros más referenciados por las
// demandas, con el mismo placeholder para rubros borrados.
func (r *EstadisticasRepo) RubrosMasUsados(ctx context.Context, limit int) ([]repository.EtiquetaCantidad, error) {
	const query = `
	SELECT
	    COALESCE(rb.nombre, 'Rubro ' || d.rubro_id::TEXT) AS etiqueta,
	    COUNT(*) AS cantidad
	FROM demandas d
	LEFT JOIN rubros rb ON rb.id = d.rubro_id
	WHERE d.rubro_id IS NOT NULL
	GROUP BY etiqueta
	ORDER BY cantidad DESC
	LIMIT $1`

	return r.queryEtiquetas(ctx, query, "RubrosMasUsados", limit)
}

func (r *EstadisticasRepo) queryEtiquetas(ctx context.Context, query, op string, limit int) ([]repository.EtiquetaCantidad, error) {
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("estadisticas.%s: %w", op, err)
	}
	defer rows.Close()

	var results []repository.EtiquetaCantidad
	for rows.Next() {
		var row repository.EtiquetaCantidad
		if err := rows.Scan(&row.Etiqueta, &row.Cantidad); err != nil {
			return nil, fmt.Errorf("estadisticas.%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// PagosPorMes agrega monto y cantidad de pagos completados por mes del año dado.
func (r *EstadisticasRepo) PagosPorMes(ctx context.Context, year int) ([]repository.MesPago, error) {
	const query = `
	SELECT EXTRACT(MONTH FROM fecha_pago)::INT AS mes,
	       COALESCE(SUM(monto), 0) AS total,
	       COUNT(*) AS cantidad
	FROM pagos
	WHERE estado_pago = 'completado'
	  AND fecha_pago >= make_date($1, 1, 1)
	  AND fecha_pago <  make_date($1 + 1, 1, 1)
	GROUP BY mes
	ORDER BY mes`

	rows, err := r.db.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("estadisticas.PagosPorMes: %w", err)
	}
	defer rows.Close()

	var results []repository.MesPago
	for rows.Next() {
		var row repository.MesPago
		if err := rows.Scan(&row.Mes, &row.Total, &row.Cantidad); err != nil {
			return nil, fmt.Errorf("estadisticas.PagosPorMes scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// DemandasPorEstado devuelve el conteo por valor de estado.
func (r *EstadisticasRepo) DemandasPorEstado(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT estado, COUNT(*) FROM demandas GROUP BY estado`)
	if err != nil {
		return nil, fmt.Errorf("estadisticas.DemandasPorEstado: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var estado string
		var cantidad int64
		if err := rows.Scan(&estado, &cantidad); err != nil {
			return nil, fmt.Errorf("estadisticas.DemandasPorEstado scan: %w", err)
		}
		result[estado] = cantidad
	}
	return result, rows.Err()
}
