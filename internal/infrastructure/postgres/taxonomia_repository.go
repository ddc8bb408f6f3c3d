package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/necesito-esto/admin-api/internal/domain"
	"github.com/necesito-esto/admin-api/internal/domain/entity"
	"github.com/necesito-esto/admin-api/internal/domain/repository"
)

var _ repository.TaxonomiaRepository = (*TaxonomiaRepo)(nil)

// TaxonomiaRepo acceso de solo lectura a categorias, rubros y pais.
type TaxonomiaRepo struct {
	db DB
}

// NewTaxonomiaRepository construye el adaptador de tablas de referencia.
func NewTaxonomiaRepository(db DB) *TaxonomiaRepo {
	return &TaxonomiaRepo{db: db}
}

// ListCategorias devuelve todas las categorías ordenadas por nombre.
func (r *TaxonomiaRepo) ListCategorias(ctx context.Context) ([]entity.Categoria, error) {
	rows, err := r.db.Query(ctx, `SELECT id, categoria FROM categorias ORDER BY categoria`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var list []entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Categoria); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ListRubros devuelve todos los rubros ordenados por nombre.
func (r *TaxonomiaRepo) ListRubros(ctx context.Context) ([]entity.Rubro, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nombre FROM rubros ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list rubros: %w", err)
	}
	defer rows.Close()

	var list []entity.Rubro
	for rows.Next() {
		var rb entity.Rubro
		if err := rows.Scan(&rb.ID, &rb.Nombre); err != nil {
			return nil, fmt.Errorf("scan rubro: %w", err)
		}
		list = append(list, rb)
	}
	return list, rows.Err()
}

// GetPaisNombre devuelve domain.ErrNotFound si el país no existe.
func (r *TaxonomiaRepo) GetPaisNombre(ctx context.Context, id int64) (string, error) {
	var nombre string
	err := r.db.QueryRow(ctx, `SELECT nombre FROM pais WHERE id = $1`, id).Scan(&nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get pais: %w", err)
	}
	return nombre, nil
}
