package repository

import (
	"context"

	"github.com/necesito-esto/admin-api/internal/domain/entity"
)

// TaxonomiaRepository acceso de solo lectura a las tablas de referencia.
type TaxonomiaRepository interface {
	ListCategorias(ctx context.Context) ([]entity.Categoria, error)
	ListRubros(ctx context.Context) ([]entity.Rubro, error)
	// GetPaisNombre devuelve domain.ErrNotFound si el país no existe.
	GetPaisNombre(ctx context.Context, id int64) (string, error)
}
