package usecase

import (
	"context"
	"fmt"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/domain/repository"
)

// TaxonomiaUseCase sirve las tablas de referencia que pueblan los
// selectores del panel.
type TaxonomiaUseCase struct {
	repo repository.TaxonomiaRepository
}

func NewTaxonomiaUseCase(repo repository.TaxonomiaRepository) *TaxonomiaUseCase {
	return &TaxonomiaUseCase{repo: repo}
}

func (uc *TaxonomiaUseCase) Categorias(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := uc.repo.ListCategorias(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, dto.CategoriaResponse{ID: c.ID, Categoria: c.Categoria})
	}
	return out, nil
}

func (uc *TaxonomiaUseCase) Rubros(ctx context.Context) ([]dto.RubroResponse, error) {
	rubros, err := uc.repo.ListRubros(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar rubros: %w", err)
	}
	out := make([]dto.RubroResponse, 0, len(rubros))
	for _, r := range rubros {
		out = append(out, dto.RubroResponse{ID: r.ID, Nombre: r.Nombre})
	}
	return out, nil
}
