package dto

// CategoriaResponse fila de GET /api/categorias.
type CategoriaResponse struct {
	ID        int64  `json:"id"`
	Categoria string `json:"categoria"`
}

// RubroResponse fila de GET /api/rubros.
type RubroResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
