package entity

// Categoria taxonomía principal de las demandas.
type Categoria struct {
	ID        int64
	Categoria string
}

// Rubro taxonomía secundaria (rubro comercial).
type Rubro struct {
	ID     int64
	Nombre string
}

// Pais tabla de referencia para el domicilio del perfil.
type Pais struct {
	ID     int64
	Nombre string
}
