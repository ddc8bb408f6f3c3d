package repository

import (
	"context"

	"github.com/necesito-esto/admin-api/internal/domain/entity"
)

// ProfileRepository define el puerto de persistencia para Profile.
type ProfileRepository interface {
	// ListAll devuelve todos los perfiles, registro más reciente primero.
	ListAll(ctx context.Context) ([]entity.Profile, error)
	// ListByIDs resuelve un conjunto de IDs a perfiles; los IDs desconocidos
	// simplemente no aparecen en el resultado.
	ListByIDs(ctx context.Context, ids []string) ([]entity.Profile, error)
	// GetByID devuelve nil, nil si el perfil no existe.
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	// UpdateFlags actualiza únicamente los flags admin y/o demanda_gratis
	// (nil = no tocar) y devuelve la fila actualizada.
	UpdateFlags(ctx context.Context, id string, admin, demandaGratis *bool) (*entity.Profile, error)
	// Delete elimina el perfil. Las filas dependientes deben borrarse antes.
	Delete(ctx context.Context, id string) error
}

// IdentityRepository es el puerto hacia el proveedor de autenticación.
// El panel solo necesita verificar credenciales y borrar identidades al
// eliminar una cuenta; alta y recuperación de contraseña viven fuera.
type IdentityRepository interface {
	// FindByEmail devuelve nil, nil si no existe identidad con ese email.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)
	// Delete elimina la identidad; es el último paso de la cascada.
	Delete(ctx context.Context, id string) error
}
