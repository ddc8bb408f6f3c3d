package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/necesito-esto/admin-api/internal/domain/entity"
	"github.com/necesito-esto/admin-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

const profileColumns = `
	id, email, nombre, apellido, admin, demanda_gratis, empresa, pais_id,
	provincia, municipio, localidad, direccion, codigo_postal, created_at`

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	db DB
}

// NewProfileRepository construye el adaptador de persistencia para perfiles.
func NewProfileRepository(db DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// ListAll devuelve todos los perfiles, registro más reciente primero.
func (r *ProfileRepo) ListAll(ctx context.Context) ([]entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profile ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	return collectProfiles(rows)
}

// ListByIDs resuelve IDs a perfiles; los desconocidos no aparecen.
func (r *ProfileRepo) ListByIDs(ctx context.Context, ids []string) ([]entity.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + profileColumns + ` FROM profile WHERE id = ANY($1)`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list profiles by ids: %w", err)
	}
	defer rows.Close()
	return collectProfiles(rows)
}

// GetByID devuelve nil, nil si el perfil no existe.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profile WHERE id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by id: %w", err)
	}
	return &p, nil
}

// UpdateFlags actualiza solo admin y/o demanda_gratis (nil = no tocar) y
// devuelve la fila actualizada. COALESCE conserva el valor vigente cuando
// el parámetro llega NULL.
func (r *ProfileRepo) UpdateFlags(ctx context.Context, id string, admin, demandaGratis *bool) (*entity.Profile, error) {
	query := `
		UPDATE profile
		SET admin = COALESCE($2, admin), demanda_gratis = COALESCE($3, demanda_gratis)
		WHERE id = $1
		RETURNING ` + profileColumns
	p, err := scanProfile(r.db.QueryRow(ctx, query, id, admin, demandaGratis))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update profile flags: %w", err)
	}
	return &p, nil
}

// Delete elimina el perfil. Las filas dependientes deben borrarse antes.
func (r *ProfileRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM profile WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

func collectProfiles(rows pgx.Rows) ([]entity.Profile, error) {
	var list []entity.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProfile(row pgx.Row) (entity.Profile, error) {
	var p entity.Profile
	err := row.Scan(
		&p.ID, &p.Email, &p.Nombre, &p.Apellido, &p.Admin, &p.DemandaGratis,
		&p.Empresa, &p.PaisID, &p.Provincia, &p.Municipio, &p.Localidad,
		&p.Direccion, &p.CodigoPostal, &p.CreatedAt,
	)
	return p, err
}

// ──────────────────────────────────────────────────────────────────────────────

var _ repository.IdentityRepository = (*IdentityRepo)(nil)

// IdentityRepo adaptador local del proveedor de autenticación: la tabla
// auth_identities guarda email y hash bcrypt por ID de perfil.
type IdentityRepo struct {
	db DB
}

// NewIdentityRepository construye el adaptador de identidades.
func NewIdentityRepository(db DB) *IdentityRepo {
	return &IdentityRepo{db: db}
}

// FindByEmail devuelve nil, nil si no existe identidad con ese email.
func (r *IdentityRepo) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	var ident entity.Identity
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash FROM auth_identities WHERE email = $1 LIMIT 1`, email,
	).Scan(&ident.ID, &ident.Email, &ident.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get identity by email: %w", err)
	}
	return &ident, nil
}

// Delete elimina la identidad; último paso de la cascada.
func (r *IdentityRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM auth_identities WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	return nil
}
