package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/domain"
	"github.com/necesito-esto/admin-api/internal/domain/entity"
	"github.com/necesito-esto/admin-api/internal/domain/repository"
	"github.com/necesito-esto/admin-api/pkg/logger"
)

// Textos de fallback del lookup de país. El panel prefiere mostrar un
// texto legible antes que propagar un 404/500 por un campo secundario.
const (
	PaisNoEspecificado = "No especificado"
	PaisNoEncontrado   = "No encontrado"
	PaisErrorCarga     = "Error al cargar"
)

// UsuarioUseCase administra los perfiles del marketplace: listado con
// búsqueda, actualización de flags y eliminación en cascada de la cuenta.
type UsuarioUseCase struct {
	profiles repository.ProfileRepository
	paises   repository.TaxonomiaRepository
	tx       TxRunner
	correos  NotificadorCuentas
	log      *logger.Logger
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(
	profiles repository.ProfileRepository,
	paises repository.TaxonomiaRepository,
	tx TxRunner,
	correos NotificadorCuentas,
	log *logger.Logger,
) *UsuarioUseCase {
	return &UsuarioUseCase{profiles: profiles, paises: paises, tx: tx, correos: correos, log: log}
}

// List devuelve los perfiles, opcionalmente filtrados por q contra nombre,
// apellido, email y empresa. La comparación ignora mayúsculas y tildes
// ("jose" encuentra a "José").
func (uc *UsuarioUseCase) List(ctx context.Context, q string) ([]dto.UsuarioResponse, error) {
	perfiles, err := uc.profiles.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}

	out := make([]dto.UsuarioResponse, 0, len(perfiles))
	aguja := normalizarBusqueda(q)
	for _, p := range perfiles {
		if aguja != "" && !coincidePerfil(p, aguja) {
			continue
		}
		out = append(out, aUsuarioDTO(p))
	}
	return out, nil
}

// ActualizarFlags cambia admin y/o demanda_gratis de un perfil. Al menos
// uno de los dos flags debe venir en la petición.
func (uc *UsuarioUseCase) ActualizarFlags(ctx context.Context, in dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Updates.Admin == nil && in.Updates.DemandaGratis == nil {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.profiles.UpdateFlags(ctx, in.ID, in.Updates.Admin, in.Updates.DemandaGratis)
	if err != nil {
		return nil, fmt.Errorf("actualizar usuario: %w", err)
	}
	if p == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := aUsuarioDTO(*p)
	return &resp, nil
}

// Eliminar borra la cuenta completa en una sola transacción, en orden de
// dependencias: pagos de sus demandas, demandas, perfil y por último la
// identidad de autenticación. Si cualquier paso falla no se borra nada.
// El correo de despedida sale después del commit, best-effort.
func (uc *UsuarioUseCase) Eliminar(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrInvalidInput
	}
	p, err := uc.profiles.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("eliminar usuario: %w", err)
	}
	if p == nil {
		return domain.ErrUserNotFound
	}

	err = uc.tx.Run(ctx, func(
		pagoRepo repository.PagoRepository,
		demandaRepo repository.DemandaRepository,
		profileRepo repository.ProfileRepository,
		identityRepo repository.IdentityRepository,
	) error {
		if err := pagoRepo.DeleteByProfile(ctx, userID); err != nil {
			return fmt.Errorf("pagos del perfil: %w", err)
		}
		if err := demandaRepo.DeleteByProfile(ctx, userID); err != nil {
			return fmt.Errorf("demandas del perfil: %w", err)
		}
		if err := profileRepo.Delete(ctx, userID); err != nil {
			return fmt.Errorf("perfil: %w", err)
		}
		if err := identityRepo.Delete(ctx, userID); err != nil {
			return fmt.Errorf("identidad: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("eliminar usuario: %w", err)
	}

	if err := uc.correos.UsuarioEliminado(ctx, p.Email, p.NombreCompleto()); err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).
			Msg("cuenta eliminada pero el correo de notificación falló")
	}

	uc.log.Info().Str("user_id", userID).Msg("cuenta eliminada en cascada")
	return nil
}

// NombrePais resuelve el nombre del país para la ficha del usuario. No
// propaga errores: un país desconocido o una consulta fallida se degradan
// a un texto fijo que el panel muestra tal cual.
func (uc *UsuarioUseCase) NombrePais(ctx context.Context, id int64) dto.PaisResponse {
	if id <= 0 {
		return dto.PaisResponse{Nombre: PaisNoEspecificado}
	}
	nombre, err := uc.paises.GetPaisNombre(ctx, id)
	switch {
	case err == nil:
		return dto.PaisResponse{Nombre: nombre}
	case errors.Is(err, domain.ErrNotFound):
		return dto.PaisResponse{Nombre: PaisNoEncontrado}
	default:
		uc.log.Warn().Err(err).Int64("pais_id", id).Msg("lookup de país falló")
		return dto.PaisResponse{Nombre: PaisErrorCarga}
	}
}

// normalizarBusqueda baja a minúsculas y descarta marcas diacríticas.
func normalizarBusqueda(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plano, _, err := transform.String(t, s)
	if err != nil {
		plano = s
	}
	return strings.ToLower(strings.TrimSpace(plano))
}

func coincidePerfil(p entity.Profile, aguja string) bool {
	for _, campo := range []string{p.Nombre, p.Apellido, p.Email, p.Empresa} {
		if strings.Contains(normalizarBusqueda(campo), aguja) {
			return true
		}
	}
	return false
}

func aUsuarioDTO(p entity.Profile) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:            p.ID,
		Email:         p.Email,
		Nombre:        p.Nombre,
		Apellido:      p.Apellido,
		Admin:         p.Admin,
		DemandaGratis: p.DemandaGratis,
		Empresa:       p.Empresa,
		PaisID:        p.PaisID,
		Provincia:     p.Provincia,
		Municipio:     p.Municipio,
		Localidad:     p.Localidad,
		Direccion:     p.Direccion,
		CodigoPostal:  p.CodigoPostal,
		CreatedAt:     p.CreatedAt,
	}
}
