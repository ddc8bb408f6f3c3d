// Package auth implementa el inicio de sesión del staff del panel.
package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/domain"
	"github.com/necesito-esto/admin-api/internal/domain/entity"
	"github.com/necesito-esto/admin-api/internal/domain/repository"
	"github.com/necesito-esto/admin-api/pkg/config"
	"github.com/necesito-esto/admin-api/pkg/jwt"
	"github.com/necesito-esto/admin-api/pkg/logger"
)

// UseCase verifica credenciales contra el proveedor de identidad y emite
// el token de sesión. Solo perfiles con admin=true pueden entrar al panel.
type UseCase struct {
	identities repository.IdentityRepository
	profiles   repository.ProfileRepository
	jwtCfg     config.JWTConfig
	log        *logger.Logger
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(identities repository.IdentityRepository, profiles repository.ProfileRepository, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{identities: identities, profiles: profiles, jwtCfg: jwtCfg, log: log}
}

// Login valida email y contraseña y devuelve el token más el perfil.
// Credenciales malas y cuentas sin perfil responden lo mismo hacia afuera;
// el detalle queda en el log.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	identity, err := uc.identities.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	profile, err := uc.profiles.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if profile == nil {
		uc.log.Warn().Str("user_id", identity.ID).Msg("identidad sin perfil asociado")
		return nil, domain.ErrUnauthorized
	}
	if !profile.Admin {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, profile.Admin, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("login: firmar token: %w", err)
	}

	uc.log.Info().Str("user_id", profile.ID).Msg("inicio de sesión del staff")
	return &dto.LoginResponse{Token: token, Usuario: aUsuario(*profile)}, nil
}

// Me devuelve el perfil del usuario autenticado (claims ya validados por
// el middleware).
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.UsuarioResponse, error) {
	profile, err := uc.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("perfil de sesión: %w", err)
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := aUsuario(*profile)
	return &resp, nil
}

func aUsuario(p entity.Profile) dto.UsuarioResponse {
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
