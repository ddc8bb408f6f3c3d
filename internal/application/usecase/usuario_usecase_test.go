package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/application/usecase"
	"github.com/necesito-esto/admin-api/internal/domain"
	"github.com/necesito-esto/admin-api/internal/domain/entity"
	"github.com/necesito-esto/admin-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakePerfiles repositorio de perfiles en memoria.
type fakePerfiles struct {
	perfiles  map[string]entity.Profile
	eliminado string
}

func (f *fakePerfiles) ListAll(ctx context.Context) ([]entity.Profile, error) {
	var out []entity.Profile
	for _, p := range f.perfiles {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePerfiles) ListByIDs(ctx context.Context, ids []string) ([]entity.Profile, error) {
	return nil, nil
}

func (f *fakePerfiles) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	p, ok := f.perfiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePerfiles) UpdateFlags(ctx context.Context, id string, admin, demandaGratis *bool) (*entity.Profile, error) {
	p, ok := f.perfiles[id]
	if !ok {
		return nil, nil
	}
	if admin != nil {
		p.Admin = *admin
	}
	if demandaGratis != nil {
		p.DemandaGratis = *demandaGratis
	}
	f.perfiles[id] = p
	return &p, nil
}

func (f *fakePerfiles) Delete(ctx context.Context, id string) error {
	delete(f.perfiles, id)
	f.eliminado = id
	return nil
}

// fakeTaxonomias solo implementa el lookup de país.
type fakeTaxonomias struct {
	paises map[int64]string
	falla  error
}

func (f *fakeTaxonomias) ListCategorias(ctx context.Context) ([]entity.Categoria, error) {
	return nil, nil
}
func (f *fakeTaxonomias) ListRubros(ctx context.Context) ([]entity.Rubro, error) { return nil, nil }
func (f *fakeTaxonomias) GetPaisNombre(ctx context.Context, id int64) (string, error) {
	if f.falla != nil {
		return "", f.falla
	}
	nombre, ok := f.paises[id]
	if !ok {
		return "", domain.ErrNotFound
	}
	return nombre, nil
}

// fakeTx registra el orden de los pasos de la cascada mediante repos espía.
type fakeTx struct {
	pasos    []string
	fallaEn  string
	ejecuto  bool
	revirtio bool
}

func (f *fakeTx) Run(ctx context.Context, fn func(
	pagoRepo repository.PagoRepository,
	demandaRepo repository.DemandaRepository,
	profileRepo repository.ProfileRepository,
	identityRepo repository.IdentityRepository,
) error) error {
	f.ejecuto = true
	err := fn(
		espiaPagos{tx: f},
		espiaDemandas{tx: f},
		espiaPerfiles{tx: f},
		espiaIdentidades{tx: f},
	)
	if err != nil {
		f.revirtio = true
	}
	return err
}

func (f *fakeTx) paso(nombre string) error {
	if f.fallaEn == nombre {
		return errors.New("falla simulada en " + nombre)
	}
	f.pasos = append(f.pasos, nombre)
	return nil
}

type espiaPagos struct{ tx *fakeTx }

func (e espiaPagos) ListAll(ctx context.Context) ([]entity.Pago, error) {
	return nil, nil
}
func (e espiaPagos) ListByDemanda(ctx context.Context, demandaID int64) ([]entity.Pago, error) {
	return nil, nil
}
func (e espiaPagos) ListConsolidados(ctx context.Context) ([]repository.PagoConsolidado, error) {
	return nil, nil
}
func (e espiaPagos) DeleteByProfile(ctx context.Context, profileID string) error {
	return e.tx.paso("pagos")
}

type espiaDemandas struct{ tx *fakeTx }

func (e espiaDemandas) ListByEstado(ctx context.Context, estado string) ([]entity.Demanda, error) {
	return nil, nil
}
func (e espiaDemandas) GetByID(ctx context.Context, id int64) (*entity.Demanda, error) {
	return nil, nil
}
func (e espiaDemandas) Aprobar(ctx context.Context, id int64) (*entity.Demanda, error) {
	return nil, nil
}
func (e espiaDemandas) Delete(ctx context.Context, id int64) error { return nil }
func (e espiaDemandas) DeleteByProfile(ctx context.Context, profileID string) error {
	return e.tx.paso("demandas")
}

type espiaPerfiles struct{ tx *fakeTx }

func (e espiaPerfiles) ListAll(ctx context.Context) ([]entity.Profile, error) { return nil, nil }
func (e espiaPerfiles) ListByIDs(ctx context.Context, ids []string) ([]entity.Profile, error) {
	return nil, nil
}
func (e espiaPerfiles) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	return nil, nil
}
func (e espiaPerfiles) UpdateFlags(ctx context.Context, id string, admin, demandaGratis *bool) (*entity.Profile, error) {
	return nil, nil
}
func (e espiaPerfiles) Delete(ctx context.Context, id string) error {
	return e.tx.paso("perfil")
}

type espiaIdentidades struct{ tx *fakeTx }

func (e espiaIdentidades) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	return nil, nil
}
func (e espiaIdentidades) Delete(ctx context.Context, id string) error {
	return e.tx.paso("identidad")
}

// fakeNotificadorCuentas registra el correo de despedida.
type fakeNotificadorCuentas struct {
	emails []string
	falla  error
}

func (f *fakeNotificadorCuentas) UsuarioEliminado(ctx context.Context, email, nombre string) error {
	if f.falla != nil {
		return f.falla
	}
	f.emails = append(f.emails, email)
	return nil
}

func nuevoUsuarioUC(perfiles *fakePerfiles, taxonomias *fakeTaxonomias, tx *fakeTx, correos *fakeNotificadorCuentas) *usecase.UsuarioUseCase {
	if taxonomias == nil {
		taxonomias = &fakeTaxonomias{}
	}
	if tx == nil {
		tx = &fakeTx{}
	}
	if correos == nil {
		correos = &fakeNotificadorCuentas{}
	}
	return usecase.NewUsuarioUseCase(perfiles, taxonomias, tx, correos, testLogger())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de listado y búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestList_BusquedaIgnoraTildesYMayusculas(t *testing.T) {
	perfiles := &fakePerfiles{perfiles: map[string]entity.Profile{
		"1": {ID: "1", Nombre: "José", Apellido: "García", Email: "jose@test.com"},
		"2": {ID: "2", Nombre: "Ana", Apellido: "Pérez", Email: "ana@test.com"},
	}}
	uc := nuevoUsuarioUC(perfiles, nil, nil, nil)

	resultado, err := uc.List(context.Background(), "jose")
	require.NoError(t, err)
	require.Len(t, resultado, 1)
	assert.Equal(t, "José", resultado[0].Nombre)

	resultado, err = uc.List(context.Background(), "PÉREZ")
	require.NoError(t, err)
	require.Len(t, resultado, 1)
	assert.Equal(t, "Ana", resultado[0].Nombre)
}

func TestList_BusquedaPorEmpresaYEmail(t *testing.T) {
	perfiles := &fakePerfiles{perfiles: map[string]entity.Profile{
		"1": {ID: "1", Nombre: "Juan", Empresa: "Construcciones Ríos"},
		"2": {ID: "2", Nombre: "Eva", Email: "eva@metalurgica.com"},
	}}
	uc := nuevoUsuarioUC(perfiles, nil, nil, nil)

	resultado, err := uc.List(context.Background(), "rios")
	require.NoError(t, err)
	require.Len(t, resultado, 1)
	assert.Equal(t, "Juan", resultado[0].Nombre)

	resultado, err = uc.List(context.Background(), "metalurgica")
	require.NoError(t, err)
	require.Len(t, resultado, 1)
	assert.Equal(t, "Eva", resultado[0].Nombre)
}

func TestList_SinFiltroDevuelveTodos(t *testing.T) {
	perfiles := &fakePerfiles{perfiles: map[string]entity.Profile{
		"1": {ID: "1"}, "2": {ID: "2"}, "3": {ID: "3"},
	}}
	uc := nuevoUsuarioUC(perfiles, nil, nil, nil)

	resultado, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, resultado, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de actualización de flags
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizarFlags_SoloUnFlag(t *testing.T) {
	perfiles := &fakePerfiles{perfiles: map[string]entity.Profile{
		"u1": {ID: "u1", Admin: false, DemandaGratis: true},
	}}
	uc := nuevoUsuarioUC(perfiles, nil, nil, nil)

	admin := true
	resp, err := uc.ActualizarFlags(context.Background(), dto.ActualizarUsuarioRequest{
		ID:      "u1",
		Updates: dto.UsuarioUpdates{Admin: &admin},
	})
	require.NoError(t, err)

	assert.True(t, resp.Admin)
	assert.True(t, resp.DemandaGratis, "el flag no enviado no se toca")
}

func TestActualizarFlags_SinFlags(t *testing.T) {
	uc := nuevoUsuarioUC(&fakePerfiles{}, nil, nil, nil)

	_, err := uc.ActualizarFlags(context.Background(), dto.ActualizarUsuarioRequest{ID: "u1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActualizarFlags_UsuarioInexistente(t *testing.T) {
	uc := nuevoUsuarioUC(&fakePerfiles{perfiles: map[string]entity.Profile{}}, nil, nil, nil)

	admin := true
	_, err := uc.ActualizarFlags(context.Background(), dto.ActualizarUsuarioRequest{
		ID:      "fantasma",
		Updates: dto.UsuarioUpdates{Admin: &admin},
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de eliminación en cascada
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminar_CascadaEnOrden(t *testing.T) {
	perfiles := &fakePerfiles{perfiles: map[string]entity.Profile{
		"u1": {ID: "u1", Email: "u1@test.com", Nombre: "Carla"},
	}}
	tx := &fakeTx{}
	correos := &fakeNotificadorCuentas{}
	uc := nuevoUsuarioUC(perfiles, nil, tx, correos)

	require.NoError(t, uc.Eliminar(context.Background(), "u1"))

	assert.Equal(t, []string{"pagos", "demandas", "perfil", "identidad"}, tx.pasos,
		"la cascada borra en orden de dependencias")
	require.Len(t, correos.emails, 1)
	assert.Equal(t, "u1@test.com", correos.emails[0])
}

func TestEliminar_FallaIntermediaRevierteTodo(t *testing.T) {
	perfiles := &fakePerfiles{perfiles: map[string]entity.Profile{
		"u1": {ID: "u1", Email: "u1@test.com"},
	}}
	tx := &fakeTx{fallaEn: "perfil"}
	correos := &fakeNotificadorCuentas{}
	uc := nuevoUsuarioUC(perfiles, nil, tx, correos)

	err := uc.Eliminar(context.Background(), "u1")
	require.Error(t, err)

	assert.True(t, tx.revirtio, "un paso fallido revierte la transacción")
	assert.Empty(t, correos.emails, "sin commit no sale el correo de despedida")
}

func TestEliminar_UsuarioInexistente(t *testing.T) {
	tx := &fakeTx{}
	uc := nuevoUsuarioUC(&fakePerfiles{perfiles: map[string]entity.Profile{}}, nil, tx, nil)

	err := uc.Eliminar(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.False(t, tx.ejecuto, "sin perfil no se abre transacción")
}

func TestEliminar_FallaDeCorreoNoRevierte(t *testing.T) {
	perfiles := &fakePerfiles{perfiles: map[string]entity.Profile{
		"u1": {ID: "u1", Email: "u1@test.com"},
	}}
	tx := &fakeTx{}
	correos := &fakeNotificadorCuentas{falla: errors.New("relay caído")}
	uc := nuevoUsuarioUC(perfiles, nil, tx, correos)

	require.NoError(t, uc.Eliminar(context.Background(), "u1"),
		"la eliminación no depende del correo de despedida")
	assert.Len(t, tx.pasos, 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del lookup de país
// ──────────────────────────────────────────────────────────────────────────────

func TestNombrePais_Fallbacks(t *testing.T) {
	taxonomias := &fakeTaxonomias{paises: map[int64]string{10: "Argentina"}}
	uc := nuevoUsuarioUC(&fakePerfiles{}, taxonomias, nil, nil)

	assert.Equal(t, "Argentina", uc.NombrePais(context.Background(), 10).Nombre)
	assert.Equal(t, usecase.PaisNoEspecificado, uc.NombrePais(context.Background(), 0).Nombre)
	assert.Equal(t, usecase.PaisNoEncontrado, uc.NombrePais(context.Background(), 99).Nombre)
}

func TestNombrePais_ErrorDeConsultaSeDegrada(t *testing.T) {
	taxonomias := &fakeTaxonomias{falla: errors.New("conexión perdida")}
	uc := nuevoUsuarioUC(&fakePerfiles{}, taxonomias, nil, nil)

	assert.Equal(t, usecase.PaisErrorCarga, uc.NombrePais(context.Background(), 5).Nombre,
		"un fallo de DB no rompe la ficha del usuario")
}
