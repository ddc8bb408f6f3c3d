package correo_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/necesito-esto/admin-api/internal/application/correo"
	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/domain"
	"github.com/necesito-esto/admin-api/internal/domain/entity"
	"github.com/necesito-esto/admin-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeProfiles resuelve IDs contra un mapa en memoria.
type fakeProfiles struct {
	perfiles map[string]entity.Profile
}

func (f *fakeProfiles) ListAll(ctx context.Context) ([]entity.Profile, error) { return nil, nil }
func (f *fakeProfiles) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	return nil, nil
}
func (f *fakeProfiles) UpdateFlags(ctx context.Context, id string, admin, demandaGratis *bool) (*entity.Profile, error) {
	return nil, nil
}
func (f *fakeProfiles) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeProfiles) ListByIDs(ctx context.Context, ids []string) ([]entity.Profile, error) {
	var out []entity.Profile
	for _, id := range ids {
		if p, ok := f.perfiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeSender cuenta envíos y falla para los emails configurados.
type fakeSender struct {
	mu      sync.Mutex
	envios  []string
	fallan  map[string]bool
	bloquea bool // espera al deadline del contexto antes de responder
}

func (f *fakeSender) Send(ctx context.Context, msg correo.Mensaje) error {
	if f.bloquea {
		<-ctx.Done()
		return ctx.Err()
	}
	f.mu.Lock()
	f.envios = append(f.envios, msg.ParaEmail)
	f.mu.Unlock()
	if f.fallan[msg.ParaEmail] {
		return errors.New("relay rechazó el mensaje")
	}
	return nil
}

func (f *fakeSender) intentos() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.envios)
}

func perfilesDePrueba(n int) (*fakeProfiles, []string) {
	perfiles := make(map[string]entity.Profile, n)
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("id-%02d", i)
		perfiles[id] = entity.Profile{
			ID:     id,
			Email:  fmt.Sprintf("user%02d@test.com", i),
			Nombre: fmt.Sprintf("Usuario %02d", i),
		}
		ids = append(ids, id)
	}
	return &fakeProfiles{perfiles: perfiles}, ids
}

func nuevoDispatcher(cfg correo.BulkConfig, profiles *fakeProfiles, sender *fakeSender) *correo.BulkDispatcher {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return correo.NewBulkDispatcher(cfg, profiles, sender, log)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestEnviar_TodosLosDestinatariosReciben(t *testing.T) {
	profiles, ids := perfilesDePrueba(7)
	sender := &fakeSender{}
	d := nuevoDispatcher(correo.BulkConfig{TamanoLote: 3, TasaPorSegundo: 1000, Rafaga: 1000}, profiles, sender)

	resp, err := d.Enviar(context.Background(), dto.EnvioMasivoRequest{
		Asunto:      "Aviso",
		Mensaje:     "Hola a todos",
		UsuariosIDs: ids,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, resp.Total)
	assert.Equal(t, 7, resp.Enviados)
	assert.Equal(t, 0, resp.Fallidos)
	assert.Equal(t, 0, resp.Restantes)
	assert.False(t, resp.TiempoAgotado)
	assert.Empty(t, resp.Errores)
	assert.NotEmpty(t, resp.EnvioID, "cada envío debe tener un identificador")
	assert.Equal(t, 7, sender.intentos(), "debe intentarse exactamente un envío por destinatario")
}

func TestEnviar_FallasIndividualesNoAbortanElLote(t *testing.T) {
	profiles, ids := perfilesDePrueba(5)
	sender := &fakeSender{fallan: map[string]bool{"user02@test.com": true}}
	d := nuevoDispatcher(correo.BulkConfig{TasaPorSegundo: 1000, Rafaga: 1000}, profiles, sender)

	resp, err := d.Enviar(context.Background(), dto.EnvioMasivoRequest{
		Asunto:      "Aviso",
		Mensaje:     "Hola",
		UsuariosIDs: ids,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Enviados)
	assert.Equal(t, 1, resp.Fallidos)
	assert.Equal(t, 0, resp.Restantes)
	require.Len(t, resp.Errores, 1)
	assert.Equal(t, "user02@test.com", resp.Errores[0].Email)
	assert.NotEmpty(t, resp.Errores[0].Error, "la falla debe llevar el detalle del relay")
}

func TestEnviar_TopeDeDestinatariosPorLlamada(t *testing.T) {
	profiles, ids := perfilesDePrueba(6)
	sender := &fakeSender{}
	d := nuevoDispatcher(correo.BulkConfig{MaxDestinatarios: 4, TasaPorSegundo: 1000, Rafaga: 1000}, profiles, sender)

	resp, err := d.Enviar(context.Background(), dto.EnvioMasivoRequest{
		Asunto:      "Aviso",
		Mensaje:     "Hola",
		UsuariosIDs: ids,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Total, "solo se atienden los primeros MaxDestinatarios IDs")
	assert.Equal(t, 4, resp.Enviados)
	assert.Equal(t, 2, resp.Restantes, "los IDs fuera del tope quedan como restantes")
	assert.Equal(t, 4, sender.intentos())
}

func TestEnviar_IDsDesconocidosSeOmiten(t *testing.T) {
	profiles, ids := perfilesDePrueba(2)
	sender := &fakeSender{}
	d := nuevoDispatcher(correo.BulkConfig{TasaPorSegundo: 1000, Rafaga: 1000}, profiles, sender)

	resp, err := d.Enviar(context.Background(), dto.EnvioMasivoRequest{
		Asunto:      "Aviso",
		Mensaje:     "Hola",
		UsuariosIDs: append(ids, "no-existe-1", "no-existe-2"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total, "los IDs sin perfil no cuentan en el total")
	assert.Equal(t, 2, resp.Enviados)
}

func TestEnviar_SinDestinatariosResueltos(t *testing.T) {
	profiles := &fakeProfiles{perfiles: map[string]entity.Profile{}}
	sender := &fakeSender{}
	d := nuevoDispatcher(correo.BulkConfig{TasaPorSegundo: 1000, Rafaga: 1000}, profiles, sender)

	_, err := d.Enviar(context.Background(), dto.EnvioMasivoRequest{
		Asunto:      "Aviso",
		Mensaje:     "Hola",
		UsuariosIDs: []string{"fantasma"},
	})
	assert.ErrorIs(t, err, domain.ErrSinDestinatarios)
}

func TestEnviar_ValidacionDeCampos(t *testing.T) {
	profiles, ids := perfilesDePrueba(1)
	sender := &fakeSender{}
	d := nuevoDispatcher(correo.BulkConfig{TasaPorSegundo: 1000, Rafaga: 1000}, profiles, sender)

	casos := []dto.EnvioMasivoRequest{
		{Asunto: "", Mensaje: "Hola", UsuariosIDs: ids},
		{Asunto: "Aviso", Mensaje: "", UsuariosIDs: ids},
		{Asunto: "Aviso", Mensaje: "Hola", UsuariosIDs: nil},
	}
	for _, caso := range casos {
		_, err := d.Enviar(context.Background(), caso)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Zero(t, sender.intentos(), "una petición inválida no debe tocar el relay")
}

func TestEnviar_TiempoAgotadoReportaParcial(t *testing.T) {
	profiles, ids := perfilesDePrueba(4)
	sender := &fakeSender{bloquea: true}
	d := nuevoDispatcher(correo.BulkConfig{
		TamanoLote:     1,
		TasaPorSegundo: 1000,
		Rafaga:         1000,
		Timeout:        50 * time.Millisecond,
	}, profiles, sender)

	resp, err := d.Enviar(context.Background(), dto.EnvioMasivoRequest{
		Asunto:      "Aviso",
		Mensaje:     "Hola",
		UsuariosIDs: ids,
	})
	require.NoError(t, err, "el timeout no es un error de la operación; se reporta en la respuesta")

	assert.True(t, resp.TiempoAgotado)
	assert.Equal(t, 0, resp.Enviados)
	assert.Equal(t, 0, resp.Fallidos, "los cortes por deadline no cuentan como falla del destinatario")
	assert.Equal(t, resp.Total, resp.Restantes, "todo lo no enviado queda como restante")
}
