package correo

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/domain"
	"github.com/necesito-esto/admin-api/internal/domain/entity"
	"github.com/necesito-esto/admin-api/internal/domain/repository"
	"github.com/necesito-esto/admin-api/pkg/logger"
	"golang.org/x/time/rate"
)

// BulkConfig parámetros de un despacho masivo. Hubo tres variantes de este
// endpoint con lotes y timeouts distintos; quedó una sola, configurable.
type BulkConfig struct {
	TamanoLote       int           // envíos concurrentes por lote
	TasaPorSegundo   int           // tokens por segundo del bucket
	Rafaga           int           // burst del bucket
	MaxDestinatarios int           // tope de IDs atendidos por llamada
	Timeout          time.Duration // límite de la operación completa
}

// BulkDispatcher envía un mensaje a un conjunto de perfiles. Los lotes se
// procesan en serie y los envíos dentro de un lote en paralelo; un token
// bucket (no sleeps fijos) mantiene la tasa bajo el techo del relay. No
// persiste estado de entrega entre llamadas.
type BulkDispatcher struct {
	cfg      BulkConfig
	profiles repository.ProfileRepository
	sender   Sender
	limiter  *rate.Limiter
	log      *logger.Logger
}

// NewBulkDispatcher construye el despachador y su token bucket.
func NewBulkDispatcher(cfg BulkConfig, profiles repository.ProfileRepository, sender Sender, log *logger.Logger) *BulkDispatcher {
	if cfg.TamanoLote <= 0 {
		cfg.TamanoLote = 50
	}
	if cfg.TasaPorSegundo <= 0 {
		cfg.TasaPorSegundo = 10
	}
	if cfg.Rafaga <= 0 {
		cfg.Rafaga = cfg.TasaPorSegundo
	}
	if cfg.MaxDestinatarios <= 0 {
		cfg.MaxDestinatarios = 500
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}
	return &BulkDispatcher{
		cfg:      cfg,
		profiles: profiles,
		sender:   sender,
		limiter:  rate.NewLimiter(rate.Limit(cfg.TasaPorSegundo), cfg.Rafaga),
		log:      log,
	}
}

// Enviar resuelve los IDs a perfiles y despacha un mensaje por destinatario.
// Las fallas por destinatario se acumulan y no abortan el lote. Si el
// tiempo se agota la llamada corta, reporta lo enviado y deja en Restantes
// lo que no llegó a intentarse; Enviar no devuelve error en ese caso
// (TiempoAgotado distingue la respuesta).
func (d *BulkDispatcher) Enviar(ctx context.Context, in dto.EnvioMasivoRequest) (*dto.EnvioMasivoResponse, error) {
	if in.Asunto == "" || in.Mensaje == "" || len(in.UsuariosIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	ids := in.UsuariosIDs
	restantes := 0
	if len(ids) > d.cfg.MaxDestinatarios {
		restantes = len(ids) - d.cfg.MaxDestinatarios
		ids = ids[:d.cfg.MaxDestinatarios]
	}

	perfiles, err := d.profiles.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(perfiles) == 0 {
		return nil, domain.ErrSinDestinatarios
	}

	html, err := renderMasivo(in.Mensaje)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	resp := &dto.EnvioMasivoResponse{
		EnvioID:   uuid.New().String(),
		Total:     len(perfiles),
		Restantes: restantes,
		Errores:   []dto.ErrorEnvio{},
	}

	d.log.Info().
		Str("envio_id", resp.EnvioID).
		Int("destinatarios", len(perfiles)).
		Int("no_atendidos", restantes).
		Msg("iniciando envío masivo")

	var mu sync.Mutex // protege los contadores y la lista de errores

lotes:
	for inicio := 0; inicio < len(perfiles); inicio += d.cfg.TamanoLote {
		if ctx.Err() != nil {
			break lotes
		}
		fin := inicio + d.cfg.TamanoLote
		if fin > len(perfiles) {
			fin = len(perfiles)
		}

		var wg sync.WaitGroup
		for _, p := range perfiles[inicio:fin] {
			wg.Add(1)
			go func(p entity.Profile) {
				defer wg.Done()
				if err := d.limiter.Wait(ctx); err != nil {
					// Deadline durante la espera del token: el destinatario
					// queda sin intentar y cuenta como restante.
					return
				}
				sendErr := d.sender.Send(ctx, Mensaje{
					ParaEmail:  p.Email,
					ParaNombre: p.NombreCompleto(),
					Asunto:     in.Asunto,
					HTML:       html,
					Texto:      in.Mensaje,
				})
				mu.Lock()
				defer mu.Unlock()
				if sendErr != nil && !errors.Is(sendErr, context.DeadlineExceeded) {
					resp.Errores = append(resp.Errores, dto.ErrorEnvio{Email: p.Email, Error: sendErr.Error()})
					return
				}
				if sendErr == nil {
					resp.Enviados++
				}
			}(p)
		}
		wg.Wait()
	}

	resp.Fallidos = len(resp.Errores)
	resp.Restantes += resp.Total - resp.Enviados - resp.Fallidos
	resp.TiempoAgotado = ctx.Err() != nil

	evt := d.log.Info()
	if resp.TiempoAgotado || resp.Fallidos > 0 {
		evt = d.log.Warn()
	}
	evt.Str("envio_id", resp.EnvioID).
		Int("enviados", resp.Enviados).
		Int("fallidos", resp.Fallidos).
		Int("restantes", resp.Restantes).
		Bool("tiempo_agotado", resp.TiempoAgotado).
		Msg("envío masivo terminado")

	return resp, nil
}
