package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/necesito-esto/admin-api/internal/application/auth"
	"github.com/necesito-esto/admin-api/internal/application/correo"
	"github.com/necesito-esto/admin-api/internal/application/estadisticas"
	"github.com/necesito-esto/admin-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	DemandaUC      *usecase.DemandaUseCase
	UsuarioUC      *usecase.UsuarioUseCase
	PagoUC         *usecase.PagoUseCase
	TaxonomiaUC    *usecase.TaxonomiaUseCase
	EstadisticasUC *estadisticas.SnapshotUseCase
	Notificador    *correo.Notificador
	BulkDispatcher *correo.BulkDispatcher
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, /me protegido)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Todo lo demás requiere Bearer Token de un perfil admin
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireAdmin())

	protected.Get("/auth/me", authHandler.Me)

	// Estadísticas
	estadisticasHandler := NewEstadisticasHandler(deps.EstadisticasUC)
	protected.Get("/estadisticas", estadisticasHandler.Snapshot)

	// Demandas (moderación) y sus pagos
	demandas := protected.Group("/demandas")
	demandaHandler := NewDemandaHandler(deps.DemandaUC)
	pagoHandler := NewPagoHandler(deps.PagoUC)
	demandas.Get("/", demandaHandler.List)
	demandas.Get("/:id", demandaHandler.GetByID)
	demandas.Get("/:id/pagos", pagoHandler.PorDemanda)
	demandas.Put("/:id/aprobar", demandaHandler.Aprobar)
	demandas.Delete("/:id", demandaHandler.Rechazar)

	// Usuarios
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Put("/", usuarioHandler.Actualizar)
	usuarios.Post("/eliminar", usuarioHandler.Eliminar)
	protected.Get("/paises/:id", usuarioHandler.Pais)

	// Pagos
	pagos := protected.Group("/pagos")
	pagos.Get("/consolidados", pagoHandler.Consolidados)
	pagos.Get("/reporte", pagoHandler.Reporte)

	// Taxonomías
	taxonomiaHandler := NewTaxonomiaHandler(deps.TaxonomiaUC)
	protected.Get("/categorias", taxonomiaHandler.Categorias)
	protected.Get("/rubros", taxonomiaHandler.Rubros)

	// Correos
	correos := protected.Group("/correos")
	correoHandler := NewCorreoHandler(deps.Notificador, deps.BulkDispatcher)
	correos.Post("/masivo", correoHandler.Masivo)
	correos.Post("/aceptada", correoHandler.Aceptada)
	correos.Post("/rechazada", correoHandler.Rechazada)
	correos.Post("/usuario-eliminado", correoHandler.UsuarioEliminado)
}
