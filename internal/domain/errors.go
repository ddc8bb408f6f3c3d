package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrDemandaNotFound  = errors.New("demanda no encontrada")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidEmail     = errors.New("correo electrónico inválido")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrEstadoInvalido   = errors.New("estado de demanda inválido")
	ErrSinDestinatarios = errors.New("no se encontraron destinatarios")
)
