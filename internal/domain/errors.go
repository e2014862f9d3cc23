package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los rechazos de validación
// del libro de bobinas se envuelven con fmt.Errorf("%w: ...") para llevar el
// detalle que ve el operario (ancla, fin de ventana, candidato, stock).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	// Reglas del subsistema de batching de bobinas.
	ErrQualityLocked         = errors.New("jute quality is locked for this group and cannot be changed")
	ErrBackdatedEntry        = errors.New("backdated entry not allowed")
	ErrWindowClosed          = errors.New("entry outside the 4-hour window")
	ErrIssueBeforeProduction = errors.New("issue date/time must be after the production start of this group")
	ErrInsufficientStock     = errors.New("cannot issue more than current stock")
)
