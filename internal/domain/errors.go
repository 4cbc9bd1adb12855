package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrEmptyCart         = errors.New("el carrito está vacío")
	ErrShiftAlreadyOpen  = errors.New("ya existe un turno abierto")
	ErrShiftClosed       = errors.New("el turno ya fue cerrado")
	// ErrDataIntegrity indica una violación de invariante en los datos
	// (ej. más de un turno abierto para el mismo usuario). Nunca se resuelve en silencio.
	ErrDataIntegrity = errors.New("violación de integridad de datos")
)
