package service

import "errors"

// Sentinel domain errors. Handlers translate these into HTTP status codes;
// anything not in this list is an unexpected failure and surfaces as a
// generic 500 without leaking internals.
//
// Ownership mismatches deliberately reuse the not-found errors so a caller
// cannot distinguish "someone else's reservation" from "no such reservation".
var (
	ErrEscenarioNoEncontrado = errors.New("escenario no encontrado")
	ErrEscenarioInactivo     = errors.New("el escenario no está activo")
	ErrElementoNoEncontrado  = errors.New("elemento no encontrado")
	ErrReservaNoEncontrada   = errors.New("reserva no encontrada")
	ErrElementoNoAsociado    = errors.New("el elemento no está asociado a esta reserva")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")

	ErrFechaOcupada      = errors.New("el escenario ya está reservado para la fecha indicada")
	ErrStockInsuficiente = errors.New("stock insuficiente")
	ErrEstadoInvalido    = errors.New("estado de reserva inválido")
	ErrFechaInvalida     = errors.New("fecha inválida")

	ErrCorreoRegistrado      = errors.New("el correo electrónico ya está registrado")
	ErrCredencialesInvalidas = errors.New("credenciales incorrectas (correo o contraseña)")
	ErrCuentaBloqueada       = errors.New("la cuenta está bloqueada por demasiados intentos fallidos")
	ErrPermisosInsuficientes = errors.New("permisos insuficientes")
)
