package model

import (
	"time"
)

// EstadoReserva is the closed set of reservation states. Cancellation is not
// a state: cancelling hard-deletes the reservation and its lines.
type EstadoReserva string

const (
	EstadoPendiente  EstadoReserva = "Pendiente"
	EstadoConfirmada EstadoReserva = "Confirmada"
	EstadoFinalizada EstadoReserva = "Finalizada"
)

// Valido reports whether e is one of the known states.
func (e EstadoReserva) Valido() bool {
	switch e {
	case EstadoPendiente, EstadoConfirmada, EstadoFinalizada:
		return true
	}
	return false
}

// Reserva books one escenario for one calendar date on behalf of one user.
// PrecioBase snapshots the escenario price at creation time; the total price
// is never stored — it is derived on every read from PrecioBase plus the
// current element prices of the attached lines.
//
// The composite unique index on (id_escenario, fecha) is the authoritative
// guard for the one-booking-per-venue-per-date invariant; the applicative
// existence check is only the fast path with the friendlier error.
type Reserva struct {
	ID            uint          `gorm:"primaryKey"`
	CorreoUsuario string        `gorm:"size:255;not null;index"`
	IDEscenario   uint          `gorm:"not null;uniqueIndex:uq_reservas_escenario_fecha"`
	Fecha         time.Time     `gorm:"type:date;not null;uniqueIndex:uq_reservas_escenario_fecha"`
	Estado        EstadoReserva `gorm:"type:varchar(20);not null;default:'Pendiente'"`
	PrecioBase    int64         `gorm:"not null"`
	FechaCreacion time.Time

	Usuario   *Usuario          `gorm:"foreignKey:CorreoUsuario;references:Correo"`
	Escenario *Escenario        `gorm:"foreignKey:IDEscenario"`
	Elementos []ReservaElemento `gorm:"foreignKey:IDReserva;constraint:OnDelete:CASCADE"`
}

func (Reserva) TableName() string { return "reservas" }

// ReservaElemento is one equipment line item: N units of one elemento
// attached to one reserva. Owned exclusively by its reservation.
type ReservaElemento struct {
	IDReserva      uint `gorm:"primaryKey;autoIncrement:false"`
	CodigoElemento uint `gorm:"primaryKey;autoIncrement:false"`
	Cantidad       int  `gorm:"not null;check:cantidad > 0"`

	Elemento *Elemento `gorm:"foreignKey:CodigoElemento;references:Codigo"`
}

func (ReservaElemento) TableName() string { return "reservas_elementos" }
