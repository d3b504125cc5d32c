package service

import (
	"reservas/internal/model"
)

// CalcularPrecioTotal derives the total price of a reservation: the base
// price snapshotted at creation plus, per line, the element's CURRENT unit
// price times the quantity. No side effects; the caller is responsible for
// loading the reservation with its escenario and line elements attached.
//
// Element prices are deliberately not snapshotted per line, so changing an
// element's price changes the total of every reservation that references it.
// The total is never persisted — it is recomputed on every read.
func CalcularPrecioTotal(r *model.Reserva) (int64, error) {
	if r.Escenario == nil {
		// Dangling reference: the venue was deleted after the booking.
		return 0, ErrEscenarioNoEncontrado
	}

	total := r.PrecioBase
	for _, linea := range r.Elementos {
		if linea.Elemento == nil {
			return 0, ErrElementoNoEncontrado
		}
		total += linea.Elemento.Precio * int64(linea.Cantidad)
	}
	return total, nil
}
