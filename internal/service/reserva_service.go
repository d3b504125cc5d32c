package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reservas/internal/dto"
	"reservas/internal/model"
	"reservas/internal/repository"
	"reservas/internal/worker"

	"gorm.io/gorm"
)

const fechaLayout = "2006-01-02"

type ReservaService interface {
	CrearReserva(ctx context.Context, correo string, req dto.CrearReservaRequest) (*dto.ReservaResponse, error)
	ObtenerReserva(ctx context.Context, id uint, correo string) (*dto.ReservaResponse, error)
	ListarMisReservas(ctx context.Context, correo string) ([]dto.ReservaResponse, error)
	AgregarElementos(ctx context.Context, id uint, correo string, req dto.AgregarElementosRequest) (*dto.ReservaResponse, error)
	QuitarElemento(ctx context.Context, id uint, codigo uint, correo string) (*dto.ReservaResponse, error)
	ActualizarEstado(ctx context.Context, id uint, correo string, esAdmin bool, req dto.ActualizarEstadoRequest) (*dto.ReservaResponse, error)
	CancelarReserva(ctx context.Context, id uint, correo string) error
}

type reservaService struct {
	reservas   repository.ReservaRepository
	escenarios repository.EscenarioRepository
	elementos  repository.ElementoRepository
	dispatcher *worker.Dispatcher
}

func NewReservaService(
	reservas repository.ReservaRepository,
	escenarios repository.EscenarioRepository,
	elementos repository.ElementoRepository,
	dispatcher *worker.Dispatcher,
) ReservaService {
	return &reservaService{
		reservas:   reservas,
		escenarios: escenarios,
		elementos:  elementos,
		dispatcher: dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// mergeLineas collapses duplicate element codes in a request, preserving
// first-seen order. Two lines for the same element become one with the
// summed quantity, matching the merge semantics of AgregarElementos.
func mergeLineas(lineas []dto.LineaReservaRequest) []dto.LineaReservaRequest {
	idx := make(map[uint]int, len(lineas))
	merged := make([]dto.LineaReservaRequest, 0, len(lineas))
	for _, l := range lineas {
		if i, ok := idx[l.CodigoElemento]; ok {
			merged[i].Cantidad += l.Cantidad
			continue
		}
		idx[l.CodigoElemento] = len(merged)
		merged = append(merged, l)
	}
	return merged
}

// ── CrearReserva ──────────────────────────────────────────────────────────────
// One transaction end to end:
//  1. Lock the escenario row — serializes concurrent attempts on the venue.
//  2. Fast-path conflict check on (escenario, fecha); the unique index is
//     the authoritative backstop and maps to the same error.
//  3. Validate every line (existence + stock) before any write.
//  4. Insert reserva + lines, decrement stock per line.
// On success a confirmation job is dispatched best-effort.

func (s *reservaService) CrearReserva(ctx context.Context, correo string, req dto.CrearReservaRequest) (*dto.ReservaResponse, error) {
	fecha, err := time.Parse(fechaLayout, req.Fecha)
	if err != nil {
		return nil, ErrFechaInvalida
	}
	lineas := mergeLineas(req.Elementos)

	var reservaID uint
	txErr := runTx(ctx, s.reservas.DB(), func(tx *gorm.DB) error {
		escenario, err := s.escenarios.FindByIDForUpdate(ctx, tx, req.IDEscenario)
		if err != nil {
			return ErrEscenarioNoEncontrado
		}
		if !escenario.Activo {
			return ErrEscenarioInactivo
		}

		ocupada, err := s.reservas.ExisteParaEscenarioFecha(ctx, tx, req.IDEscenario, fecha)
		if err != nil {
			return err
		}
		if ocupada {
			return ErrFechaOcupada
		}

		// Validate all lines BEFORE the first write — the operation is
		// all-or-nothing and validation failures must leave zero writes.
		for _, l := range lineas {
			elemento, err := s.elementos.FindByCodigoForUpdate(ctx, tx, l.CodigoElemento)
			if err != nil {
				return fmt.Errorf("%w: código %d", ErrElementoNoEncontrado, l.CodigoElemento)
			}
			if elemento.Stock < l.Cantidad {
				return fmt.Errorf("%w para '%s': disponible %d", ErrStockInsuficiente, elemento.Nombre, elemento.Stock)
			}
		}

		reserva := model.Reserva{
			CorreoUsuario: correo,
			IDEscenario:   req.IDEscenario,
			Fecha:         fecha,
			Estado:        model.EstadoPendiente,
			PrecioBase:    escenario.Precio,
			FechaCreacion: time.Now().UTC(),
		}
		for _, l := range lineas {
			reserva.Elementos = append(reserva.Elementos, model.ReservaElemento{
				CodigoElemento: l.CodigoElemento,
				Cantidad:       l.Cantidad,
			})
		}

		if err := s.reservas.Create(ctx, tx, &reserva); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the race to the unique (escenario, fecha) index.
				return ErrFechaOcupada
			}
			return err
		}

		for _, l := range lineas {
			ok, err := s.elementos.DescontarStockTx(tx, l.CodigoElemento, l.Cantidad)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: código %d", ErrStockInsuficiente, l.CodigoElemento)
			}
		}

		reservaID = reserva.ID
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	completa, err := s.reservas.FindByID(ctx, reservaID)
	if err != nil {
		return nil, err
	}
	resp, err := reservaToResponse(completa)
	if err != nil {
		return nil, err
	}

	// Confirmation mail with PDF summary — fire & forget.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueConfirmacion(ctx, worker.ConfirmacionJobPayload{
			ReservaID: reservaID,
			Correo:    correo,
		})
	}
	return resp, nil
}

// ── AgregarElementos ──────────────────────────────────────────────────────────
// Merge semantics: a line that already exists on the reservation has its
// quantity incremented; otherwise a new line is inserted. Stock is checked
// and decremented per requested quantity inside the same transaction.

func (s *reservaService) AgregarElementos(ctx context.Context, id uint, correo string, req dto.AgregarElementosRequest) (*dto.ReservaResponse, error) {
	lineas := mergeLineas(req.Elementos)

	txErr := runTx(ctx, s.reservas.DB(), func(tx *gorm.DB) error {
		reserva, err := s.reservas.FindByIDTx(ctx, tx, id)
		if err != nil || reserva.CorreoUsuario != correo {
			// Nonexistence and foreign ownership are indistinguishable.
			return ErrReservaNoEncontrada
		}

		for _, l := range lineas {
			elemento, err := s.elementos.FindByCodigoForUpdate(ctx, tx, l.CodigoElemento)
			if err != nil {
				return fmt.Errorf("%w: código %d", ErrElementoNoEncontrado, l.CodigoElemento)
			}
			if elemento.Stock < l.Cantidad {
				return fmt.Errorf("%w para '%s': disponible %d", ErrStockInsuficiente, elemento.Nombre, elemento.Stock)
			}
		}

		for _, l := range lineas {
			ok, err := s.elementos.DescontarStockTx(tx, l.CodigoElemento, l.Cantidad)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: código %d", ErrStockInsuficiente, l.CodigoElemento)
			}

			existente, err := s.reservas.FindLineaTx(ctx, tx, id, l.CodigoElemento)
			switch {
			case err == nil:
				if err := s.reservas.UpdateLineaCantidadTx(tx, id, l.CodigoElemento, existente.Cantidad+l.Cantidad); err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := s.reservas.CreateLineaTx(tx, &model.ReservaElemento{
					IDReserva:      id,
					CodigoElemento: l.CodigoElemento,
					Cantidad:       l.Cantidad,
				}); err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.cargarRespuesta(ctx, id)
}

// ── QuitarElemento ────────────────────────────────────────────────────────────
// Removes the whole line (no partial-quantity removal) and returns its stock.

func (s *reservaService) QuitarElemento(ctx context.Context, id uint, codigo uint, correo string) (*dto.ReservaResponse, error) {
	txErr := runTx(ctx, s.reservas.DB(), func(tx *gorm.DB) error {
		reserva, err := s.reservas.FindByIDTx(ctx, tx, id)
		if err != nil || reserva.CorreoUsuario != correo {
			return ErrReservaNoEncontrada
		}

		linea, err := s.reservas.FindLineaTx(ctx, tx, id, codigo)
		if err != nil {
			return ErrElementoNoAsociado
		}

		if err := s.elementos.RestaurarStockTx(tx, codigo, linea.Cantidad); err != nil {
			return err
		}
		return s.reservas.DeleteLineaTx(tx, id, codigo)
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.cargarRespuesta(ctx, id)
}

// ── ActualizarEstado ──────────────────────────────────────────────────────────
// Only the estado field is mutable after creation. The owner may update it,
// and an administrator may override; everyone else sees a 404.

func (s *reservaService) ActualizarEstado(ctx context.Context, id uint, correo string, esAdmin bool, req dto.ActualizarEstadoRequest) (*dto.ReservaResponse, error) {
	estado := model.EstadoReserva(req.Estado)
	if !estado.Valido() {
		return nil, fmt.Errorf("%w: %q", ErrEstadoInvalido, req.Estado)
	}

	reserva, err := s.reservas.FindByID(ctx, id)
	if err != nil {
		return nil, ErrReservaNoEncontrada
	}
	if reserva.CorreoUsuario != correo && !esAdmin {
		return nil, ErrReservaNoEncontrada
	}

	if err := s.reservas.UpdateEstado(ctx, id, estado); err != nil {
		return nil, err
	}
	reserva.Estado = estado
	return reservaToResponse(reserva)
}

// ── CancelarReserva ───────────────────────────────────────────────────────────
// Hard delete, cascading to lines. Final and irreversible; the stock held by
// every line is returned first, inside the same transaction.

func (s *reservaService) CancelarReserva(ctx context.Context, id uint, correo string) error {
	return runTx(ctx, s.reservas.DB(), func(tx *gorm.DB) error {
		reserva, err := s.reservas.FindByIDTx(ctx, tx, id)
		if err != nil || reserva.CorreoUsuario != correo {
			return ErrReservaNoEncontrada
		}

		lineas, err := s.reservas.ListLineasTx(ctx, tx, id)
		if err != nil {
			return err
		}
		for _, linea := range lineas {
			if err := s.elementos.RestaurarStockTx(tx, linea.CodigoElemento, linea.Cantidad); err != nil {
				return err
			}
		}
		return s.reservas.DeleteTx(tx, id)
	})
}

// ── Reads ─────────────────────────────────────────────────────────────────────

func (s *reservaService) ObtenerReserva(ctx context.Context, id uint, correo string) (*dto.ReservaResponse, error) {
	reserva, err := s.reservas.FindByID(ctx, id)
	if err != nil {
		return nil, ErrReservaNoEncontrada
	}
	if reserva.CorreoUsuario != correo {
		return nil, ErrReservaNoEncontrada
	}
	return reservaToResponse(reserva)
}

func (s *reservaService) ListarMisReservas(ctx context.Context, correo string) ([]dto.ReservaResponse, error) {
	reservas, err := s.reservas.ListByUsuario(ctx, correo)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ReservaResponse, 0, len(reservas))
	for i := range reservas {
		r, err := reservaToResponse(&reservas[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *r)
	}
	return resp, nil
}

func (s *reservaService) cargarRespuesta(ctx context.Context, id uint) (*dto.ReservaResponse, error) {
	reserva, err := s.reservas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return reservaToResponse(reserva)
}

func reservaToResponse(r *model.Reserva) (*dto.ReservaResponse, error) {
	total, err := CalcularPrecioTotal(r)
	if err != nil {
		return nil, err
	}

	lineas := make([]dto.LineaReservaResponse, 0, len(r.Elementos))
	for _, linea := range r.Elementos {
		lineas = append(lineas, dto.LineaReservaResponse{
			CodigoElemento: linea.CodigoElemento,
			Nombre:         linea.Elemento.Nombre,
			PrecioUnitario: linea.Elemento.Precio,
			Cantidad:       linea.Cantidad,
			Subtotal:       linea.Elemento.Precio * int64(linea.Cantidad),
		})
	}

	return &dto.ReservaResponse{
		ID:            r.ID,
		CorreoUsuario: r.CorreoUsuario,
		IDEscenario:   r.IDEscenario,
		Fecha:         r.Fecha.Format(fechaLayout),
		Estado:        string(r.Estado),
		PrecioBase:    r.PrecioBase,
		PrecioTotal:   total,
		Elementos:     lineas,
		FechaCreacion: r.FechaCreacion.Format(time.RFC3339),
	}, nil
}
