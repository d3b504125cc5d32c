package worker

// confirmacion_worker.go
// Processes reservation confirmation jobs from QueueConfirmacion.
// Generates the PDF summary and enqueues the email that delivers it.

import (
	"context"
	"encoding/json"
	"fmt"

	"reservas/internal/infra"
	"reservas/internal/repository"

	"github.com/rs/zerolog/log"
)

// ConfirmacionJobPayload is the job envelope sent to QueueConfirmacion.
type ConfirmacionJobPayload struct {
	ReservaID uint   `json:"reserva_id"`
	Correo    string `json:"correo"`
}

// ConfirmacionWorker loads the reservation, renders its PDF summary and
// hands delivery off to the email queue.
type ConfirmacionWorker struct {
	reservaRepo    repository.ReservaRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
}

func NewConfirmacionWorker(reservaRepo repository.ReservaRepository, dispatcher *Dispatcher, pdfStoragePath string) *ConfirmacionWorker {
	return &ConfirmacionWorker{
		reservaRepo:    reservaRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process handles a single confirmation job:
//  1. Parse ConfirmacionJobPayload from the job envelope
//  2. Fetch the Reserva (with lines and escenario) from DB
//  3. Generate the PDF summary
//  4. Enqueue the email job with the PDF attached
func (w *ConfirmacionWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ConfirmacionJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("confirmacion_worker: invalid payload")
		return err
	}

	reserva, err := w.reservaRepo.FindByID(ctx, payload.ReservaID)
	if err != nil {
		// The reservation may have been cancelled before the job ran.
		log.Warn().Err(err).Uint("reserva_id", payload.ReservaID).Msg("confirmacion_worker: reserva not found")
		return err
	}

	pdfPath, err := infra.GenerarReservaPDF(reserva, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Uint("reserva_id", payload.ReservaID).Msg("confirmacion_worker: PDF generation failed")
		return err
	}
	log.Info().Str("pdf", pdfPath).Uint("reserva_id", payload.ReservaID).Msg("confirmacion_worker: PDF generated")

	direccion := ""
	if reserva.Escenario != nil {
		direccion = reserva.Escenario.Direccion
	}
	emailJob := EmailJobPayload{
		ToEmail: payload.Correo,
		Subject: fmt.Sprintf("Confirmación de reserva N° %d", reserva.ID),
		Body: fmt.Sprintf("Tu reserva del escenario %s para el %s fue registrada.\nAdjuntamos el detalle en PDF.",
			direccion, reserva.Fecha.Format("02/01/2006")),
		PDFPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
		log.Warn().Err(err).Str("email", payload.Correo).Msg("confirmacion_worker: failed to enqueue email")
		return err
	}
	log.Info().Str("email", payload.Correo).Msg("confirmacion_worker: email job enqueued")
	return nil
}
