package infra

// pdf.go — confirmation summary generation using go-pdf/fpdf.
// Produces an A5 sheet with the venue, date, element table and total.
// The output file is saved to storagePath/reserva_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"reservas/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerarReservaPDF writes the confirmation PDF for a reservation.
// storagePath is the directory where the PDF will be written (created if needed).
// Returns the absolute path to the generated file.
func GenerarReservaPDF(reserva *model.Reserva, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reserva_%d.pdf", reserva.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, "Confirmación de Reserva", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Reservation info ─────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Reserva N° %d", reserva.ID), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	if reserva.Escenario != nil {
		pdf.CellFormat(contentW, 5, "Escenario: "+reserva.Escenario.Direccion, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 5, "Fecha: "+reserva.Fecha.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Estado: "+string(reserva.Estado), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(3)

	// ── Charges table ────────────────────────────────────────────────────────
	col1 := contentW * 0.52
	col2 := contentW * 0.16
	col3 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 6, "Concepto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(col1, 6, "Uso del escenario", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "x1", "", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, fmt.Sprintf("$%d", reserva.PrecioBase), "", 1, "R", false, 0, "")

	total := reserva.PrecioBase
	for _, linea := range reserva.Elementos {
		nombre := ""
		var subtotal int64
		if linea.Elemento != nil {
			nombre = linea.Elemento.Nombre
			subtotal = linea.Elemento.Precio * int64(linea.Cantidad)
		}
		if len(nombre) > 28 {
			nombre = nombre[:27] + "…"
		}
		total += subtotal
		pdf.CellFormat(col1, 6, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", linea.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, fmt.Sprintf("$%d", subtotal), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1+col2, 7, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 7, fmt.Sprintf("$%d", total), "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Gracias por su reserva.", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
