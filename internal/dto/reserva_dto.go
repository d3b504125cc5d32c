package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LineaReservaRequest struct {
	CodigoElemento uint `json:"codigo_elemento" validate:"required"`
	Cantidad       int  `json:"cantidad"        validate:"required,min=1"`
}

type CrearReservaRequest struct {
	IDEscenario uint   `json:"id_escenario" validate:"required"`
	Fecha       string `json:"fecha"        validate:"required,datetime=2006-01-02"`
	// Elementos is optional — a reservation may book the venue alone.
	Elementos []LineaReservaRequest `json:"elementos" validate:"omitempty,dive"`
}

type AgregarElementosRequest struct {
	Elementos []LineaReservaRequest `json:"elementos" validate:"required,min=1,dive"`
}

type ActualizarEstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LineaReservaResponse struct {
	CodigoElemento uint   `json:"codigo_elemento"`
	Nombre         string `json:"nombre"`
	PrecioUnitario int64  `json:"precio_unitario"`
	Cantidad       int    `json:"cantidad"`
	Subtotal       int64  `json:"subtotal"`
}

type ReservaResponse struct {
	ID            uint                   `json:"id"`
	CorreoUsuario string                 `json:"correo_usuario"`
	IDEscenario   uint                   `json:"id_escenario"`
	Fecha         string                 `json:"fecha"`
	Estado        string                 `json:"estado"`
	PrecioBase    int64                  `json:"precio_base"`
	PrecioTotal   int64                  `json:"precio_total"`
	Elementos     []LineaReservaResponse `json:"elementos"`
	FechaCreacion string                 `json:"fecha_creacion"`
}
