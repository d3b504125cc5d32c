package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearEscenarioRequest struct {
	Direccion string `json:"direccion" validate:"required,min=3,max=255"`
	Capacidad int    `json:"capacidad" validate:"required,min=1"`
	Precio    int64  `json:"precio"    validate:"required,min=0"`
}

type ActualizarEscenarioRequest struct {
	Direccion *string `json:"direccion" validate:"omitempty,min=3,max=255"`
	Capacidad *int    `json:"capacidad" validate:"omitempty,min=1"`
	Precio    *int64  `json:"precio"    validate:"omitempty,min=0"`
	Activo    *bool   `json:"activo"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type EscenarioFilter struct {
	Page  int `form:"page,default=1"   validate:"min=1"`
	Limit int `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EscenarioResponse struct {
	ID            uint   `json:"id"`
	Direccion     string `json:"direccion"`
	Capacidad     int    `json:"capacidad"`
	Precio        int64  `json:"precio"`
	Activo        bool   `json:"activo"`
	FechaCreacion string `json:"fecha_creacion"`
}

type EscenarioListResponse struct {
	Data  []EscenarioResponse `json:"data"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}

// DisponibilidadResponse is returned by the public availability check.
type DisponibilidadResponse struct {
	IDEscenario uint   `json:"id_escenario"`
	Direccion   string `json:"direccion"`
	Fecha       string `json:"fecha"`
	Disponible  bool   `json:"disponible"`
	Precio      int64  `json:"precio"`
}
