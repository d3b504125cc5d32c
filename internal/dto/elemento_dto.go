package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearElementoRequest struct {
	Codigo uint   `json:"codigo" validate:"required"`
	Nombre string `json:"nombre" validate:"required,min=2,max=120"`
	Precio int64  `json:"precio" validate:"required,min=0"`
	Stock  int    `json:"stock"  validate:"min=0"`
}

type ActualizarElementoRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=2,max=120"`
	Precio *int64  `json:"precio" validate:"omitempty,min=0"`
	Stock  *int    `json:"stock"  validate:"omitempty,min=0"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ElementoFilter struct {
	Nombre string `form:"nombre"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ElementoResponse struct {
	Codigo        uint   `json:"codigo"`
	Nombre        string `json:"nombre"`
	Precio        int64  `json:"precio"`
	Stock         int    `json:"stock"`
	FechaCreacion string `json:"fecha_creacion"`
}

type ElementoListResponse struct {
	Data  []ElementoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
