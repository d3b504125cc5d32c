package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarUsuarioRequest struct {
	Correo     string `json:"correo"      validate:"required,email"`
	Nombres    string `json:"nombres"     validate:"required,min=2,max=120"`
	Apellidos  string `json:"apellidos"   validate:"required,min=2,max=120"`
	Contrasena string `json:"contrasena"  validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Correo     string `json:"correo"     validate:"required,email"`
	Contrasena string `json:"contrasena" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"`
	Usuario     UsuarioResponse `json:"usuario"`
}
