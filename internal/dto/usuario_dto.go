package dto

// ActualizarUsuarioRequest is the explicit partial-update type for users.
// Only non-nil fields are applied, and each one is validated individually —
// there is no generic field-by-name assignment anywhere in the system.
type ActualizarUsuarioRequest struct {
	Nombres    *string `json:"nombres"    validate:"omitempty,min=2,max=120"`
	Apellidos  *string `json:"apellidos"  validate:"omitempty,min=2,max=120"`
	Rango      *string `json:"rango"      validate:"omitempty,oneof=usuario administrador"`
	Contrasena *string `json:"contrasena" validate:"omitempty,min=8,max=72"`
	// Bloqueado lets an administrator unlock an account locked out by
	// failed login attempts (or lock one preemptively).
	Bloqueado *bool `json:"bloqueado"`
}

type UsuarioResponse struct {
	Correo        string  `json:"correo"`
	Nombres       string  `json:"nombres"`
	Apellidos     string  `json:"apellidos"`
	Rango         string  `json:"rango"`
	IntentosLogin int     `json:"intentos_login"`
	Bloqueado     bool    `json:"bloqueado"`
	FechaCreacion string  `json:"fecha_creacion"`
	UltimoLogin   *string `json:"ultimo_login"`
}
