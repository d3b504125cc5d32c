package model

import (
	"time"
)

// Usuario stores system users with role-based access.
// Rango: "usuario" | "administrador"
// El correo es la clave primaria — no hay id numérico separado.
type Usuario struct {
	Correo       string `gorm:"primaryKey;size:255"`
	Nombres      string `gorm:"size:255;not null"`
	Apellidos    string `gorm:"size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Rango        string `gorm:"type:varchar(20);not null;default:'usuario'"`
	// IntentosLogin cuenta los logins fallidos consecutivos; al superar el
	// umbral configurado la cuenta queda bloqueada hasta un login exitoso
	// o intervención administrativa.
	IntentosLogin int  `gorm:"not null;default:0"`
	Bloqueado     bool `gorm:"not null;default:false"`
	FechaCreacion time.Time
	UltimoLogin   *time.Time
}

// TableName overrides GORM's default pluralization.
func (Usuario) TableName() string { return "usuarios" }
