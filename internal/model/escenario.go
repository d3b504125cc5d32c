package model

import (
	"time"
)

// Escenario is a bookable venue: a location with capacity and a nightly price.
// Precio is expressed in whole currency units (no fractions in this domain).
type Escenario struct {
	ID            uint   `gorm:"primaryKey"`
	Direccion     string `gorm:"size:255;not null"`
	Capacidad     int    `gorm:"not null"`
	Precio        int64  `gorm:"not null"`
	Activo        bool   `gorm:"not null;default:true"`
	FechaCreacion time.Time
}

func (Escenario) TableName() string { return "escenarios" }
