package model

import (
	"time"
)

// Elemento is rentable equipment with a per-unit price and available stock.
// Stock is decremented inside the reservation transaction and restored when
// a line is removed or the reservation is cancelled — it never goes negative.
type Elemento struct {
	Codigo        uint   `gorm:"primaryKey"`
	Nombre        string `gorm:"size:255;index;not null"`
	Precio        int64  `gorm:"not null"`
	Stock         int    `gorm:"not null;default:0;check:stock >= 0"`
	FechaCreacion time.Time
}

func (Elemento) TableName() string { return "elementos" }
