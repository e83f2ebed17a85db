package entities

import (
	"time"

	"gorm.io/gorm"
)

type Timestamp struct {
	CreatedAt time.Time      `gorm:"type:timestamp with time zone" json:"created_at"`
	UpdatedAt time.Time      `gorm:"type:timestamp with time zone" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Quantity is an amount expressed in a unit, e.g. 1 kg or 12 un.
type Quantity struct {
	Unit   string  `json:"unit"`
	Amount float64 `json:"amount"`
}
