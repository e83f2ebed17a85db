package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Ingredient struct {
	ID         uuid.UUID                      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string                         `gorm:"type:varchar(100);not null" json:"name"`
	Price      int64                          `gorm:"not null" json:"price"`
	Unit       string                         `gorm:"type:varchar(10);not null;default:'un'" json:"unit"`
	Amount     float64                        `gorm:"not null;default:1" json:"amount"`
	ExtraUnits datatypes.JSONSlice[Quantity]  `gorm:"type:jsonb;not null;default:'[]'" json:"extra_units"`
	ExternalID *string                        `gorm:"type:varchar(20);index" json:"external_id,omitempty"`
	OwnerID    *uuid.UUID                     `gorm:"type:uuid" json:"owner_id"`
	Followers  datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb;not null;default:'[]'" json:"followers"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
	Timestamp
}

// HasExternalID reports whether the ingredient is linked to a catalog product.
func (i *Ingredient) HasExternalID() bool {
	return i.ExternalID != nil && *i.ExternalID != ""
}
