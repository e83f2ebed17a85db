package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Recipe struct {
	ID               uuid.UUID                             `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name             string                                `gorm:"type:varchar(50);not null" json:"name"`
	Price            int64                                 `gorm:"not null" json:"price"`
	PricePerServing  float64                               `json:"price_per_serving"`
	Ingredients      datatypes.JSONSlice[RecipeIngredient] `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions     datatypes.JSONSlice[string]           `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	PrepTime         int                                   `json:"prep_time"`
	Servings         int                                   `gorm:"not null;default:2" json:"servings"`
	OriginalServings int                                   `gorm:"not null;default:2" json:"original_servings"`
	OwnerID          *uuid.UUID                            `gorm:"type:uuid" json:"owner_id"`
	Followers        datatypes.JSONSlice[uuid.UUID]        `gorm:"type:jsonb;not null;default:'[]'" json:"followers"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
	Timestamp
}

// RecipeIngredient is a snapshot of an ingredient taken when the recipe line
// was built. It does not follow later changes to the ingredient until the
// recipe is refreshed.
type RecipeIngredient struct {
	IngredientID  uuid.UUID `json:"ingredient_id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	Unit          string    `json:"unit"`
	Amount        float64   `json:"amount"`
	ExtraUnits    []string  `json:"extra_units"`
	PrimaryUnit   string    `json:"primary_unit"`
	PrimaryAmount float64   `json:"primary_amount"`
}
