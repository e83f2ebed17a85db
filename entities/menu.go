package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Menu struct {
	ID      uuid.UUID                      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name    string                         `gorm:"type:varchar(100)" json:"name"`
	Recipes datatypes.JSONSlice[MenuEntry] `gorm:"type:jsonb;not null;default:'[]'" json:"recipes"`
	OwnerID *uuid.UUID                     `gorm:"type:uuid;index" json:"owner_id"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
	Timestamp
}

// MenuEntry is the number of servings wanted for one recipe in a menu.
type MenuEntry struct {
	RecipeID uuid.UUID `json:"recipe_id"`
	Servings int       `json:"servings"`
}
