package migration

import (
	"Gomez-Kitchen/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"ingredient", &entities.Ingredient{}},
		{"recipe", &entities.Recipe{}},
		{"menu", &entities.Menu{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Errorw("error migrating database", "table", m.name, "error", err)
			return err
		}
	}

	// GIN indexes back the followers @> containment lookups.
	db.Exec("CREATE INDEX IF NOT EXISTS idx_ingredients_followers ON ingredients USING GIN (followers);")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_recipes_followers ON recipes USING GIN (followers);")

	log.Info("Database migration complete")
	return nil
}
