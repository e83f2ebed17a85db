package utils

import (
	"Gomez-Kitchen/pkg/pricing"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

var (
	Validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		Validate = validator.New()
		err := Validate.RegisterValidation("unitcode", func(fl validator.FieldLevel) bool {
			return pricing.IsCanonicalUnit(fl.Field().String())
		})
		if err != nil {
			log.Fatalf("error registering unitcode validation: %v", err)
		}
	})
}

// Pagination reads page and itemsPerPage from the query string.
func Pagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(c.Query("itemsPerPage", ""))
	if err != nil || perPage < 1 {
		perPage = GetConfigInt("PAGE_SIZE", 10)
	}
	return page, perPage
}
