package config

import (
	"Gomez-Kitchen/internal/api/handlers"
	"Gomez-Kitchen/internal/api/routes"
	"Gomez-Kitchen/internal/middleware"
	"Gomez-Kitchen/internal/utils"
	"Gomez-Kitchen/internal/utils/mailing"
	"Gomez-Kitchen/internal/utils/storage"
	"Gomez-Kitchen/pkg/catalog"
	"Gomez-Kitchen/pkg/ingredient"
	"Gomez-Kitchen/pkg/jwt"
	"Gomez-Kitchen/pkg/menu"
	"Gomez-Kitchen/pkg/pricing"
	"Gomez-Kitchen/pkg/recipe"
	"Gomez-Kitchen/pkg/shopping"
	"Gomez-Kitchen/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/Santiago",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()
	catalogClient := catalog.NewCachedClient(
		catalog.NewLiderClient(
			utils.GetConfigString("CATALOG_BASE_URL", catalog.DefaultBaseURL),
			time.Duration(utils.GetConfigInt("CATALOG_TIMEOUT_SECONDS", 10))*time.Second,
			utils.GetConfigInt("CATALOG_SEARCH_LIMIT", catalog.DefaultSearchLimit),
		),
		utils.GetConfigInt("CATALOG_CACHE_SIZE", 256),
		time.Duration(utils.GetConfigInt("CATALOG_CACHE_TTL_SECONDS", 300))*time.Second,
	)
	refresher := ingredient.NewCatalogRefresher(catalogClient, utils.GetConfigBool("REFRESH_OVERWRITE_QUANTITY"))
	aggregator := pricing.NewAggregator(utils.GetConfigString("LIST_LOCALE", "es"))

	// Repository
	userRepository := user.NewUserRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	menuRepository := menu.NewMenuRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	ingredientService := ingredient.NewIngredientService(ingredientRepository, catalogClient, refresher)
	recipeService := recipe.NewRecipeService(recipeRepository, ingredientRepository, refresher)
	menuService := menu.NewMenuService(menuRepository, recipeRepository)
	shoppingService := shopping.NewShoppingService(recipeRepository, menuService, userRepository, aggregator, s3, mailer)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		IngredientHandler: ingredientHandler,
		RecipeHandler:     recipeHandler,
		MenuHandler:       menuHandler,
		ShoppingHandler:   shoppingHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
