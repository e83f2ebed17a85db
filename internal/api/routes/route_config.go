package routes

import (
	"Gomez-Kitchen/internal/api/handlers"
	"Gomez-Kitchen/internal/middleware"
	"Gomez-Kitchen/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	IngredientHandler handlers.IngredientHandler
	RecipeHandler     handlers.RecipeHandler
	MenuHandler       handlers.MenuHandler
	ShoppingHandler   handlers.ShoppingHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Ingredients()
	c.Recipes()
	c.Menus()
	c.Calculate()
	c.GuestRoute()
}

func (c *Config) User() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	user := c.App.Group("/api/users")
	{
		user.Post("/", c.UserHandler.Register)
		user.Get("/me", auth, c.UserHandler.Me)
		user.Get("/other/:id", auth, c.UserHandler.GetOther)
	}
	c.App.Post("/api/auth", c.UserHandler.Login)
}

func (c *Config) Ingredients() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	ingredients := c.App.Group("/api/ingredients")
	ingredients.Post("/", auth, c.IngredientHandler.CreateIngredient)
	ingredients.Get("/", c.IngredientHandler.GetIngredients)

	ingredients.Post("/catalog", auth, c.IngredientHandler.ImportFromCatalog)
	ingredients.Get("/catalog", c.IngredientHandler.SearchCatalog)

	ingredients.Get("/following/me", auth, c.IngredientHandler.GetMyFollowing)
	ingredients.Get("/following/:id", c.IngredientHandler.GetUserFollowing)

	ingredients.Get("/:id", c.IngredientHandler.GetIngredientDetail)
	ingredients.Put("/:id", auth, c.IngredientHandler.UpdateIngredient)
	ingredients.Delete("/:id", auth, c.IngredientHandler.UnfollowIngredient)
	ingredients.Put("/:id/follow", auth, c.IngredientHandler.FollowIngredient)
	ingredients.Put("/:id/refresh", auth, c.IngredientHandler.RefreshIngredient)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Post("/", c.RecipeHandler.CreateRecipe)
	recipes.Get("/", c.RecipeHandler.GetRecipes)

	recipes.Get("/following/me", c.RecipeHandler.GetMyFollowing)
	recipes.Get("/following/:id", c.RecipeHandler.GetUserFollowing)

	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.UnfollowRecipe)
	recipes.Put("/:id/follow", c.RecipeHandler.FollowRecipe)
	recipes.Put("/:id/refresh", c.RecipeHandler.RefreshRecipe)
}

func (c *Config) Menus() {
	menus := c.App.Group("/api/menus", c.Middleware.AuthMiddleware(c.JWTService))
	menus.Post("/", c.MenuHandler.CreateMenu)
	menus.Get("/", c.MenuHandler.GetMenus)
	menus.Get("/:id", c.MenuHandler.GetMenuDetail)
	menus.Put("/:id", c.MenuHandler.UpdateMenu)
	menus.Delete("/:id", c.MenuHandler.DeleteMenu)
	menus.Get("/:id/shopping-list", c.ShoppingHandler.GenerateMenuList)
}

func (c *Config) Calculate() {
	calculate := c.App.Group("/api/calculate", c.Middleware.AuthMiddleware(c.JWTService))
	calculate.Post("/generateList", c.ShoppingHandler.GenerateList)
	calculate.Post("/generateList/export", c.ShoppingHandler.ExportList)
	calculate.Post("/generateList/mail", c.ShoppingHandler.MailList)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
