package domain

import (
	"errors"
)

var (
	MessageSuccessCreateRecipe   = "recipe created successfully"
	MessageSuccessGetRecipes     = "success get recipes"
	MessageSuccessGetRecipe      = "success get recipe detail"
	MessageSuccessUpdateRecipe   = "recipe updated successfully"
	MessageSuccessFollowRecipe   = "recipe followed successfully"
	MessageSuccessRefreshRecipe  = "recipe refreshed successfully"
	MessageSuccessUnfollowRecipe = "recipe unfollowed successfully"

	MessageFailedCreateRecipe   = "failed to create recipe"
	MessageFailedGetRecipes     = "failed to get recipes"
	MessageFailedGetRecipe      = "failed to get recipe detail"
	MessageFailedUpdateRecipe   = "failed to update recipe"
	MessageFailedFollowRecipe   = "failed to follow recipe"
	MessageFailedRefreshRecipe  = "failed to refresh recipe"
	MessageFailedUnfollowRecipe = "failed to unfollow recipe"

	ErrRecipeNotFound     = errors.New("no recipe with given id exists")
	ErrNotRecipeOwner     = errors.New("unauthorized: not the owner of the recipe")
	ErrRecipeInstructions = errors.New("recipe needs at least one instruction")
)

type (
	CreateRecipeRequest struct {
		Name         string                    `json:"name" validate:"required,min=3,max=50"`
		Ingredients  []RecipeIngredientRequest `json:"ingredients" validate:"required,dive"`
		Instructions []string                  `json:"instructions" validate:"required,min=1,dive,min=1,max=10000"`
		PrepTime     int                       `json:"prep_time" validate:"min=0,max=99999999"`
		Servings     *int                      `json:"servings" validate:"omitempty,min=1,max=99999999"`
	}

	UpdateRecipeRequest struct {
		Name         *string                   `json:"name" validate:"omitempty,min=3,max=50"`
		Ingredients  []RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
		Instructions []string                  `json:"instructions" validate:"omitempty,min=1,dive,min=1,max=10000"`
		PrepTime     *int                      `json:"prep_time" validate:"omitempty,min=0,max=99999999"`
		Servings     *int                      `json:"servings" validate:"omitempty,min=1,max=99999999"`
	}

	// RecipeIngredientRequest asks for amount of an ingredient expressed in unit.
	RecipeIngredientRequest struct {
		IngredientID string  `json:"ingredient_id" validate:"required,uuid"`
		Unit         string  `json:"unit" validate:"required,max=20"`
		Amount       float64 `json:"amount" validate:"min=0,max=99999999"`
	}
)
