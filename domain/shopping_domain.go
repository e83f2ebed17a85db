package domain

import (
	"errors"
)

var (
	MessageSuccessGenerateList = "success generate shopping list"
	MessageSuccessExportList   = "shopping list exported successfully"
	MessageSuccessMailList     = "shopping list sent to your email"

	MessageFailedGenerateList = "failed to generate shopping list"
	MessageFailedExportList   = "failed to export shopping list"
	MessageFailedMailList     = "failed to send shopping list"

	ErrExportList = errors.New("failed to upload shopping list")
	ErrMailList   = errors.New("failed to mail shopping list")
)

type (
	GenerateListRequest struct {
		Recipes []ListRecipeRequest `json:"recipes" validate:"dive"`
	}

	// ListRecipeRequest adds a recipe to the list. Servings is optional and
	// scales the recipe when set.
	ListRecipeRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Servings *int   `json:"servings" validate:"omitempty,min=1,max=99999999"`
	}

	ShoppingListItem struct {
		Name   string  `json:"name"`
		Unit   string  `json:"unit"`
		Amount float64 `json:"amount"`
	}

	ExportListResponse struct {
		URL string `json:"url"`
	}
)
