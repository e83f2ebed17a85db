package domain

import (
	"Gomez-Kitchen/entities"
	"errors"
)

var (
	MessageSuccessCreateMenu = "menu created successfully"
	MessageSuccessGetMenus   = "success get menus"
	MessageSuccessGetMenu    = "success get menu detail"
	MessageSuccessUpdateMenu = "menu updated successfully"
	MessageSuccessDeleteMenu = "menu deleted successfully"

	MessageFailedCreateMenu = "failed to create menu"
	MessageFailedGetMenus   = "failed to get menus"
	MessageFailedGetMenu    = "failed to get menu detail"
	MessageFailedUpdateMenu = "failed to update menu"
	MessageFailedDeleteMenu = "failed to delete menu"

	ErrMenuNotFound = errors.New("no menu with given id exists")
	ErrNotMenuOwner = errors.New("unauthorized: not the owner of the menu")
)

type (
	MenuRequest struct {
		Name    string             `json:"name" validate:"required,min=1,max=100"`
		Recipes []MenuEntryRequest `json:"recipes" validate:"dive"`
	}

	MenuEntryRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Servings int    `json:"servings" validate:"min=1,max=99999999"`
	}

	// MenuDetailResponse holds the menu with every recipe scaled to the
	// servings requested by the menu.
	MenuDetailResponse struct {
		ID      string            `json:"id"`
		Name    string            `json:"name"`
		OwnerID *string           `json:"owner_id"`
		Recipes []entities.Recipe `json:"recipes"`
	}
)
