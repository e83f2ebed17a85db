package domain

import (
	"errors"
)

var (
	MessageSuccessCreateIngredient   = "ingredient created successfully"
	MessageSuccessImportIngredient   = "ingredient imported from catalog successfully"
	MessageSuccessGetIngredients     = "success get ingredients"
	MessageSuccessGetIngredient      = "success get ingredient detail"
	MessageSuccessUpdateIngredient   = "ingredient updated successfully"
	MessageSuccessFollowIngredient   = "ingredient followed successfully"
	MessageSuccessRefreshIngredient  = "ingredient refreshed successfully"
	MessageSuccessUnfollowIngredient = "ingredient unfollowed successfully"
	MessageSuccessSearchCatalog      = "success search catalog"

	MessageFailedCreateIngredient   = "failed to create ingredient"
	MessageFailedImportIngredient   = "could not create ingredient, check product id is correct"
	MessageFailedGetIngredients     = "failed to get ingredients"
	MessageFailedGetIngredient      = "failed to get ingredient detail"
	MessageFailedUpdateIngredient   = "failed to update ingredient"
	MessageFailedFollowIngredient   = "failed to follow ingredient"
	MessageFailedRefreshIngredient  = "failed to refresh ingredient"
	MessageFailedUnfollowIngredient = "failed to unfollow ingredient"
	MessageFailedSearchCatalog      = "failed to search catalog"

	ErrIngredientNotFound     = errors.New("no ingredient with given id exists")
	ErrIngredientLines        = errors.New("ingredient doesnt exist or unit doesnt match")
	ErrDuplicateExtraUnit     = errors.New("extra units must not repeat a unit")
	ErrNoExternalID           = errors.New("ingredient doesnt have a catalog product id")
	ErrNotIngredientOwner     = errors.New("unauthorized: not the owner of the ingredient")
	ErrCatalogUnavailable     = errors.New("catalog is unavailable, try again later")
	ErrCatalogUnusableResult  = errors.New("catalog did not return a usable product")
	ErrCatalogProductNotFound = errors.New("catalog product not found")
)

type (
	CreateIngredientRequest struct {
		Name       string             `json:"name" validate:"required,min=3,max=100"`
		Price      int64              `json:"price" validate:"min=0,max=99999999"`
		Unit       string             `json:"unit" validate:"omitempty,unitcode"`
		Amount     float64            `json:"amount" validate:"required,gt=0,max=99999999"`
		ExtraUnits []ExtraUnitRequest `json:"extra_units" validate:"omitempty,dive"`
		ExternalID string             `json:"external_id" validate:"omitempty,max=20"`
	}

	UpdateIngredientRequest struct {
		Name       *string            `json:"name" validate:"omitempty,min=3,max=100"`
		Price      *int64             `json:"price" validate:"omitempty,min=0,max=99999999"`
		Unit       *string            `json:"unit" validate:"omitempty,unitcode"`
		Amount     *float64           `json:"amount" validate:"omitempty,gt=0,max=99999999"`
		ExtraUnits []ExtraUnitRequest `json:"extra_units" validate:"omitempty,dive"`
		ExternalID *string            `json:"external_id" validate:"omitempty,max=20"`
	}

	ExtraUnitRequest struct {
		Unit   string  `json:"unit" validate:"required,max=20"`
		Amount float64 `json:"amount" validate:"gt=0,max=99999999"`
	}

	ImportIngredientRequest struct {
		ExternalID string `json:"external_id" validate:"required,min=1,max=20"`
	}

	IngredientFilter struct {
		Name string `query:"name"`
		PaginationRequest
	}

	CatalogProduct struct {
		ExternalID string  `json:"external_id"`
		Name       string  `json:"name"`
		Price      int64   `json:"price"`
		Amount     float64 `json:"amount"`
		Unit       string  `json:"unit"`
	}
)
