package recipe

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"Gomez-Kitchen/pkg/pricing"
	"context"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const defaultServings = 2

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, pagination domain.PaginationRequest) ([]*entities.Recipe, domain.PaginationResponse, error)
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetFollowing(ctx context.Context, userID string, pagination domain.PaginationRequest) ([]*entities.Recipe, domain.PaginationResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (*entities.Recipe, error)
		FollowRecipe(ctx context.Context, id string, userID string) (*entities.Recipe, error)
		RefreshRecipe(ctx context.Context, id string) (*entities.Recipe, error)
		UnfollowRecipe(ctx context.Context, id string, userID string) (*entities.Recipe, error)
	}

	// Pantry is where recipe lines read ingredients from and where refreshed
	// ingredients are written back.
	Pantry interface {
		pricing.IngredientLoader
		pricing.IngredientSaver
	}

	recipeService struct {
		recipeRepository RecipeRepository
		pantry           Pantry
		refresher        pricing.Refresher
	}
)

func NewRecipeService(recipeRepository RecipeRepository, pantry Pantry, refresher pricing.Refresher) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		pantry:           pantry,
		refresher:        refresher,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (*entities.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	if len(req.Instructions) == 0 {
		return nil, domain.ErrRecipeInstructions
	}

	lines, err := pricing.BuildIngredientLines(ctx, s.pantry, req.Ingredients)
	if err != nil {
		return nil, err
	}

	servings := defaultServings
	if req.Servings != nil {
		servings = *req.Servings
	}

	recipe := &entities.Recipe{
		ID:               uuid.New(),
		Name:             strings.TrimSpace(req.Name),
		Ingredients:      datatypes.NewJSONSlice(lines),
		Instructions:     datatypes.NewJSONSlice(req.Instructions),
		PrepTime:         req.PrepTime,
		Servings:         servings,
		OriginalServings: servings,
		OwnerID:          &userUUID,
		Followers:        datatypes.NewJSONSlice([]uuid.UUID{userUUID}),
	}
	setPrice(recipe, lines)

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, pagination domain.PaginationRequest) ([]*entities.Recipe, domain.PaginationResponse, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, pagination.Page, pagination.ItemsPerPage)
	if err != nil {
		return nil, domain.PaginationResponse{}, err
	}
	return recipes, domain.NewPaginationResponse(pagination.Page, pagination.ItemsPerPage, len(recipes), count), nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	return s.recipeRepository.GetRecipeByID(ctx, id)
}

func (s *recipeService) GetFollowing(ctx context.Context, userID string, pagination domain.PaginationRequest) ([]*entities.Recipe, domain.PaginationResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.PaginationResponse{}, domain.ErrParseUUID
	}

	recipes, count, err := s.recipeRepository.GetFollowedRecipes(ctx, userID, pagination.Page, pagination.ItemsPerPage)
	if err != nil {
		return nil, domain.PaginationResponse{}, err
	}
	return recipes, domain.NewPaginationResponse(pagination.Page, pagination.ItemsPerPage, len(recipes), count), nil
}

// UpdateRecipe applies the fields present in req. Sending ingredients
// rebuilds every line and the price, and makes the current servings the new
// baseline. Servings alone leave the price as it is.
func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (*entities.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !membershipOf(recipe).IsOwner(userUUID) {
		return nil, domain.ErrNotRecipeOwner
	}

	if req.Name != nil {
		recipe.Name = strings.TrimSpace(*req.Name)
	}
	if req.Instructions != nil {
		if len(req.Instructions) == 0 {
			return nil, domain.ErrRecipeInstructions
		}
		recipe.Instructions = datatypes.NewJSONSlice(req.Instructions)
	}
	if req.PrepTime != nil {
		recipe.PrepTime = *req.PrepTime
	}
	if req.Servings != nil {
		recipe.Servings = *req.Servings
	}
	if req.Ingredients != nil {
		lines, err := pricing.BuildIngredientLines(ctx, s.pantry, req.Ingredients)
		if err != nil {
			return nil, err
		}
		recipe.Ingredients = datatypes.NewJSONSlice(lines)
		recipe.OriginalServings = recipe.Servings
		setPrice(recipe, lines)
	} else {
		recipe.PricePerServing = pricing.PricePerServing(recipe.Price, recipe.Servings)
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) FollowRecipe(ctx context.Context, id string, userID string) (*entities.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := membershipOf(recipe).Follow(userUUID)
	if err != nil {
		return nil, err
	}
	applyMembership(recipe, members)

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// RefreshRecipe pulls catalog prices into every ingredient the recipe uses
// and reprices its lines at their stored quantities.
func (s *recipeService) RefreshRecipe(ctx context.Context, id string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lines, err := pricing.RefreshLines(ctx, s.pantry, s.refresher, s.pantry, recipe.Ingredients)
	if err != nil {
		log.Warnw("recipe refresh failed", "recipe_id", recipe.ID, "error", err)
		return nil, err
	}
	recipe.Ingredients = datatypes.NewJSONSlice(lines)
	setPrice(recipe, lines)

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) UnfollowRecipe(ctx context.Context, id string, userID string) (*entities.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := membershipOf(recipe).Unfollow(userUUID)
	if err != nil {
		return nil, err
	}
	applyMembership(recipe, members)

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func setPrice(recipe *entities.Recipe, lines []entities.RecipeIngredient) {
	recipe.Price = pricing.ComputePrice(lines)
	recipe.PricePerServing = pricing.PricePerServing(recipe.Price, recipe.Servings)
}

func membershipOf(recipe *entities.Recipe) pricing.Membership {
	return pricing.Membership{Owner: recipe.OwnerID, Followers: recipe.Followers}
}

func applyMembership(recipe *entities.Recipe, members pricing.Membership) {
	recipe.OwnerID = members.Owner
	recipe.Followers = datatypes.NewJSONSlice(members.Followers)
}
