package menu

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"Gomez-Kitchen/pkg/pricing"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

type (
	MenuService interface {
		CreateMenu(ctx context.Context, req domain.MenuRequest, userID string) (*entities.Menu, error)
		GetMenus(ctx context.Context, userID string, pagination domain.PaginationRequest) ([]*entities.Menu, domain.PaginationResponse, error)
		GetMenuByID(ctx context.Context, id string, userID string) (domain.MenuDetailResponse, error)
		UpdateMenu(ctx context.Context, id string, req domain.MenuRequest, userID string) (*entities.Menu, error)
		DeleteMenu(ctx context.Context, id string, userID string) (*entities.Menu, error)
		ScaledRecipes(ctx context.Context, menu *entities.Menu) ([]entities.Recipe, error)
		GetOwnedMenu(ctx context.Context, id string, userID string) (*entities.Menu, error)
	}

	RecipeLoader interface {
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
	}

	menuService struct {
		menuRepository MenuRepository
		recipes        RecipeLoader
	}
)

func NewMenuService(menuRepository MenuRepository, recipes RecipeLoader) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		recipes:        recipes,
	}
}

func (s *menuService) CreateMenu(ctx context.Context, req domain.MenuRequest, userID string) (*entities.Menu, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	entries, err := toEntries(req.Recipes)
	if err != nil {
		return nil, err
	}

	menu := &entities.Menu{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(req.Name),
		Recipes: datatypes.NewJSONSlice(entries),
		OwnerID: &userUUID,
	}
	if err := s.menuRepository.CreateMenu(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *menuService) GetMenus(ctx context.Context, userID string, pagination domain.PaginationRequest) ([]*entities.Menu, domain.PaginationResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.PaginationResponse{}, domain.ErrParseUUID
	}

	menus, count, err := s.menuRepository.GetMenusByOwner(ctx, userID, pagination.Page, pagination.ItemsPerPage)
	if err != nil {
		return nil, domain.PaginationResponse{}, err
	}
	return menus, domain.NewPaginationResponse(pagination.Page, pagination.ItemsPerPage, len(menus), count), nil
}

func (s *menuService) GetMenuByID(ctx context.Context, id string, userID string) (domain.MenuDetailResponse, error) {
	menu, err := s.GetOwnedMenu(ctx, id, userID)
	if err != nil {
		return domain.MenuDetailResponse{}, err
	}

	recipes, err := s.ScaledRecipes(ctx, menu)
	if err != nil {
		return domain.MenuDetailResponse{}, err
	}

	res := domain.MenuDetailResponse{
		ID:      menu.ID.String(),
		Name:    menu.Name,
		Recipes: recipes,
	}
	if menu.OwnerID != nil {
		owner := menu.OwnerID.String()
		res.OwnerID = &owner
	}
	return res, nil
}

func (s *menuService) UpdateMenu(ctx context.Context, id string, req domain.MenuRequest, userID string) (*entities.Menu, error) {
	menu, err := s.GetOwnedMenu(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	entries, err := toEntries(req.Recipes)
	if err != nil {
		return nil, err
	}
	menu.Name = strings.TrimSpace(req.Name)
	menu.Recipes = datatypes.NewJSONSlice(entries)

	if err := s.menuRepository.UpdateMenu(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// DeleteMenu detaches the menu from its owner. The record itself is kept.
func (s *menuService) DeleteMenu(ctx context.Context, id string, userID string) (*entities.Menu, error) {
	menu, err := s.GetOwnedMenu(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	menu.OwnerID = nil
	if err := s.menuRepository.UpdateMenu(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// GetOwnedMenu loads a menu that userID owns.
func (s *menuService) GetOwnedMenu(ctx context.Context, id string, userID string) (*entities.Menu, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	menu, err := s.menuRepository.GetMenuByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if menu.OwnerID == nil || *menu.OwnerID != userUUID {
		return nil, domain.ErrNotMenuOwner
	}
	return menu, nil
}

// ScaledRecipes loads every recipe of the menu and scales it to the servings
// the menu asks for. Stored recipes are not modified.
func (s *menuService) ScaledRecipes(ctx context.Context, menu *entities.Menu) ([]entities.Recipe, error) {
	scaled := make([]entities.Recipe, len(menu.Recipes))

	g, gctx := errgroup.WithContext(ctx)
	for i, entry := range menu.Recipes {
		g.Go(func() error {
			recipe, err := s.recipes.GetRecipeByID(gctx, entry.RecipeID.String())
			if err != nil {
				return fmt.Errorf("menu recipe %s: %w", entry.RecipeID, err)
			}
			r, err := pricing.ScaleRecipe(*recipe, entry.Servings)
			if err != nil {
				return err
			}
			scaled[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scaled, nil
}

func toEntries(reqs []domain.MenuEntryRequest) ([]entities.MenuEntry, error) {
	entries := make([]entities.MenuEntry, 0, len(reqs))
	for _, r := range reqs {
		id, err := uuid.Parse(r.RecipeID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		entries = append(entries, entities.MenuEntry{RecipeID: id, Servings: r.Servings})
	}
	return entries, nil
}
