package menu

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type fakeMenuRepository struct {
	menus map[string]*entities.Menu
}

func (r *fakeMenuRepository) CreateMenu(_ context.Context, menu *entities.Menu) error {
	r.menus[menu.ID.String()] = menu
	return nil
}

func (r *fakeMenuRepository) GetMenuByID(_ context.Context, id string) (*entities.Menu, error) {
	menu, ok := r.menus[id]
	if !ok {
		return nil, domain.ErrMenuNotFound
	}
	cp := *menu
	return &cp, nil
}

func (r *fakeMenuRepository) UpdateMenu(_ context.Context, menu *entities.Menu) error {
	r.menus[menu.ID.String()] = menu
	return nil
}

func (r *fakeMenuRepository) GetMenusByOwner(_ context.Context, ownerID string, page, limit int) ([]*entities.Menu, int64, error) {
	var owned []*entities.Menu
	for _, m := range r.menus {
		if m.OwnerID != nil && m.OwnerID.String() == ownerID {
			owned = append(owned, m)
		}
	}
	return owned, int64(len(owned)), nil
}

type fakeRecipes map[string]*entities.Recipe

func (f fakeRecipes) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	r, ok := f[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	cp := *r
	return &cp, nil
}

type fixture struct {
	repo    *fakeMenuRepository
	recipes fakeRecipes
	service MenuService
	owner   uuid.UUID
	stew    *entities.Recipe
	salad   *entities.Recipe
}

func newFixture() *fixture {
	stew := &entities.Recipe{
		ID:               uuid.New(),
		Name:             "Cazuela",
		Price:            4000,
		Servings:         4,
		OriginalServings: 4,
		Ingredients: datatypes.NewJSONSlice([]entities.RecipeIngredient{
			{Name: "Zapallo", Unit: "kg", Amount: 1, Price: 4000, PrimaryUnit: "kg", PrimaryAmount: 1},
		}),
	}
	salad := &entities.Recipe{
		ID:               uuid.New(),
		Name:             "Ensalada",
		Price:            900,
		Servings:         3,
		OriginalServings: 3,
	}

	repo := &fakeMenuRepository{menus: map[string]*entities.Menu{}}
	recipes := fakeRecipes{stew.ID.String(): stew, salad.ID.String(): salad}
	return &fixture{
		repo:    repo,
		recipes: recipes,
		service: NewMenuService(repo, recipes),
		owner:   uuid.New(),
		stew:    stew,
		salad:   salad,
	}
}

func (f *fixture) createMenu(t *testing.T) *entities.Menu {
	t.Helper()
	menu, err := f.service.CreateMenu(context.Background(), domain.MenuRequest{
		Name: " Semana ",
		Recipes: []domain.MenuEntryRequest{
			{RecipeID: f.stew.ID.String(), Servings: 8},
			{RecipeID: f.salad.ID.String(), Servings: 1},
		},
	}, f.owner.String())
	require.NoError(t, err)
	return menu
}

func TestCreateMenu(t *testing.T) {
	f := newFixture()
	menu := f.createMenu(t)

	assert.Equal(t, "Semana", menu.Name)
	require.NotNil(t, menu.OwnerID)
	assert.Equal(t, f.owner, *menu.OwnerID)
	assert.Len(t, menu.Recipes, 2)

	_, err := f.service.CreateMenu(context.Background(), domain.MenuRequest{Name: "x"}, "nope")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGetMenuByID_ScalesRecipes(t *testing.T) {
	f := newFixture()
	menu := f.createMenu(t)

	res, err := f.service.GetMenuByID(context.Background(), menu.ID.String(), f.owner.String())
	require.NoError(t, err)
	require.Len(t, res.Recipes, 2)

	assert.Equal(t, f.stew.ID, res.Recipes[0].ID)
	assert.Equal(t, int64(8000), res.Recipes[0].Price)
	assert.Equal(t, 8, res.Recipes[0].Servings)
	assert.Equal(t, 4, res.Recipes[0].OriginalServings)

	assert.Equal(t, f.salad.ID, res.Recipes[1].ID)
	assert.Equal(t, int64(300), res.Recipes[1].Price)
	assert.Equal(t, 300.0, res.Recipes[1].PricePerServing)

	assert.Equal(t, int64(4000), f.stew.Price)
	assert.Equal(t, 4, f.stew.Servings)
}

func TestGetMenuByID_Errors(t *testing.T) {
	f := newFixture()
	menu := f.createMenu(t)

	_, err := f.service.GetMenuByID(context.Background(), menu.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotMenuOwner)

	_, err = f.service.GetMenuByID(context.Background(), uuid.NewString(), f.owner.String())
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)

	delete(f.recipes, f.salad.ID.String())
	_, err = f.service.GetMenuByID(context.Background(), menu.ID.String(), f.owner.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestUpdateMenu(t *testing.T) {
	f := newFixture()
	menu := f.createMenu(t)

	updated, err := f.service.UpdateMenu(context.Background(), menu.ID.String(), domain.MenuRequest{
		Name:    "Finde",
		Recipes: []domain.MenuEntryRequest{{RecipeID: f.salad.ID.String(), Servings: 6}},
	}, f.owner.String())
	require.NoError(t, err)
	assert.Equal(t, "Finde", updated.Name)
	require.Len(t, updated.Recipes, 1)
	assert.Equal(t, 6, updated.Recipes[0].Servings)

	_, err = f.service.UpdateMenu(context.Background(), menu.ID.String(), domain.MenuRequest{Name: "x"}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotMenuOwner)
}

func TestDeleteMenu(t *testing.T) {
	f := newFixture()
	menu := f.createMenu(t)

	_, err := f.service.DeleteMenu(context.Background(), menu.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotMenuOwner)

	deleted, err := f.service.DeleteMenu(context.Background(), menu.ID.String(), f.owner.String())
	require.NoError(t, err)
	assert.Nil(t, deleted.OwnerID)

	stored := f.repo.menus[menu.ID.String()]
	require.NotNil(t, stored)
	assert.Nil(t, stored.OwnerID)

	menus, pagination, err := f.service.GetMenus(context.Background(), f.owner.String(), domain.PaginationRequest{Page: 1, ItemsPerPage: 10})
	require.NoError(t, err)
	assert.Empty(t, menus)
	assert.Equal(t, int64(0), pagination.TotalPages)
}
