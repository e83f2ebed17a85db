package recipe

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error)
		GetFollowedRecipes(ctx context.Context, userID string, page, limit int) ([]*entities.Recipe, int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	return r.paginate(r.db.WithContext(ctx).Model(&entities.Recipe{}), page, limit)
}

func (r *recipeRepository) GetFollowedRecipes(ctx context.Context, userID string, page, limit int) ([]*entities.Recipe, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("followers @> ?::jsonb", fmt.Sprintf(`[%q]`, userID))
	return r.paginate(query, page, limit)
}

func (r *recipeRepository) paginate(query *gorm.DB, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, count, nil
}
