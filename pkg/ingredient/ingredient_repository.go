package ingredient

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=ingredient_repository.go -destination=mock/ingredient_repository.go -package=mock

type (
	IngredientRepository interface {
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error)
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredients(ctx context.Context, name string, page, limit int) ([]*entities.Ingredient, int64, error)
		GetFollowedIngredients(ctx context.Context, userID string, page, limit int) ([]*entities.Ingredient, int64, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrIngredientNotFound
	}

	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *ingredientRepository) GetIngredients(ctx context.Context, name string, page, limit int) ([]*entities.Ingredient, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Ingredient{})
	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}
	return r.paginate(query, page, limit)
}

func (r *ingredientRepository) GetFollowedIngredients(ctx context.Context, userID string, page, limit int) ([]*entities.Ingredient, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("followers @> ?::jsonb", fmt.Sprintf(`[%q]`, userID))
	return r.paginate(query, page, limit)
}

func (r *ingredientRepository) paginate(query *gorm.DB, page, limit int) ([]*entities.Ingredient, int64, error) {
	var ingredients []*entities.Ingredient
	var count int64

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&ingredients).Error; err != nil {
		return nil, 0, err
	}
	return ingredients, count, nil
}
