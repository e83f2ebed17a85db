package menu

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		CreateMenu(ctx context.Context, menu *entities.Menu) error
		GetMenuByID(ctx context.Context, id string) (*entities.Menu, error)
		UpdateMenu(ctx context.Context, menu *entities.Menu) error
		GetMenusByOwner(ctx context.Context, ownerID string, page, limit int) ([]*entities.Menu, int64, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateMenu(ctx context.Context, menu *entities.Menu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *menuRepository) GetMenuByID(ctx context.Context, id string) (*entities.Menu, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrMenuNotFound
	}

	var menu entities.Menu
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) UpdateMenu(ctx context.Context, menu *entities.Menu) error {
	return r.db.WithContext(ctx).Save(menu).Error
}

func (r *menuRepository) GetMenusByOwner(ctx context.Context, ownerID string, page, limit int) ([]*entities.Menu, int64, error) {
	var menus []*entities.Menu
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Menu{}).Where("owner_id = ?", ownerID)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&menus).Error; err != nil {
		return nil, 0, err
	}
	return menus, count, nil
}
