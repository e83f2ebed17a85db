package ingredient

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"Gomez-Kitchen/pkg/catalog"
	"Gomez-Kitchen/pkg/pricing"
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, userID string) (*entities.Ingredient, error)
		ImportFromCatalog(ctx context.Context, req domain.ImportIngredientRequest, userID string) (*entities.Ingredient, error)
		SearchCatalog(ctx context.Context, query string) ([]domain.CatalogProduct, error)
		GetIngredients(ctx context.Context, filter domain.IngredientFilter) ([]*entities.Ingredient, domain.PaginationResponse, error)
		GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error)
		GetFollowing(ctx context.Context, userID string, pagination domain.PaginationRequest) ([]*entities.Ingredient, domain.PaginationResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, userID string) (*entities.Ingredient, error)
		FollowIngredient(ctx context.Context, id string, userID string) (*entities.Ingredient, error)
		RefreshIngredient(ctx context.Context, id string) (*entities.Ingredient, error)
		UnfollowIngredient(ctx context.Context, id string, userID string) (*entities.Ingredient, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		catalog              catalog.Client
		refresher            pricing.Refresher
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, catalogClient catalog.Client, refresher pricing.Refresher) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		catalog:              catalogClient,
		refresher:            refresher,
	}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, userID string) (*entities.Ingredient, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	unit := pricing.NormalizeUnit(req.Unit)
	if unit == "" {
		unit = pricing.UnitPiece
	}
	extra := toQuantities(req.ExtraUnits)
	if err := pricing.ValidateExtraUnits(unit, extra); err != nil {
		return nil, err
	}

	ingredient := &entities.Ingredient{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(req.Name),
		Price:      req.Price,
		Unit:       unit,
		Amount:     req.Amount,
		ExtraUnits: datatypes.NewJSONSlice(extra),
		OwnerID:    &userUUID,
		Followers:  datatypes.NewJSONSlice([]uuid.UUID{userUUID}),
	}
	if req.ExternalID != "" {
		ingredient.ExternalID = &req.ExternalID
	}

	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *ingredientService) ImportFromCatalog(ctx context.Context, req domain.ImportIngredientRequest, userID string) (*entities.Ingredient, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	product, err := s.catalog.FetchByID(ctx, req.ExternalID)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogProductNotFound) {
			return nil, domain.ErrCatalogUnusableResult
		}
		return nil, err
	}
	if !catalog.Usable(product) || !pricing.IsCanonicalUnit(product.Unit) {
		log.Infow("catalog product not usable", "external_id", req.ExternalID, "product", product)
		return nil, domain.ErrCatalogUnusableResult
	}

	externalID := req.ExternalID
	ingredient := &entities.Ingredient{
		ID:         uuid.New(),
		Name:       product.Name,
		Price:      product.Price,
		Unit:       product.Unit,
		Amount:     product.Amount,
		ExtraUnits: datatypes.NewJSONSlice([]entities.Quantity{}),
		ExternalID: &externalID,
		OwnerID:    &userUUID,
		Followers:  datatypes.NewJSONSlice([]uuid.UUID{userUUID}),
	}
	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *ingredientService) SearchCatalog(ctx context.Context, query string) ([]domain.CatalogProduct, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.CatalogProduct{}, nil
	}
	return s.catalog.Search(ctx, query)
}

func (s *ingredientService) GetIngredients(ctx context.Context, filter domain.IngredientFilter) ([]*entities.Ingredient, domain.PaginationResponse, error) {
	ingredients, count, err := s.ingredientRepository.GetIngredients(ctx, strings.TrimSpace(filter.Name), filter.Page, filter.ItemsPerPage)
	if err != nil {
		return nil, domain.PaginationResponse{}, err
	}
	return ingredients, domain.NewPaginationResponse(filter.Page, filter.ItemsPerPage, len(ingredients), count), nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	return s.ingredientRepository.GetIngredientByID(ctx, id)
}

func (s *ingredientService) GetFollowing(ctx context.Context, userID string, pagination domain.PaginationRequest) ([]*entities.Ingredient, domain.PaginationResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.PaginationResponse{}, domain.ErrParseUUID
	}

	ingredients, count, err := s.ingredientRepository.GetFollowedIngredients(ctx, userID, pagination.Page, pagination.ItemsPerPage)
	if err != nil {
		return nil, domain.PaginationResponse{}, err
	}
	return ingredients, domain.NewPaginationResponse(pagination.Page, pagination.ItemsPerPage, len(ingredients), count), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, userID string) (*entities.Ingredient, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members := membershipOf(ingredient)
	if members.Owner != nil && !members.IsOwner(userUUID) {
		return nil, domain.ErrNotIngredientOwner
	}

	if req.Name != nil {
		ingredient.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		ingredient.Price = *req.Price
	}
	if req.Unit != nil {
		ingredient.Unit = pricing.NormalizeUnit(*req.Unit)
	}
	if req.Amount != nil {
		ingredient.Amount = *req.Amount
	}
	if req.ExtraUnits != nil {
		ingredient.ExtraUnits = datatypes.NewJSONSlice(toQuantities(req.ExtraUnits))
	}
	if req.ExternalID != nil {
		if *req.ExternalID == "" {
			ingredient.ExternalID = nil
		} else {
			externalID := *req.ExternalID
			ingredient.ExternalID = &externalID
		}
	}
	if err := pricing.ValidateExtraUnits(ingredient.Unit, ingredient.ExtraUnits); err != nil {
		return nil, err
	}

	applyMembership(ingredient, members.Claim(userUUID))

	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *ingredientService) FollowIngredient(ctx context.Context, id string, userID string) (*entities.Ingredient, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := membershipOf(ingredient).Follow(userUUID)
	if err != nil {
		return nil, err
	}
	applyMembership(ingredient, members)

	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *ingredientService) RefreshIngredient(ctx context.Context, id string) (*entities.Ingredient, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ingredient.HasExternalID() {
		return nil, domain.ErrNoExternalID
	}

	refreshed, err := s.refresher.Refresh(ctx, ingredient)
	if err != nil {
		return nil, err
	}
	if !refreshed {
		return nil, domain.ErrCatalogUnusableResult
	}

	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *ingredientService) UnfollowIngredient(ctx context.Context, id string, userID string) (*entities.Ingredient, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := membershipOf(ingredient).Unfollow(userUUID)
	if err != nil {
		return nil, err
	}
	applyMembership(ingredient, members)

	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func membershipOf(ingredient *entities.Ingredient) pricing.Membership {
	return pricing.Membership{Owner: ingredient.OwnerID, Followers: ingredient.Followers}
}

func applyMembership(ingredient *entities.Ingredient, members pricing.Membership) {
	ingredient.OwnerID = members.Owner
	ingredient.Followers = datatypes.NewJSONSlice(members.Followers)
}

func toQuantities(reqs []domain.ExtraUnitRequest) []entities.Quantity {
	quantities := make([]entities.Quantity, 0, len(reqs))
	for _, r := range reqs {
		quantities = append(quantities, entities.Quantity{
			Unit:   pricing.NormalizeUnit(r.Unit),
			Amount: r.Amount,
		})
	}
	return quantities
}
