package ingredient

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"Gomez-Kitchen/pkg/catalog"
	"Gomez-Kitchen/pkg/pricing"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"
)

type catalogRefresher struct {
	client            catalog.Client
	overwriteQuantity bool
}

// NewCatalogRefresher refreshes ingredient prices from client. With
// overwriteQuantity the catalog's unit and amount replace the stored ones
// too, as long as the unit is canonical and not already an extra unit.
func NewCatalogRefresher(client catalog.Client, overwriteQuantity bool) pricing.Refresher {
	return &catalogRefresher{
		client:            client,
		overwriteQuantity: overwriteQuantity,
	}
}

func (r *catalogRefresher) Refresh(ctx context.Context, ingredient *entities.Ingredient) (bool, error) {
	if !ingredient.HasExternalID() {
		return false, nil
	}

	product, err := r.client.FetchByID(ctx, *ingredient.ExternalID)
	if errors.Is(err, domain.ErrCatalogProductNotFound) {
		log.Infow("catalog product not found", "ingredient_id", ingredient.ID, "external_id", *ingredient.ExternalID)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !catalog.Usable(product) {
		log.Infow("catalog product not usable", "ingredient_id", ingredient.ID, "external_id", *ingredient.ExternalID)
		return false, nil
	}

	ingredient.Price = product.Price
	if r.overwriteQuantity && r.canOverwrite(ingredient, product) {
		ingredient.Unit = product.Unit
		ingredient.Amount = product.Amount
	}
	return true, nil
}

func (r *catalogRefresher) canOverwrite(ingredient *entities.Ingredient, product domain.CatalogProduct) bool {
	if !pricing.IsCanonicalUnit(product.Unit) {
		return false
	}
	_, clash := pricing.FindExtraUnit(ingredient.ExtraUnits, product.Unit)
	return !clash
}
