package pricing

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"fmt"

	"github.com/shopspring/decimal"
)

// ScaleRecipe returns a copy of r priced for desired servings. r is not
// modified.
func ScaleRecipe(r entities.Recipe, desired int) (entities.Recipe, error) {
	if desired < 0 {
		return entities.Recipe{}, domain.ErrInvalidQuantity
	}
	if r.Servings == 0 {
		return entities.Recipe{}, fmt.Errorf("%w: recipe %s has 0 servings", domain.ErrDivisionDegenerate, r.ID)
	}

	scaled := r
	scaled.Ingredients = append(r.Ingredients[:0:0], r.Ingredients...)
	scaled.Instructions = append(r.Instructions[:0:0], r.Instructions...)
	scaled.Followers = append(r.Followers[:0:0], r.Followers...)
	scaled.Price = decimal.NewFromInt(r.Price).
		Mul(decimal.NewFromInt(int64(desired))).
		Div(decimal.NewFromInt(int64(r.Servings))).
		Round(0).
		IntPart()
	scaled.Servings = desired
	scaled.PricePerServing = PricePerServing(scaled.Price, scaled.Servings)
	return scaled, nil
}

// PricePerServing is 0 for recipes without servings.
func PricePerServing(price int64, servings int) float64 {
	if servings <= 0 {
		return 0
	}
	return decimal.NewFromInt(price).Div(decimal.NewFromInt(int64(servings))).Round(2).InexactFloat64()
}
