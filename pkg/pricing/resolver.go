package pricing

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"fmt"

	"github.com/shopspring/decimal"
)

// Resolution is the price of a requested quantity of an ingredient.
type Resolution struct {
	Price         int64
	PrimaryUnit   string
	PrimaryAmount float64
	Units         []string
}

// Resolve prices amount of unit against the ingredient's canonical quantity
// or one of its extra units. Prices are rounded half up to whole currency
// units.
func Resolve(ing *entities.Ingredient, unit string, amount float64) (Resolution, error) {
	if amount < 0 {
		return Resolution{}, domain.ErrInvalidQuantity
	}

	requested := decimal.NewFromFloat(amount)
	res := Resolution{
		PrimaryUnit: ing.Unit,
		Units:       UnitsOf(ing),
	}

	base := ing.Amount
	primary := requested
	if unit != ing.Unit {
		extra, ok := FindExtraUnit(ing.ExtraUnits, unit)
		if !ok {
			return Resolution{}, fmt.Errorf("%w: %q is not one of %v", domain.ErrUnitConversion, unit, res.Units)
		}
		if extra.Amount == 0 {
			return Resolution{}, fmt.Errorf("%w: extra unit %q has amount 0", domain.ErrDivisionDegenerate, unit)
		}
		base = extra.Amount
		primary = requested.Mul(decimal.NewFromFloat(ing.Amount)).Div(decimal.NewFromFloat(extra.Amount))
	} else if base == 0 {
		return Resolution{}, fmt.Errorf("%w: ingredient amount is 0", domain.ErrDivisionDegenerate)
	}

	res.Price = decimal.NewFromInt(ing.Price).
		Mul(requested).
		Div(decimal.NewFromFloat(base)).
		Round(0).
		IntPart()
	res.PrimaryAmount = primary.InexactFloat64()
	return res, nil
}

// Line builds the recipe snapshot for a resolved quantity.
func Line(ing *entities.Ingredient, unit string, amount float64) (entities.RecipeIngredient, error) {
	res, err := Resolve(ing, unit, amount)
	if err != nil {
		return entities.RecipeIngredient{}, err
	}
	return entities.RecipeIngredient{
		IngredientID:  ing.ID,
		Name:          ing.Name,
		Price:         res.Price,
		Unit:          unit,
		Amount:        amount,
		ExtraUnits:    res.Units,
		PrimaryUnit:   res.PrimaryUnit,
		PrimaryAmount: res.PrimaryAmount,
	}, nil
}
