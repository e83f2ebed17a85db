package pricing

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func recipeWith(servings, original int, lines ...entities.RecipeIngredient) entities.Recipe {
	return entities.Recipe{
		Servings:         servings,
		OriginalServings: original,
		Ingredients:      datatypes.NewJSONSlice(lines),
	}
}

func salt(amount float64) entities.RecipeIngredient {
	return entities.RecipeIngredient{Name: "Salt", Unit: UnitGram, Amount: amount, PrimaryUnit: UnitGram, PrimaryAmount: amount}
}

func TestAggregate_MergesByNameAndUnit(t *testing.T) {
	got := NewAggregator("en").Aggregate([]entities.Recipe{
		recipeWith(2, 2, salt(5)),
		recipeWith(2, 2, salt(5)),
	})
	assert.Equal(t, []domain.ShoppingListItem{{Name: "Salt", Unit: UnitGram, Amount: 10}}, got)
}

func TestAggregate_KeepsUnitsApart(t *testing.T) {
	got := NewAggregator("en").Aggregate([]entities.Recipe{
		recipeWith(1, 1,
			entities.RecipeIngredient{Name: "Milk", PrimaryUnit: UnitLiter, PrimaryAmount: 1},
			entities.RecipeIngredient{Name: "milk ", PrimaryUnit: UnitLiter, PrimaryAmount: 0.5},
			entities.RecipeIngredient{Name: "Milk", PrimaryUnit: UnitMilliliter, PrimaryAmount: 200},
		),
	})
	assert.Equal(t, []domain.ShoppingListItem{
		{Name: "Milk", Unit: UnitLiter, Amount: 1.5},
		{Name: "Milk", Unit: UnitMilliliter, Amount: 200},
	}, got)
}

func TestAggregate_UsesPrimaryQuantity(t *testing.T) {
	got := NewAggregator("en").Aggregate([]entities.Recipe{
		recipeWith(1, 1,
			entities.RecipeIngredient{Name: "Flour", Unit: UnitGram, Amount: 500, PrimaryUnit: UnitKilogram, PrimaryAmount: 0.5},
			entities.RecipeIngredient{Name: "Flour", Unit: UnitKilogram, Amount: 1, PrimaryUnit: UnitKilogram, PrimaryAmount: 1},
			entities.RecipeIngredient{Name: "Eggs", Unit: UnitPiece, Amount: 2},
		),
	})
	assert.Equal(t, []domain.ShoppingListItem{
		{Name: "Eggs", Unit: UnitPiece, Amount: 2},
		{Name: "Flour", Unit: UnitKilogram, Amount: 1.5},
	}, got)
}

func TestAggregate_ScalesByServings(t *testing.T) {
	got := NewAggregator("en").Aggregate([]entities.Recipe{
		recipeWith(6, 2, salt(5)),
		recipeWith(1, 2, salt(5)),
	})
	assert.Equal(t, []domain.ShoppingListItem{{Name: "Salt", Unit: UnitGram, Amount: 17.5}}, got)
}

func TestAggregate_LocaleOrder(t *testing.T) {
	names := []string{"sal", "Ñoquis", "Nuez", "Azúcar", "aceite"}
	recipes := make([]entities.Recipe, 0, len(names))
	for _, n := range names {
		recipes = append(recipes, recipeWith(1, 1, entities.RecipeIngredient{Name: n, PrimaryUnit: UnitPiece, PrimaryAmount: 1}))
	}

	got := NewAggregator("es").Aggregate(recipes)
	ordered := make([]string, len(got))
	for i, item := range got {
		ordered[i] = item.Name
	}
	assert.Equal(t, []string{"aceite", "Azúcar", "Nuez", "Ñoquis", "sal"}, ordered)
}

func TestAggregate_Empty(t *testing.T) {
	got := NewAggregator("es").Aggregate(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
