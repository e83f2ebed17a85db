package pricing

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func stew() entities.Recipe {
	return entities.Recipe{
		ID:               uuid.New(),
		Name:             "Cazuela",
		Price:            4000,
		Servings:         4,
		OriginalServings: 4,
		Ingredients: datatypes.NewJSONSlice([]entities.RecipeIngredient{
			{Name: "Zapallo", Unit: UnitKilogram, Amount: 1, Price: 4000, PrimaryUnit: UnitKilogram, PrimaryAmount: 1},
		}),
		Instructions: datatypes.NewJSONSlice([]string{"hervir"}),
	}
}

func TestScaleRecipe(t *testing.T) {
	tests := []struct {
		name      string
		desired   int
		wantPrice int64
	}{
		{name: "double", desired: 8, wantPrice: 8000},
		{name: "half", desired: 2, wantPrice: 2000},
		{name: "identity", desired: 4, wantPrice: 4000},
		{name: "single", desired: 1, wantPrice: 1000},
		{name: "zero", desired: 0, wantPrice: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := stew()
			scaled, err := ScaleRecipe(r, tt.desired)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, scaled.Price)
			assert.Equal(t, tt.desired, scaled.Servings)
			assert.Equal(t, 4, scaled.OriginalServings)
			assert.Equal(t, int64(4000), r.Price)
			assert.Equal(t, 4, r.Servings)
		})
	}
}

func TestScaleRecipe_DoesNotShareLines(t *testing.T) {
	r := stew()
	scaled, err := ScaleRecipe(r, 2)
	require.NoError(t, err)

	scaled.Ingredients[0].Name = "otro"
	assert.Equal(t, "Zapallo", r.Ingredients[0].Name)
}

func TestScaleRecipe_ZeroServings(t *testing.T) {
	r := stew()
	r.Servings = 0
	_, err := ScaleRecipe(r, 3)
	assert.ErrorIs(t, err, domain.ErrDivisionDegenerate)

	_, err = ScaleRecipe(stew(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestPricePerServing(t *testing.T) {
	assert.Equal(t, 1000.0, PricePerServing(4000, 4))
	assert.Equal(t, 333.33, PricePerServing(1000, 3))
	assert.Equal(t, 0.0, PricePerServing(1000, 0))
}
