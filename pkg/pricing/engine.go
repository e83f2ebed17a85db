package pricing

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type (
	// IngredientLoader returns domain.ErrIngredientNotFound for unknown ids.
	IngredientLoader interface {
		GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error)
	}

	IngredientSaver interface {
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
	}

	// Refresher pulls the latest catalog price into an ingredient. It reports
	// false when nothing usable came back and the ingredient was left as is.
	Refresher interface {
		Refresh(ctx context.Context, ingredient *entities.Ingredient) (bool, error)
	}
)

// BuildIngredientLines resolves every requested line concurrently. Either all
// lines resolve or an error wrapping domain.ErrIngredientLines and the cause
// is returned with no lines.
func BuildIngredientLines(ctx context.Context, loader IngredientLoader, reqs []domain.RecipeIngredientRequest) ([]entities.RecipeIngredient, error) {
	lines := make([]entities.RecipeIngredient, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		g.Go(func() error {
			ing, err := loader.GetIngredientByID(gctx, req.IngredientID)
			if err != nil {
				return fmt.Errorf("line %d: %w", i, err)
			}
			line, err := Line(ing, NormalizeUnit(req.Unit), req.Amount)
			if err != nil {
				return fmt.Errorf("line %d: %w", i, err)
			}
			lines[i] = line
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIngredientLines, err)
	}
	return lines, nil
}

// ComputePrice is the recipe price for a set of lines.
func ComputePrice(lines []entities.RecipeIngredient) int64 {
	var total int64
	for _, l := range lines {
		total += l.Price
	}
	return total
}

// RefreshLines refreshes each distinct ingredient referenced by lines from
// the catalog, persists the ones that changed, and reprices every line at its
// stored unit and amount. A nil refresher only reprices from the stored
// ingredients.
func RefreshLines(ctx context.Context, loader IngredientLoader, refresher Refresher, saver IngredientSaver, lines []entities.RecipeIngredient) ([]entities.RecipeIngredient, error) {
	ids := make([]string, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, l := range lines {
		id := l.IngredientID.String()
		if _, ok := index[id]; ok {
			continue
		}
		index[id] = len(ids)
		ids = append(ids, id)
	}

	live := make([]*entities.Ingredient, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			ing, err := loader.GetIngredientByID(gctx, id)
			if err != nil {
				return fmt.Errorf("ingredient %s: %w", id, err)
			}
			if refresher != nil {
				changed, err := refresher.Refresh(gctx, ing)
				if err != nil {
					return fmt.Errorf("ingredient %s: %w", id, err)
				}
				if changed {
					if err := saver.UpdateIngredient(gctx, ing); err != nil {
						return fmt.Errorf("ingredient %s: %w", id, err)
					}
				}
			}
			live[i] = ing
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	refreshed := make([]entities.RecipeIngredient, len(lines))
	for i, l := range lines {
		line, err := Line(live[index[l.IngredientID.String()]], l.Unit, l.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", domain.ErrIngredientLines, i, err)
		}
		refreshed[i] = line
	}
	return refreshed, nil
}
