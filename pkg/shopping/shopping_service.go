package shopping

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"Gomez-Kitchen/internal/utils/mailing"
	"Gomez-Kitchen/internal/utils/storage"
	"Gomez-Kitchen/pkg/pricing"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"html/template"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/sync/errgroup"
)

const exportFolder = "shopping-lists"

var listTemplate = template.Must(template.New("list").Parse(`<h2>Lista de compras</h2>
<table>
<tr><th>Ingrediente</th><th>Cantidad</th><th>Unidad</th></tr>
{{range .}}<tr><td>{{.Name}}</td><td>{{.Amount}}</td><td>{{.Unit}}</td></tr>
{{end}}</table>`))

type (
	ShoppingService interface {
		GenerateList(ctx context.Context, req domain.GenerateListRequest) ([]domain.ShoppingListItem, error)
		GenerateMenuList(ctx context.Context, menuID string, userID string) ([]domain.ShoppingListItem, error)
		ExportList(ctx context.Context, req domain.GenerateListRequest) (domain.ExportListResponse, error)
		MailList(ctx context.Context, req domain.GenerateListRequest, userID string) error
	}

	RecipeLoader interface {
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
	}

	MenuSource interface {
		GetOwnedMenu(ctx context.Context, id string, userID string) (*entities.Menu, error)
		ScaledRecipes(ctx context.Context, menu *entities.Menu) ([]entities.Recipe, error)
	}

	UserLookup interface {
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
	}

	shoppingService struct {
		recipes    RecipeLoader
		menus      MenuSource
		users      UserLookup
		aggregator *pricing.Aggregator
		s3         storage.AwsS3
		mailer     mailing.Mailer
	}
)

func NewShoppingService(
	recipes RecipeLoader,
	menus MenuSource,
	users UserLookup,
	aggregator *pricing.Aggregator,
	s3 storage.AwsS3,
	mailer mailing.Mailer,
) ShoppingService {
	return &shoppingService{
		recipes:    recipes,
		menus:      menus,
		users:      users,
		aggregator: aggregator,
		s3:         s3,
		mailer:     mailer,
	}
}

func (s *shoppingService) GenerateList(ctx context.Context, req domain.GenerateListRequest) ([]domain.ShoppingListItem, error) {
	recipes := make([]entities.Recipe, len(req.Recipes))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range req.Recipes {
		g.Go(func() error {
			recipe, err := s.recipes.GetRecipeByID(gctx, r.RecipeID)
			if err != nil {
				return fmt.Errorf("list recipe %s: %w", r.RecipeID, err)
			}
			if r.Servings == nil {
				recipes[i] = *recipe
				return nil
			}
			scaled, err := pricing.ScaleRecipe(*recipe, *r.Servings)
			if err != nil {
				return err
			}
			recipes[i] = scaled
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.aggregator.Aggregate(recipes), nil
}

func (s *shoppingService) GenerateMenuList(ctx context.Context, menuID string, userID string) ([]domain.ShoppingListItem, error) {
	menu, err := s.menus.GetOwnedMenu(ctx, menuID, userID)
	if err != nil {
		return nil, err
	}

	recipes, err := s.menus.ScaledRecipes(ctx, menu)
	if err != nil {
		return nil, err
	}
	return s.aggregator.Aggregate(recipes), nil
}

func (s *shoppingService) ExportList(ctx context.Context, req domain.GenerateListRequest) (domain.ExportListResponse, error) {
	items, err := s.GenerateList(ctx, req)
	if err != nil {
		return domain.ExportListResponse{}, err
	}

	body, err := renderCSV(items)
	if err != nil {
		return domain.ExportListResponse{}, err
	}

	key, err := s.s3.UploadFile(ctx, "lista.csv", body, exportFolder, "text/csv", storage.AllowCSV...)
	if err != nil {
		log.Warnw("shopping list upload failed", "error", err)
		return domain.ExportListResponse{}, fmt.Errorf("%w: %w", domain.ErrExportList, err)
	}
	return domain.ExportListResponse{URL: s.s3.GetPublicLinkKey(key)}, nil
}

func (s *shoppingService) MailList(ctx context.Context, req domain.GenerateListRequest, userID string) error {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	items, err := s.GenerateList(ctx, req)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	if err := listTemplate.Execute(&body, items); err != nil {
		return err
	}

	if err := s.mailer.SendMail(user.Email, "Tu lista de compras", body.String()); err != nil {
		log.Warnw("shopping list mail failed", "user_id", userID, "error", err)
		return fmt.Errorf("%w: %w", domain.ErrMailList, err)
	}
	return nil
}

func renderCSV(items []domain.ShoppingListItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"name", "amount", "unit"}); err != nil {
		return nil, err
	}
	for _, item := range items {
		row := []string{item.Name, strconv.FormatFloat(item.Amount, 'f', -1, 64), item.Unit}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
