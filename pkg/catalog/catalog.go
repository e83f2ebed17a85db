package catalog

import (
	"Gomez-Kitchen/domain"
	"context"
	"strconv"
	"strings"
)

//go:generate mockgen -source=catalog.go -destination=mock/client.go -package=mock

// Client is the grocery catalog ingredients can be imported from and
// refreshed against.
type Client interface {
	FetchByID(ctx context.Context, externalID string) (domain.CatalogProduct, error)
	Search(ctx context.Context, query string) ([]domain.CatalogProduct, error)
}

// Usable reports whether a product carries everything needed to price an
// ingredient.
func Usable(p domain.CatalogProduct) bool {
	return p.Name != "" && p.Price > 0 && p.Amount > 0 && p.Unit != ""
}

// parsePrice turns "$1.990" into 1990. Unparseable input yields 0.
func parsePrice(raw string) int64 {
	cleaned := strings.NewReplacer("$", "", ".", "", " ", "", "\u00a0", "").Replace(strings.TrimSpace(raw))
	price, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}

// parseQuantity turns "1,5 Kg" into (1.5, "kg").
func parseQuantity(raw string) (float64, string) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return 0, ""
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", "."), 64)
	if err != nil || amount <= 0 {
		return 0, ""
	}
	return amount, strings.ToLower(fields[1])
}
