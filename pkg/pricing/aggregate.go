package pricing

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Aggregator merges recipe lines into a shopping list ordered by name in
// the configured locale.
type Aggregator struct {
	tag language.Tag
}

func NewAggregator(locale string) *Aggregator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	return &Aggregator{tag: tag}
}

type bucket struct {
	item   domain.ShoppingListItem
	amount decimal.Decimal
}

// Aggregate merges lines sharing a name (case and surrounding space
// insensitive) and unit. Amounts are taken in the ingredient's primary unit
// and scaled by servings over original servings when both are known.
func (a *Aggregator) Aggregate(recipes []entities.Recipe) []domain.ShoppingListItem {
	buckets := make([]*bucket, 0)
	byKey := make(map[string]*bucket)

	for _, r := range recipes {
		factor := decimal.NewFromInt(1)
		if r.Servings > 0 && r.OriginalServings > 0 {
			factor = decimal.NewFromInt(int64(r.Servings)).Div(decimal.NewFromInt(int64(r.OriginalServings)))
		}

		for _, l := range r.Ingredients {
			unit, amount := l.PrimaryUnit, l.PrimaryAmount
			if unit == "" {
				unit, amount = l.Unit, l.Amount
			}
			contribution := decimal.NewFromFloat(amount).Mul(factor)

			key := strings.ToLower(strings.TrimSpace(l.Name)) + "\x00" + unit
			b, ok := byKey[key]
			if !ok {
				b = &bucket{item: domain.ShoppingListItem{Name: l.Name, Unit: unit}}
				byKey[key] = b
				buckets = append(buckets, b)
			}
			b.amount = b.amount.Add(contribution)
		}
	}

	col := collate.New(a.tag, collate.IgnoreCase)
	sort.SliceStable(buckets, func(i, j int) bool {
		return col.CompareString(buckets[i].item.Name, buckets[j].item.Name) < 0
	})

	items := make([]domain.ShoppingListItem, len(buckets))
	for i, b := range buckets {
		items[i] = b.item
		items[i].Amount = b.amount.Round(6).InexactFloat64()
	}
	return items
}
