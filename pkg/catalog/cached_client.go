package catalog

import (
	"Gomez-Kitchen/domain"
	"context"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"
)

type (
	cachedClient struct {
		inner Client
		cache *lru.Cache
		ttl   time.Duration
		now   func() time.Time
	}

	cachedSearch struct {
		products  []domain.CatalogProduct
		fetchedAt time.Time
	}

	// productNames implements fuzzy.Source over product names.
	productNames []domain.CatalogProduct
)

func (p productNames) String(i int) string { return p[i].Name }
func (p productNames) Len() int            { return len(p) }

// NewCachedClient keeps recent search results for ttl and ranks them against
// the query. Product lookups always go to the catalog so refreshes see live
// prices.
func NewCachedClient(inner Client, size int, ttl time.Duration) Client {
	cache, err := lru.New(size)
	if err != nil {
		cache, _ = lru.New(256)
	}
	return &cachedClient{
		inner: inner,
		cache: cache,
		ttl:   ttl,
		now:   time.Now,
	}
}

func (c *cachedClient) FetchByID(ctx context.Context, externalID string) (domain.CatalogProduct, error) {
	return c.inner.FetchByID(ctx, externalID)
}

func (c *cachedClient) Search(ctx context.Context, query string) ([]domain.CatalogProduct, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if v, ok := c.cache.Get(key); ok {
		entry := v.(cachedSearch)
		if c.now().Sub(entry.fetchedAt) < c.ttl {
			return append([]domain.CatalogProduct(nil), entry.products...), nil
		}
		c.cache.Remove(key)
	}

	products, err := c.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	ranked := rank(key, products)
	c.cache.Add(key, cachedSearch{products: ranked, fetchedAt: c.now()})
	return append([]domain.CatalogProduct(nil), ranked...), nil
}

// rank puts products whose name fuzzy-matches query first, best match
// first, followed by the rest in catalog order.
func rank(query string, products []domain.CatalogProduct) []domain.CatalogProduct {
	if query == "" || len(products) == 0 {
		return products
	}

	matches := fuzzy.FindFrom(query, productNames(products))
	ranked := make([]domain.CatalogProduct, 0, len(products))
	used := make(map[int]bool, len(matches))
	for _, m := range matches {
		ranked = append(ranked, products[m.Index])
		used[m.Index] = true
	}
	for i, p := range products {
		if !used[i] {
			ranked = append(ranked, p)
		}
	}
	return ranked
}
