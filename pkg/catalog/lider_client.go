package catalog

import (
	"Gomez-Kitchen/domain"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2/log"
)

const (
	DefaultBaseURL     = "https://www.lider.cl/supermercado"
	DefaultSearchLimit = 40
)

type liderClient struct {
	baseURL     string
	searchLimit int
	httpClient  *http.Client
}

// NewLiderClient scrapes product and search pages of the lider.cl store.
func NewLiderClient(baseURL string, timeout time.Duration, searchLimit int) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if searchLimit <= 0 || searchLimit > DefaultSearchLimit {
		searchLimit = DefaultSearchLimit
	}
	return &liderClient{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		searchLimit: searchLimit,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

func (c *liderClient) FetchByID(ctx context.Context, externalID string) (domain.CatalogProduct, error) {
	doc, err := c.get(ctx, c.baseURL+"/product/"+url.PathEscape(externalID))
	if err != nil {
		return domain.CatalogProduct{}, err
	}

	product := domain.CatalogProduct{
		ExternalID: externalID,
		Price:      parsePrice(doc.Find(".price").First().Text()),
	}

	display := doc.Find("#span-display-name").First()
	if display.Length() > 0 {
		brand := strings.TrimSpace(display.Prev().Text())
		name := strings.TrimSpace(display.Text())
		product.Name = joinName(brand, name)
		product.Amount, product.Unit = parseQuantity(display.Next().Text())
	}
	return product, nil
}

func (c *liderClient) Search(ctx context.Context, query string) ([]domain.CatalogProduct, error) {
	q := url.QueryEscape(query)
	doc, err := c.get(ctx, fmt.Sprintf("%s/search?Ntt=%s&ost=%s", c.baseURL, q, q))
	if err != nil {
		return nil, err
	}

	products := make([]domain.CatalogProduct, 0, c.searchLimit)
	doc.Find(".box-product").EachWithBreak(func(i int, box *goquery.Selection) bool {
		if len(products) >= c.searchLimit {
			return false
		}
		id, ok := box.Attr("prod-number")
		if !ok || id == "" {
			log.Debugw("catalog search row without product number", "index", i)
			return true
		}
		product := domain.CatalogProduct{
			ExternalID: id,
			Name: joinName(
				strings.TrimSpace(box.Find(".product-name").First().Text()),
				strings.TrimSpace(box.Find(".product-description").First().Text()),
			),
			Price: parsePrice(box.Find(".price-sell").First().Text()),
		}
		product.Amount, product.Unit = parseQuantity(box.Find(".product-attribute").First().Text())
		products = append(products, product)
		return true
	})
	return products, nil
}

func (c *liderClient) get(ctx context.Context, target string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warnw("catalog request failed", "url", target, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrCatalogProductNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warnw("catalog responded with error", "url", target, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	return doc, nil
}

func joinName(brand, name string) string {
	switch {
	case brand == "":
		return name
	case name == "":
		return brand
	default:
		return brand + ", " + name
	}
}
