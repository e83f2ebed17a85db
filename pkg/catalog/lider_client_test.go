package catalog

import (
	"Gomez-Kitchen/domain"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productPage = `<html><body>
<div class="product-info">
  <span class="brand">Lider</span><span id="span-display-name">Harina sin polvos de hornear</span><span class="size">1 Kg</span>
  <p class="price">$1.190</p>
</div>
</body></html>`

const searchPage = `<html><body>
<div class="box-product" prod-number="111">
  <span class="product-name">Chef</span><span class="product-description">Aceite vegetal</span>
  <span class="price-sell"><b>$2.490</b></span><span class="product-attribute">1 L</span>
</div>
<div class="box-product" prod-number="222">
  <span class="product-name">Lider</span><span class="product-description">Azúcar granulada</span>
  <span class="price-sell"><b>$1.050</b></span><span class="product-attribute">1,5 Kg</span>
</div>
<div class="box-product">
  <span class="product-name">Sin id</span>
</div>
<div class="box-product" prod-number="333">
  <span class="product-name">Lider</span><span class="product-description">Sal de mar</span>
  <span class="price-sell"><b>$690</b></span><span class="product-attribute">Unidad</span>
</div>
</body></html>`

func liderServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/supermercado/product/123", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(productPage))
	})
	mux.HandleFunc("/supermercado/product/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	mux.HandleFunc("/supermercado/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "azucar", r.URL.Query().Get("Ntt"))
		assert.Equal(t, "azucar", r.URL.Query().Get("ost"))
		_, _ = w.Write([]byte(searchPage))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLiderClient_FetchByID(t *testing.T) {
	srv := liderServer(t)
	client := NewLiderClient(srv.URL+"/supermercado", time.Second, 40)

	product, err := client.FetchByID(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, domain.CatalogProduct{
		ExternalID: "123",
		Name:       "Lider, Harina sin polvos de hornear",
		Price:      1190,
		Amount:     1,
		Unit:       "kg",
	}, product)
	assert.True(t, Usable(product))
}

func TestLiderClient_FetchByIDErrors(t *testing.T) {
	srv := liderServer(t)
	client := NewLiderClient(srv.URL+"/supermercado", time.Second, 40)

	_, err := client.FetchByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCatalogProductNotFound)

	_, err = client.FetchByID(context.Background(), "broken")
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)

	srv.Close()
	_, err = client.FetchByID(context.Background(), "123")
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestLiderClient_Search(t *testing.T) {
	srv := liderServer(t)

	products, err := NewLiderClient(srv.URL+"/supermercado", time.Second, 40).Search(context.Background(), "azucar")
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "111", products[0].ExternalID)
	assert.Equal(t, "Lider, Azúcar granulada", products[1].Name)
	assert.Equal(t, int64(1050), products[1].Price)
	assert.Equal(t, 1.5, products[1].Amount)
	assert.Equal(t, "kg", products[1].Unit)
	assert.False(t, Usable(products[2]))

	limited, err := NewLiderClient(srv.URL+"/supermercado", time.Second, 1).Search(context.Background(), "azucar")
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestParsers(t *testing.T) {
	assert.Equal(t, int64(1990), parsePrice("$1.990"))
	assert.Equal(t, int64(12990), parsePrice(" $ 12.990 "))
	assert.Equal(t, int64(0), parsePrice("agotado"))

	amount, unit := parseQuantity("500 G")
	assert.Equal(t, 500.0, amount)
	assert.Equal(t, "g", unit)

	amount, unit = parseQuantity("Unidad")
	assert.Equal(t, 0.0, amount)
	assert.Equal(t, "", unit)
}

func TestUsable(t *testing.T) {
	ok := domain.CatalogProduct{Name: "Sal", Price: 500, Amount: 1, Unit: "kg"}
	assert.True(t, Usable(ok))

	for name, mutate := range map[string]func(*domain.CatalogProduct){
		"no name":   func(p *domain.CatalogProduct) { p.Name = "" },
		"zero":      func(p *domain.CatalogProduct) { p.Price = 0 },
		"no amount": func(p *domain.CatalogProduct) { p.Amount = 0 },
		"no unit":   func(p *domain.CatalogProduct) { p.Unit = "" },
	} {
		p := ok
		mutate(&p)
		assert.False(t, Usable(p), name)
	}
}
