package catalog

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/pkg/catalog/mock"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var searchResults = []domain.CatalogProduct{
	{ExternalID: "1", Name: "Aceite maravilla", Price: 2490, Amount: 1, Unit: "l"},
	{ExternalID: "2", Name: "Azucar granulada", Price: 1050, Amount: 1, Unit: "kg"},
	{ExternalID: "3", Name: "Sal de mar", Price: 690, Amount: 1, Unit: "kg"},
}

func TestCachedClient_SearchRanksAndCaches(t *testing.T) {
	inner := mock.NewMockClient(gomock.NewController(t))
	inner.EXPECT().
		Search(gomock.Any(), "Azucar").
		Return(searchResults, nil).
		Times(1)

	client := NewCachedClient(inner, 8, time.Minute)

	first, err := client.Search(context.Background(), "Azucar")
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, "2", first[0].ExternalID)
	assert.Equal(t, "1", first[1].ExternalID)
	assert.Equal(t, "3", first[2].ExternalID)

	second, err := client.Search(context.Background(), "Azucar")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCachedClient_SearchExpires(t *testing.T) {
	inner := mock.NewMockClient(gomock.NewController(t))
	inner.EXPECT().
		Search(gomock.Any(), "sal").
		Return(searchResults, nil).
		Times(2)

	client := NewCachedClient(inner, 8, time.Minute).(*cachedClient)
	now := time.Now()
	client.now = func() time.Time { return now }

	_, err := client.Search(context.Background(), "sal")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = client.Search(context.Background(), "sal")
	require.NoError(t, err)
}

func TestCachedClient_FetchByIDIsNotCached(t *testing.T) {
	inner := mock.NewMockClient(gomock.NewController(t))
	inner.EXPECT().
		FetchByID(gomock.Any(), "2").
		Return(searchResults[1], nil).
		Times(2)

	client := NewCachedClient(inner, 8, time.Minute)
	for i := 0; i < 2; i++ {
		p, err := client.FetchByID(context.Background(), "2")
		require.NoError(t, err)
		assert.Equal(t, int64(1050), p.Price)
	}
}

func TestCachedClient_SearchError(t *testing.T) {
	inner := mock.NewMockClient(gomock.NewController(t))
	inner.EXPECT().
		Search(gomock.Any(), "pan").
		Return(nil, domain.ErrCatalogUnavailable)

	_, err := NewCachedClient(inner, 8, time.Minute).Search(context.Background(), "pan")
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}
