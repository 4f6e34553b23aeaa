package seed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ridloal/product-transactions/internal/transaction/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceClient_FetchProducts(t *testing.T) {
	t.Run("Decodes dataset", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"id":1,"title":"Backpack","price":329.85,"description":"laptop bag","category":"men's clothing","image":"a.jpg","sold":false,"dateOfSale":"2021-11-27T20:29:54+05:30"},
				{"id":2,"title":"T-Shirt","price":22.3,"description":"slim","category":"men's clothing","image":"b.jpg","sold":true,"dateOfSale":"2021-10-27T20:29:54+05:30"}
			]`))
		}))
		defer srv.Close()

		products, err := NewSourceClient(srv.URL, time.Second).FetchProducts(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, domain.SourceProduct{
			Title: "Backpack", Description: "laptop bag", Price: 329.85, Category: "men's clothing",
			DateOfSale: "2021-11-27T20:29:54+05:30", Sold: 0,
		}, products[0])
		assert.Equal(t, domain.SoldFlag(1), products[1].Sold)
	})

	t.Run("Non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		products, err := NewSourceClient(srv.URL, time.Second).FetchProducts(context.Background())
		assert.Nil(t, products)
		assert.EqualError(t, err, "seed source returned status: 403")
	})

	t.Run("Malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"an array"}`))
		}))
		defer srv.Close()

		_, err := NewSourceClient(srv.URL, time.Second).FetchProducts(context.Background())
		assert.ErrorContains(t, err, "failed to decode seed dataset")
	})

	t.Run("Unreachable source", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := NewSourceClient(url, time.Second).FetchProducts(context.Background())
		assert.ErrorContains(t, err, "failed to call seed source")
	})
}
