package api

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/product-transactions/internal/transaction/domain"
	"github.com/ridloal/product-transactions/internal/transaction/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, svc *mocks.MockTransactionService, target string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(NewTransactionHandler(svc))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body["error"]
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	t.Run("Defaults and parsed parameters", func(t *testing.T) {
		svc := new(mocks.MockTransactionService)
		want := domain.ListQuery{MonthQuery: domain.MonthQuery{Month: 3}, Search: "bag", Page: 1, PerPage: 10}
		items := []domain.Product{{ID: 1, Title: "Bag", DateOfSale: "2021-03-01", Sold: 1}}
		svc.On("ListTransactions", mock.Anything, want).
			Return(&domain.TransactionPage{Items: items, Total: 21}, nil).Once()

		rr := serve(t, svc, "/api/transactions?month=03&search=bag")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "21", rr.Header().Get("X-Total-Count"))
		assert.JSONEq(t,
			`[{"id":1,"title":"Bag","description":"","price":0,"category":"","dateOfSale":"2021-03-01","sold":1}]`,
			rr.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("Explicit paging", func(t *testing.T) {
		svc := new(mocks.MockTransactionService)
		want := domain.ListQuery{MonthQuery: domain.MonthQuery{Month: 12}, Page: 3, PerPage: 5}
		svc.On("ListTransactions", mock.Anything, want).
			Return(&domain.TransactionPage{Items: []domain.Product{}}, nil).Once()

		rr := serve(t, svc, "/api/transactions?month=12&page=3&per_page=5")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("Absent month reaches the service unset", func(t *testing.T) {
		svc := new(mocks.MockTransactionService)
		want := domain.ListQuery{Page: 1, PerPage: 10}
		svc.On("ListTransactions", mock.Anything, want).
			Return(&domain.TransactionPage{Items: []domain.Product{}}, nil).Once()

		rr := serve(t, svc, "/api/transactions")
		assert.Equal(t, http.StatusOK, rr.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Empty month is the same as absent", func(t *testing.T) {
		svc := new(mocks.MockTransactionService)
		want := domain.ListQuery{Page: 1, PerPage: 10}
		svc.On("ListTransactions", mock.Anything, want).
			Return(&domain.TransactionPage{Items: []domain.Product{}}, nil).Once()

		rr := serve(t, svc, "/api/transactions?month=&search=")
		assert.Equal(t, http.StatusOK, rr.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Largest page number binds", func(t *testing.T) {
		svc := new(mocks.MockTransactionService)
		want := domain.ListQuery{MonthQuery: domain.MonthQuery{Month: 3}, Page: math.MaxInt, PerPage: 2}
		svc.On("ListTransactions", mock.Anything, want).
			Return(&domain.TransactionPage{Items: []domain.Product{}, Total: 4}, nil).Once()

		rr := serve(t, svc, "/api/transactions?month=03&page=9223372036854775807&per_page=2")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
		svc.AssertExpectations(t)
	})

	badRequests := map[string]string{
		"Non-numeric page":   "/api/transactions?month=3&page=abc",
		"Zero per_page":      "/api/transactions?month=3&per_page=0",
		"Month out of range": "/api/transactions?month=13",
		"Non-numeric month":  "/api/transactions?month=march",
	}
	for name, target := range badRequests {
		t.Run(name, func(t *testing.T) {
			svc := new(mocks.MockTransactionService)

			rr := serve(t, svc, target)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, decodeError(t, rr), "Invalid query parameters")
			svc.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything)
		})
	}

	t.Run("Service error", func(t *testing.T) {
		svc := new(mocks.MockTransactionService)
		svc.On("ListTransactions", mock.Anything, mock.Anything).Return(nil, errors.New("db locked")).Once()

		rr := serve(t, svc, "/api/transactions?month=3")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Internal server error", decodeError(t, rr))
	})
}

func TestTransactionHandler_GetStatistics(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(mocks.MockTransactionService)
		svc.On("GetStatistics", mock.Anything, domain.MonthQuery{Month: 3}).
			Return(&domain.Statistics{TotalSaleAmount: 200, TotalSoldItems: 2, TotalNotSoldItems: 1}, nil).Once()

		rr := serve(t, svc, "/api/statistics?month=03")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"totalSaleAmount":200,"totalSoldItems":2,"totalNotSoldItems":1}`, rr.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("Empty month reaches the service unset", func(t *testing.T) {
		svc := new(mocks.MockTransactionService)
		svc.On("GetStatistics", mock.Anything, domain.MonthQuery{}).
			Return(&domain.Statistics{}, nil).Once()

		rr := serve(t, svc, "/api/statistics?month=")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"totalSaleAmount":0,"totalSoldItems":0,"totalNotSoldItems":0}`, rr.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("Service error", func(t *testing.T) {
		svc := new(mocks.MockTransactionService)
		svc.On("GetStatistics", mock.Anything, mock.Anything).Return(nil, errors.New("no such table")).Once()

		rr := serve(t, svc, "/api/statistics?month=3")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Internal server error", decodeError(t, rr))
	})
}

func TestTransactionHandler_GetBarChart(t *testing.T) {
	svc := new(mocks.MockTransactionService)
	svc.On("GetBarChart", mock.Anything, domain.MonthQuery{Month: 7}).Return([]domain.PriceRangeCount{
		{PriceRange: "0 - 100", ItemCount: 4},
		{PriceRange: "901-above", ItemCount: 1},
	}, nil).Once()

	rr := serve(t, svc, "/api/bar-chart?month=7")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"priceRange":"0 - 100","itemCount":4},{"priceRange":"901-above","itemCount":1}]`, rr.Body.String())
	svc.AssertExpectations(t)

	bad := serve(t, new(mocks.MockTransactionService), "/api/bar-chart?month=0")
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestTransactionHandler_GetPieChart(t *testing.T) {
	svc := new(mocks.MockTransactionService)
	svc.On("GetPieChart", mock.Anything, domain.MonthQuery{Month: 1}).
		Return([]domain.CategoryCount{{Category: "electronics", ItemCount: 3}}, nil).Once()

	rr := serve(t, svc, "/api/pie-chart?month=1")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"category":"electronics","itemCount":3}]`, rr.Body.String())
	svc.AssertExpectations(t)
}

func TestTransactionHandler_GetCombined(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(mocks.MockTransactionService)
		svc.On("GetCombined", mock.Anything, domain.MonthQuery{Month: 2}).Return(&domain.CombinedReport{
			Statistics: domain.Statistics{TotalSaleAmount: 5, TotalSoldItems: 1},
			BarChart:   []domain.PriceRangeCount{{PriceRange: "0 - 100", ItemCount: 1}},
			PieChart:   []domain.CategoryCount{{Category: "jewelery", ItemCount: 1}},
		}, nil).Once()

		rr := serve(t, svc, "/api/combined?month=2")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"statistics":{"totalSaleAmount":5,"totalSoldItems":1,"totalNotSoldItems":0},
			"barChart":[{"priceRange":"0 - 100","itemCount":1}],
			"pieChart":[{"category":"jewelery","itemCount":1}]
		}`, rr.Body.String())
	})

	t.Run("Service error", func(t *testing.T) {
		svc := new(mocks.MockTransactionService)
		svc.On("GetCombined", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		rr := serve(t, svc, "/api/combined?month=2")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestTransactionHandler_Health(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		svc := new(mocks.MockTransactionService)
		svc.On("CheckHealth", mock.Anything).Return(nil).Once()

		rr := serve(t, svc, "/healthz")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("Database down", func(t *testing.T) {
		svc := new(mocks.MockTransactionService)
		svc.On("CheckHealth", mock.Anything).Return(errors.New("closed")).Once()

		rr := serve(t, svc, "/healthz")
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}
