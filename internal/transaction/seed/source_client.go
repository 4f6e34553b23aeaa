package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ridloal/product-transactions/internal/platform/logger"
	"github.com/ridloal/product-transactions/internal/transaction/domain"
)

type ProductSource interface {
	FetchProducts(ctx context.Context) ([]domain.SourceProduct, error)
}

// SourceClient downloads the seed dataset, a JSON array of product records.
type SourceClient struct {
	URL        string
	HTTPClient *http.Client
}

func NewSourceClient(url string, timeout time.Duration) *SourceClient {
	return &SourceClient{
		URL: url,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *SourceClient) FetchProducts(ctx context.Context) ([]domain.SourceProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		logger.Error("SourceClient.FetchProducts: NewRequest failed", err)
		return nil, fmt.Errorf("failed to create request to seed source: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Error("SourceClient.FetchProducts: HTTPClient.Do failed", err)
		return nil, fmt.Errorf("failed to call seed source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("SourceClient.FetchProducts: seed source returned status %d", nil, resp.StatusCode)
		return nil, fmt.Errorf("seed source returned status: %d", resp.StatusCode)
	}

	var products []domain.SourceProduct
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		logger.Error("SourceClient.FetchProducts: JSON decode failed", err)
		return nil, fmt.Errorf("failed to decode seed dataset: %w", err)
	}
	return products, nil
}
