package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is an HTTP client for an upstream product-listing endpoint. The
// storefront treats the payload as opaque input; malformed entries are
// tolerated downstream via empty-string fallbacks.
type Client interface {
	ListProducts(ctx context.Context) ([]ProductRecord, error)
	GetProduct(ctx context.Context, id string) (*ProductRecord, error)
}

// ProductRecord mirrors the upstream wire format.
type ProductRecord struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Image       string  `json:"image"`
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new catalog API client
func NewClient(baseURL string) *HTTPClient {
	trimmed := strings.TrimRight(baseURL, "/")
	return &HTTPClient{
		baseURL: trimmed,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ListProducts fetches the full catalog from the upstream endpoint
func (c *HTTPClient) ListProducts(ctx context.Context) ([]ProductRecord, error) {
	var records []ProductRecord
	if err := c.doJSON(ctx, fmt.Sprintf("%s/api/products", c.baseURL), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetProduct fetches a single product by ID
func (c *HTTPClient) GetProduct(ctx context.Context, id string) (*ProductRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("product id is required")
	}
	out := &ProductRecord{}
	endpoint := fmt.Sprintf("%s/api/products/%s", c.baseURL, url.PathEscape(id))
	if err := c.doJSON(ctx, endpoint, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, endpoint string, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("catalog api returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return err
	}

	return nil
}
