package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rafaelleal24/farejador/internal/adapters/config"
	"github.com/rafaelleal24/farejador/internal/core/domain"
	"github.com/rafaelleal24/farejador/internal/core/port"
)

const lookupFields = "product_name,brands,image_url,image_front_url,image_front_small_url"

// Client resolves barcodes against the Open Food Facts public catalog.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg config.LookupConfig) port.ProductLookupPort {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}
}

type productPayload struct {
	ProductName        string `json:"product_name"`
	Brands             string `json:"brands"`
	ImageURL           string `json:"image_url"`
	ImageFrontURL      string `json:"image_front_url"`
	ImageFrontSmallURL string `json:"image_front_small_url"`
}

type lookupResponse struct {
	Status  int             `json:"status"`
	Product *productPayload `json:"product"`
}

func (c *Client) Lookup(ctx context.Context, eanCode string) (*domain.LookupResult, error) {
	endpoint := fmt.Sprintf("%s/api/v0/product/%s.json?fields=%s",
		c.baseURL, url.PathEscape(eanCode), lookupFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("open food facts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open food facts returned status %d", resp.StatusCode)
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode open food facts response: %w", err)
	}

	// status 0 means the catalog has no entry for this code
	if payload.Status != 1 || payload.Product == nil {
		return nil, nil
	}

	description := payload.Product.ProductName
	if payload.Product.Brands != "" && description != "" {
		description = fmt.Sprintf("%s - %s", payload.Product.Brands, payload.Product.ProductName)
	}
	if description == "" {
		return nil, nil
	}

	return &domain.LookupResult{
		EANCode:     eanCode,
		Description: description,
		ImageURL:    firstImage(payload.Product),
	}, nil
}

func firstImage(p *productPayload) *string {
	for _, candidate := range []string{p.ImageURL, p.ImageFrontURL, p.ImageFrontSmallURL} {
		if candidate != "" {
			return &candidate
		}
	}
	return nil
}
