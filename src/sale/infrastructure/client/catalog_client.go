package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
)

// CatalogClient cliente HTTP hacia el servicio de catálogo.
// Las respuestas son snapshots point-in-time: el stock visible puede estar
// desactualizado y eso es aceptado (el backend valida al confirmar).
type CatalogClient struct {
	httpClient  *http.Client
	baseURL     string
	catalogPath string
}

// NewCatalogClient crea una nueva instancia del cliente
func NewCatalogClient() *CatalogClient {
	baseURL := os.Getenv("BACKEND_BASE_URL")
	if baseURL == "" {
		baseURL = "http://backend:8000" // Default para entorno Docker
	}

	catalogPath := os.Getenv("CATALOG_SERVICE_PATH")
	if catalogPath == "" {
		catalogPath = "/catalog" // Default
	}

	return &CatalogClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:     baseURL,
		catalogPath: catalogPath,
	}
}

// GetProduct obtiene el snapshot de un producto por ID
func (c *CatalogClient) GetProduct(ctx context.Context, storeID, authToken, productID string) (*entity.Product, error) {
	endpoint := fmt.Sprintf("%s%s/api/v1/products/%s", c.baseURL, c.catalogPath, productID)

	body, status, err := c.get(ctx, endpoint, storeID, authToken)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", entity.ErrProductNotFound, productID)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("catalog service returned status %d: %s", status, string(body))
	}

	var product entity.Product
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, fmt.Errorf("error unmarshalling product response: %w", err)
	}

	return &product, nil
}

// SearchProducts busca productos por texto libre (nombre o SKU)
func (c *CatalogClient) SearchProducts(ctx context.Context, storeID, authToken, query string) ([]entity.Product, error) {
	endpoint := fmt.Sprintf("%s%s/api/v1/products?q=%s", c.baseURL, c.catalogPath, url.QueryEscape(query))

	body, status, err := c.get(ctx, endpoint, storeID, authToken)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, fmt.Errorf("catalog service returned status %d: %s", status, string(body))
	}

	var result struct {
		Items []entity.Product `json:"items"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error unmarshalling products response: %w", err)
	}

	return result.Items, nil
}

// get ejecuta un GET con los headers estándar y retorna body + status
func (c *CatalogClient) get(ctx context.Context, endpoint, storeID, authToken string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("X-Store-ID", storeID)
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("error calling catalog service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading response: %w", err)
	}

	return body, resp.StatusCode, nil
}
