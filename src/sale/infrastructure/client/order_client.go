package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mirlondev/magasin-sub000/src/sale/application/request"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
)

// OrderClient cliente HTTP hacia el backend de órdenes.
// Única vía de escritura de la caja: confirma ventas y recibe la Order
// canónica resultante.
type OrderClient struct {
	httpClient *http.Client
	baseURL    string
	ordersPath string
}

// NewOrderClient crea una nueva instancia del cliente
func NewOrderClient() *OrderClient {
	baseURL := os.Getenv("BACKEND_BASE_URL")
	if baseURL == "" {
		baseURL = "http://backend:8000" // Default para entorno Docker
	}

	ordersPath := os.Getenv("ORDER_SERVICE_PATH")
	if ordersPath == "" {
		ordersPath = "/orders" // Default
	}

	return &OrderClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:    baseURL,
		ordersPath: ordersPath,
	}
}

// Submit envía la confirmación de venta al backend.
// Un rechazo (4xx/5xx) vuelve como error sin tocar el estado de la caja:
// la política es at-most-one-commit con retry por re-submit.
func (c *OrderClient) Submit(ctx context.Context, storeID, authToken string, orderReq *request.CreateOrderRequest) (*entity.Order, error) {
	url := fmt.Sprintf("%s%s/api/v1/orders", c.baseURL, c.ordersPath)

	payload, err := json.Marshal(orderReq)
	if err != nil {
		return nil, fmt.Errorf("error marshalling order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Store-ID", storeID)
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling order backend: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode == http.StatusConflict {
		// Rechazo de negocio (stock agotado, etc.): mismo tratamiento que
		// cualquier otro fallo de submit
		return nil, fmt.Errorf("order rejected by backend: %s", string(body))
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order backend returned status %d: %s", resp.StatusCode, string(body))
	}

	var order entity.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("error unmarshalling order response: %w", err)
	}

	return &order, nil
}
