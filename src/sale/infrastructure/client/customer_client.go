package client

import (
	"bytes"
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

// CreateCustomerData datos mínimos para alta rápida de cliente desde la caja
type CreateCustomerData struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// CustomerClient cliente HTTP hacia el directorio de clientes
type CustomerClient struct {
	httpClient    *http.Client
	baseURL       string
	customersPath string
}

// NewCustomerClient crea una nueva instancia del cliente
func NewCustomerClient() *CustomerClient {
	baseURL := os.Getenv("BACKEND_BASE_URL")
	if baseURL == "" {
		baseURL = "http://backend:8000" // Default para entorno Docker
	}

	customersPath := os.Getenv("CUSTOMER_SERVICE_PATH")
	if customersPath == "" {
		customersPath = "/customers" // Default
	}

	return &CustomerClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:       baseURL,
		customersPath: customersPath,
	}
}

// GetCustomer obtiene un cliente por ID
func (c *CustomerClient) GetCustomer(ctx context.Context, storeID, authToken, customerID string) (*entity.Customer, error) {
	endpoint := fmt.Sprintf("%s%s/api/v1/customers/%s", c.baseURL, c.customersPath, customerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	c.setHeaders(req, storeID, authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling customer service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", entity.ErrCustomerNotFound, customerID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("customer service returned status %d: %s", resp.StatusCode, string(body))
	}

	var customer entity.Customer
	if err := json.Unmarshal(body, &customer); err != nil {
		return nil, fmt.Errorf("error unmarshalling customer response: %w", err)
	}

	return &customer, nil
}

// SearchCustomers busca clientes por texto libre (nombre o teléfono)
func (c *CustomerClient) SearchCustomers(ctx context.Context, storeID, authToken, query string) ([]entity.Customer, error) {
	endpoint := fmt.Sprintf("%s%s/api/v1/customers?q=%s", c.baseURL, c.customersPath, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	c.setHeaders(req, storeID, authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling customer service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("customer service returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Items []entity.Customer `json:"items"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error unmarshalling customers response: %w", err)
	}

	return result.Items, nil
}

// CreateCustomer da de alta un cliente desde la caja (venta a crédito a
// cliente nuevo) y retorna el cliente canónico creado por el backend
func (c *CustomerClient) CreateCustomer(ctx context.Context, storeID, authToken string, data *CreateCustomerData) (*entity.Customer, error) {
	endpoint := fmt.Sprintf("%s%s/api/v1/customers", c.baseURL, c.customersPath)

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling customer data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req, storeID, authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling customer service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("customer service returned status %d: %s", resp.StatusCode, string(body))
	}

	var customer entity.Customer
	if err := json.Unmarshal(body, &customer); err != nil {
		return nil, fmt.Errorf("error unmarshalling customer response: %w", err)
	}

	return &customer, nil
}

// setHeaders aplica los headers estándar de la caja
func (c *CustomerClient) setHeaders(req *http.Request, storeID, authToken string) {
	req.Header.Set("X-Store-ID", storeID)
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}
}
