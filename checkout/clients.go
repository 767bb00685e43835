package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/anasmohamad369/hotelzeeshan/stock"
)

// OrderClient posts orders to the order collaborator over HTTP.
type OrderClient struct {
	baseURL string
	client  *http.Client
}

func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type placeOrderResponse struct {
	Token string `json:"token"`
}

func (c *OrderClient) Place(ctx context.Context, payload OrderPayload) (string, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/place-order", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach order service: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("order service error (%d): %s", resp.StatusCode, string(body))
	}

	var placed placeOrderResponse
	if err := json.Unmarshal(body, &placed); err != nil {
		return "", fmt.Errorf("failed to parse order response: %v", err)
	}
	return placed.Token, nil
}

// StockClient calls the stock collaborator's decrement endpoint.
type StockClient struct {
	baseURL string
	client  *http.Client
}

func NewStockClient(baseURL string) *StockClient {
	return &StockClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type decrementRequest struct {
	Items []stock.DecrementItem `json:"items"`
}

func (c *StockClient) Decrement(ctx context.Context, items []stock.DecrementItem) error {
	jsonData, err := json.Marshal(decrementRequest{Items: items})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/stock/decrement", bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach stock service: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("stock service error (%d): %s", resp.StatusCode, string(body))
	}
	return nil
}
