// Package backend is the typed REST client the register uses to reach the
// back-office API. It implements the draft package's CatalogSource,
// CustomerDirectory and OrderPlacer contracts.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"dukaprint/internal/domain/entities"
	"dukaprint/internal/draft"
)

// HTTPClient matches the subset of http.Client used by Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// APIError is a non-2xx response from the back office. Message is the
// server's error string verbatim; the register shows it to the user
// unedited because the server is the authority (e.g. on stock).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the dukaprint API under a fixed base URL.
type Client struct {
	base *url.URL
	http HTTPClient
}

func New(baseURL string, client HTTPClient) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("backend: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("backend: parse base URL: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{base: parsed, http: client}, nil
}

var _ draft.CatalogSource = (*Client)(nil)
var _ draft.CustomerDirectory = (*Client)(nil)
var _ draft.OrderPlacer = (*Client)(nil)

// FetchServices lists active catalog services.
func (c *Client) FetchServices(ctx context.Context) ([]entities.Service, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/services", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	var payload struct {
		Services []entities.Service `json:"services"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("backend: decode services: %w", err)
	}
	return payload.Services, nil
}

// FetchInventory lists sellable stock items.
func (c *Client) FetchInventory(ctx context.Context) ([]entities.InventoryItem, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/inventory", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	var payload struct {
		Items []entities.InventoryItem `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("backend: decode inventory: %w", err)
	}
	return payload.Items, nil
}

// SearchCustomers looks up customers by name or phone fragment.
func (c *Client) SearchCustomers(ctx context.Context, query string) ([]entities.Customer, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/customers/search?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	var payload struct {
		Customers []entities.Customer `json:"customers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("backend: decode customers: %w", err)
	}
	return payload.Customers, nil
}

// CreateOrder submits a composed draft and returns the server's
// authoritative order record.
func (c *Client) CreateOrder(ctx context.Context, sub draft.Submission) (entities.Order, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/orders", sub)
	if err != nil {
		return entities.Order{}, err
	}
	resp, err := c.do(req)
	if err != nil {
		return entities.Order{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return entities.Order{}, c.errorFromResponse(resp)
	}

	var payload struct {
		Order entities.Order `json:"order"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entities.Order{}, fmt.Errorf("backend: decode order: %w", err)
	}
	return payload.Order, nil
}

func (c *Client) newRequest(ctx context.Context, method, ref string, body io.Reader) (*http.Request, error) {
	endpoint, query, _ := strings.Cut(ref, "?")
	target := *c.base
	target.Path = path.Join(target.Path, endpoint)
	target.RawQuery = query
	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, ref string, payload any) (*http.Request, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return nil, fmt.Errorf("backend: encode payload: %w", err)
	}
	req, err := c.newRequest(ctx, method, ref, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend: %s %s: %w", req.Method, req.URL.Path, err)
	}
	return resp, nil
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("backend returned status %d", resp.StatusCode),
	}
}
