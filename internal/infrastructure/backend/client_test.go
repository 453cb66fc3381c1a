package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"dukaprint/internal/domain/entities"
	"dukaprint/internal/draft"
	"dukaprint/internal/infrastructure/backend"
)

func TestClientFetchServices(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/services", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"services": []entities.Service{
				{ID: "svc-1", Name: "A4 Printing", BasePrice: 10, Unit: "per_page", IsActive: true},
			},
		})
	}))
	t.Cleanup(ts.Close)

	c, err := backend.New(ts.URL+"/v1", ts.Client())
	require.NoError(t, err)

	services, err := c.FetchServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.Equal(t, "A4 Printing", services[0].Name)
	require.Equal(t, 10.0, services[0].BasePrice)
}

func TestClientFetchInventory(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/inventory", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []entities.InventoryItem{
				{ID: "inv-1", Name: "A4 Ream", Quantity: 5, MinQuantity: 2, SellingPrice: 100},
			},
		})
	}))
	t.Cleanup(ts.Close)

	c, err := backend.New(ts.URL+"/v1", ts.Client())
	require.NoError(t, err)

	items, err := c.FetchInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Quantity)
}

func TestClientSearchCustomers(t *testing.T) {
	t.Parallel()

	var receivedQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/customers/search", r.URL.Path)
		receivedQuery = r.URL.Query().Get("q")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"customers": []entities.Customer{{ID: "cus-1", Name: "Alice Wan", Phone: "0700000001"}},
		})
	}))
	t.Cleanup(ts.Close)

	c, err := backend.New(ts.URL+"/v1", ts.Client())
	require.NoError(t, err)

	customers, err := c.SearchCustomers(context.Background(), "alice wan")
	require.NoError(t, err)
	require.Equal(t, "alice wan", receivedQuery)
	require.Len(t, customers, 1)
	require.Equal(t, "0700000001", customers[0].Phone)
}

func TestClientCreateOrder(t *testing.T) {
	t.Parallel()

	var payload draft.Submission
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/orders", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		defer r.Body.Close()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Order created successfully",
			"order": entities.Order{
				ID:          "ord-1",
				OrderNumber: "ORD-20250101120000",
				TotalAmount: 130,
				Discount:    10,
				FinalAmount: 120,
			},
		})
	}))
	t.Cleanup(ts.Close)

	c, err := backend.New(ts.URL+"/v1", ts.Client())
	require.NoError(t, err)

	d := draft.New().AddService(entities.Service{ID: "svc-1", Name: "Design", BasePrice: 50}, 2)
	d = d.WithDiscount(10)
	gw := draft.NewGateway(c, "reg-1")

	order, err := gw.Submit(context.Background(), d)
	require.NoError(t, err)
	require.Equal(t, "ORD-20250101120000", order.OrderNumber)
	require.Equal(t, 120.0, order.FinalAmount)

	require.Equal(t, "reg-1", payload.RegisterID)
	require.Len(t, payload.Items, 1)
	require.Equal(t, 2, payload.Items[0].Quantity)
	require.Equal(t, 10.0, payload.Discount)
}

func TestClientCreateOrderBackendError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "Insufficient stock for A4 Ream"})
	}))
	t.Cleanup(ts.Close)

	c, err := backend.New(ts.URL+"/v1", ts.Client())
	require.NoError(t, err)

	_, err = c.CreateOrder(context.Background(), draft.Submission{})
	require.Error(t, err)

	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "Insufficient stock for A4 Ream", apiErr.Error())
}

func TestClientRequiresBaseURL(t *testing.T) {
	t.Parallel()

	_, err := backend.New("   ", nil)
	require.Error(t, err)
}
