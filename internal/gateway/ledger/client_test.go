package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bennett-mcdowell/F25-Team03/internal/apperr"
	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
)

func sponsorID(id int64) *int64 { return &id }

func TestClient_Sponsors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/driver/sponsors", r.URL.Path)
		require.Equal(t, "7", r.Header.Get("X-Driver-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"sponsors": [
				{"sponsor_id": 1, "name": "Acme Freight", "balance": 2000, "allowed_categories": ["tools"]},
				{"sponsor_id": 2, "name": "Roadway", "balance": 200}
			],
			"total_points": 2200
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 7, time.Second)
	sponsors, err := c.Sponsors(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.SponsorBalance{
		{SponsorID: 1, Name: "Acme Freight", Balance: 2000, AllowedCategories: []string{"tools"}},
		{SponsorID: 2, Name: "Roadway", Balance: 200},
	}, sponsors)
}

func TestClient_Purchase_OK(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/purchase", r.URL.Path)

		var req struct {
			SponsorID int64 `json:"sponsor_id"`
			Items     []struct {
				ID       int64   `json:"id"`
				Price    float64 `json:"price"`
				Quantity int     `json:"quantity"`
			} `json:"items"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, int64(1), req.SponsorID)
		require.Len(t, req.Items, 1)
		require.Equal(t, 2, req.Items[0].Quantity)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"order_id": 15,
			"items_purchased": 2,
			"total_spent": 1000,
			"previous_balance": 2000,
			"new_balance": 1000
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 7, time.Second)
	res, err := c.Purchase(context.Background(), 1, []domain.CartItem{
		{ProductID: 4, SponsorID: sponsorID(1), Price: 5.00, Quantity: 2},
	})
	require.NoError(t, err)
	require.Equal(t, domain.PurchaseResult{
		OrderID:         15,
		ItemsPurchased:  2,
		TotalSpent:      1000,
		PreviousBalance: 2000,
		NewBalance:      1000,
	}, res)
}

func TestClient_Purchase_InsufficientBalance(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{
			"error": "insufficient balance",
			"sponsor_id": 2,
			"required": 300,
			"available": 200,
			"shortfall": 100
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 7, time.Second)
	_, err := c.Purchase(context.Background(), 2, []domain.CartItem{
		{ProductID: 4, SponsorID: sponsorID(2), Price: 3.00, Quantity: 1},
	})

	ib, ok := apperr.AsInsufficientBalance(err)
	require.True(t, ok)
	require.Equal(t, int64(2), ib.SponsorID)
	require.Equal(t, int64(300), ib.Required)
	require.Equal(t, int64(200), ib.Available)
	require.Equal(t, int64(100), ib.Shortfall())
}

func TestClient_Purchase_ServiceErrorSurfacedVerbatim(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"sponsor 2 is not active"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 7, time.Second)
	_, err := c.Purchase(context.Background(), 2, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sponsor 2 is not active")
}

func TestClient_CancelOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders/15/cancel", r.URL.Path)

		_, _ = w.Write([]byte(`{"order_id":15,"refunded_points":1000,"new_balance":2000}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 7, time.Second)
	res, err := c.CancelOrder(context.Background(), 15)
	require.NoError(t, err)
	require.Equal(t, domain.CancelResult{OrderID: 15, RefundedPoints: 1000, NewBalance: 2000}, res)
}

func TestClient_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"order not found"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 7, time.Second)
	_, err := c.CancelOrder(context.Background(), 999)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStatusError_Retryability(t *testing.T) {
	t.Parallel()

	require.True(t, isRetryable(&StatusError{Code: 429}))
	require.True(t, isRetryable(&StatusError{Code: 500}))
	require.True(t, isRetryable(&StatusError{Code: 503}))
	require.False(t, isRetryable(&StatusError{Code: 400}))
	require.False(t, isRetryable(&StatusError{Code: 409}))
	require.False(t, isRetryable(apperr.ErrNotFound))
}
