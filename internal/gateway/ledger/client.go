package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bennett-mcdowell/F25-Team03/internal/apperr"
	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
)

// StatusError is a non-2xx ledger service response.
type StatusError struct {
	Code int
	Msg  string
}

func (e *StatusError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("ledger: status %d", e.Code)
	}
	// service-provided message is surfaced verbatim
	return e.Msg
}

// Client is an HTTP JSON client of the ledger service. The driver identity
// travels in the X-Driver-ID header.
type Client struct {
	baseURL  string
	driverID int64
	http     *http.Client
}

// NewClient creates a ledger Client.
func NewClient(baseURL string, driverID int64, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:  baseURL,
		driverID: driverID,
		http:     &http.Client{Timeout: timeout},
	}
}

type sponsorDTO struct {
	SponsorID         int64    `json:"sponsor_id"`
	Name              string   `json:"name"`
	Balance           int64    `json:"balance"`
	AllowedCategories []string `json:"allowed_categories"`
}

type sponsorsResponse struct {
	Sponsors    []sponsorDTO `json:"sponsors"`
	TotalPoints int64        `json:"total_points"`
}

// Sponsors fetches the driver's per-sponsor balances.
func (c *Client) Sponsors(ctx context.Context) ([]domain.SponsorBalance, error) {
	var resp sponsorsResponse
	if err := c.do(ctx, http.MethodGet, "/driver/sponsors", nil, &resp); err != nil {
		return nil, fmt.Errorf("ledger gateway: Sponsors: %w", err)
	}
	out := make([]domain.SponsorBalance, 0, len(resp.Sponsors))
	for _, s := range resp.Sponsors {
		out = append(out, domain.SponsorBalance{
			SponsorID:         s.SponsorID,
			Name:              s.Name,
			Balance:           s.Balance,
			AllowedCategories: s.AllowedCategories,
		})
	}
	return out, nil
}

type purchaseItemDTO struct {
	ID       int64   `json:"id"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type purchaseRequest struct {
	SponsorID int64             `json:"sponsor_id"`
	Items     []purchaseItemDTO `json:"items"`
}

type purchaseResponse struct {
	OrderID         int64 `json:"order_id"`
	ItemsPurchased  int   `json:"items_purchased"`
	TotalSpent      int64 `json:"total_spent"`
	PreviousBalance int64 `json:"previous_balance"`
	NewBalance      int64 `json:"new_balance"`
}

// Purchase submits one per-sponsor purchase transaction. The ledger either
// commits the whole group or rejects it; a structured shortfall rejection is
// returned as *apperr.InsufficientBalanceError.
func (c *Client) Purchase(ctx context.Context, sponsorID int64, items []domain.CartItem) (domain.PurchaseResult, error) {
	req := purchaseRequest{SponsorID: sponsorID, Items: make([]purchaseItemDTO, 0, len(items))}
	for _, it := range items {
		req.Items = append(req.Items, purchaseItemDTO{ID: it.ProductID, Price: it.Price, Quantity: it.Quantity})
	}

	var resp purchaseResponse
	if err := c.do(ctx, http.MethodPost, "/purchase", req, &resp); err != nil {
		return domain.PurchaseResult{}, fmt.Errorf("ledger gateway: Purchase sponsor %d: %w", sponsorID, err)
	}
	return domain.PurchaseResult{
		OrderID:         resp.OrderID,
		ItemsPurchased:  resp.ItemsPurchased,
		TotalSpent:      resp.TotalSpent,
		PreviousBalance: resp.PreviousBalance,
		NewBalance:      resp.NewBalance,
	}, nil
}

type cancelResponse struct {
	OrderID        int64 `json:"order_id"`
	RefundedPoints int64 `json:"refunded_points"`
	NewBalance     int64 `json:"new_balance"`
}

// CancelOrder cancels a PENDING order and refunds its points. The call is
// issued once; the ledger's resulting status is trusted and ambiguous
// failures are not retried.
func (c *Client) CancelOrder(ctx context.Context, orderID int64) (domain.CancelResult, error) {
	var resp cancelResponse
	path := "/orders/" + strconv.FormatInt(orderID, 10) + "/cancel"
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return domain.CancelResult{}, fmt.Errorf("ledger gateway: CancelOrder %d: %w", orderID, err)
	}
	return domain.CancelResult{
		OrderID:        resp.OrderID,
		RefundedPoints: resp.RefundedPoints,
		NewBalance:     resp.NewBalance,
	}, nil
}

type errorResponse struct {
	Error     string `json:"error"`
	SponsorID int64  `json:"sponsor_id"`
	Required  *int64 `json:"required"`
	Available *int64 `json:"available"`
	Shortfall *int64 `json:"shortfall"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Driver-ID", strconv.FormatInt(c.driverID, 10))

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	return c.decodeError(resp)
}

func (c *Client) decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var errResp errorResponse
	if err := json.Unmarshal(data, &errResp); err == nil {
		if errResp.Required != nil && errResp.Available != nil {
			return &apperr.InsufficientBalanceError{
				SponsorID: errResp.SponsorID,
				Required:  *errResp.Required,
				Available: *errResp.Available,
			}
		}
		if resp.StatusCode == http.StatusNotFound {
			return apperr.ErrNotFound
		}
		return &StatusError{Code: resp.StatusCode, Msg: errResp.Error}
	}

	if resp.StatusCode == http.StatusNotFound {
		return apperr.ErrNotFound
	}
	return &StatusError{Code: resp.StatusCode}
}
