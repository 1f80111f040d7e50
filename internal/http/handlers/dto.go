package handlers

import "time"

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

type purchaseItemRequest struct {
	ID       int64   `json:"id"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type purchaseRequest struct {
	SponsorID int64                 `json:"sponsor_id"`
	Items     []purchaseItemRequest `json:"items"`
}

type purchaseResponse struct {
	OrderID         int64 `json:"order_id"`
	ItemsPurchased  int   `json:"items_purchased"`
	TotalSpent      int64 `json:"total_spent"`
	PreviousBalance int64 `json:"previous_balance"`
	NewBalance      int64 `json:"new_balance"`
}

// insufficientResponse mirrors ErrorResponse plus the structured shortfall,
// so clients can render exactly how many points are missing.
type insufficientResponse struct {
	Error     string `json:"error"`
	SponsorID int64  `json:"sponsor_id"`
	Required  int64  `json:"required"`
	Available int64  `json:"available"`
	Shortfall int64  `json:"shortfall"`
}

type cancelResponse struct {
	OrderID        int64 `json:"order_id"`
	RefundedPoints int64 `json:"refunded_points"`
	NewBalance     int64 `json:"new_balance"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type orderItemDTO struct {
	ProductID     int64 `json:"product_id"`
	Quantity      int   `json:"quantity"`
	PointsPerItem int64 `json:"points_per_item"`
}

type orderDTO struct {
	ID             int64          `json:"id"`
	DriverID       int64          `json:"driver_id"`
	SponsorID      int64          `json:"sponsor_id"`
	TotalPoints    int64          `json:"total_points"`
	Status         string         `json:"status"`
	TrackingNumber string         `json:"tracking_number,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	Items          []orderItemDTO `json:"items,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type ordersResponse struct {
	Orders []orderDTO `json:"orders"`
}

type alertDTO struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type alertsResponse struct {
	Alerts []alertDTO `json:"alerts"`
}
