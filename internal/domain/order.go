package domain

import "time"

// OrderItem is a single product line inside an order.
type OrderItem struct {
	ProductID     int64
	Quantity      int
	PointsPerItem int64
}

// Order - struct representing a committed per-sponsor purchase. TotalPoints
// is immutable after creation: it is the exact amount debited at checkout and
// the exact amount refunded on cancel.
type Order struct {
	ID             int64
	DriverID       int64
	SponsorID      int64
	TotalPoints    int64
	Status         OrderStatus
	TrackingNumber string
	Notes          string
	Items          []OrderItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PurchaseResult - struct representing the outcome of one accepted purchase
// transaction.
type PurchaseResult struct {
	OrderID         int64
	ItemsPurchased  int
	TotalSpent      int64
	PreviousBalance int64
	NewBalance      int64
}

// CancelResult - struct representing the outcome of a cancelled order.
type CancelResult struct {
	OrderID        int64
	RefundedPoints int64
	NewBalance     int64
}

// OrderFilter narrows ListOrders. Nil fields mean "no filter".
type OrderFilter struct {
	DriverID  *int64
	SponsorID *int64
	Status    *OrderStatus
}
