package domain

import "time"

// Balance change reasons recorded in the audit log.
const (
	ChangeReasonPurchase = "purchase"
	ChangeReasonRefund   = "refund"
)

// BalanceChange is one audit-log entry for a driver's sponsor-scoped balance.
// Amount is negative for debits and positive for credits.
type BalanceChange struct {
	ID        int64
	DriverID  int64
	SponsorID int64
	Amount    int64
	Reason    string
	OrderID   *int64
	CreatedAt time.Time
}

// Alert is a notification queued for a driver.
type Alert struct {
	ID        int64
	DriverID  int64
	Message   string
	CreatedAt time.Time
}
