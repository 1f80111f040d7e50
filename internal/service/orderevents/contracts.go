//go:generate mockgen -source=contracts.go -destination=orderevents_mocks_test.go -package=orderevents_test

package orderevents

import (
	"context"

	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
)

// LedgerPort abstracts the subset of ledger operations needed by the
// Processor when handling order events
type LedgerPort interface {
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error)
}
