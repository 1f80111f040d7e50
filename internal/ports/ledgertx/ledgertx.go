package ledgertx

import (
	"context"

	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
)

// Repository is the set of ledger operations available inside one transaction.
type Repository interface {
	GetBalanceForUpdate(ctx context.Context, driverID, sponsorID int64) (int64, error)
	UpdateBalance(ctx context.Context, driverID, sponsorID, points int64) error
	InsertOrder(ctx context.Context, o *domain.Order) error
	InsertOrderItems(ctx context.Context, orderID int64, items []domain.OrderItem) error
	GetOrderForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	InsertBalanceChange(ctx context.Context, ch *domain.BalanceChange) error
	InsertAlert(ctx context.Context, driverID int64, message string) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
