//go:generate mockgen -source=contracts.go -destination=ledger_mocks_test.go -package=ledger_test

package ledger

import (
	"context"

	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
	"github.com/bennett-mcdowell/F25-Team03/internal/ports/ledgertx"
)

type ledgerRepository interface {
	WithTx(ctx context.Context, fn func(tx ledgertx.Repository) error) error
	ListSponsorBalances(ctx context.Context, driverID int64) ([]domain.SponsorBalance, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	ListAlerts(ctx context.Context, driverID int64, limit int) ([]domain.Alert, error)
}
