package handlers

import (
	"context"

	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
	"github.com/bennett-mcdowell/F25-Team03/internal/service/ledger"
)

type ledgerUsecase interface {
	Sponsors(ctx context.Context, driverID int64) ([]domain.SponsorBalance, error)
	Purchase(ctx context.Context, driverID, sponsorID int64, items []ledger.PurchaseItem) (domain.PurchaseResult, error)
	Cancel(ctx context.Context, driverID, orderID int64) (domain.CancelResult, error)
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error)
	Order(ctx context.Context, id int64) (*domain.Order, error)
	Orders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	Alerts(ctx context.Context, driverID int64, limit int) ([]domain.Alert, error)
}

// NewLedgerUsecase wires a ledger.Service into a ledgerUsecase.
func NewLedgerUsecase(svc *ledger.Service) ledgerUsecase {
	return svc
}
