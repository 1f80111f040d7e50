package checkout

import (
	"context"

	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
)

// LedgerGateway abstracts the ledger service operations the orchestrator
// needs: balance reads and per-sponsor purchase submission.
type LedgerGateway interface {
	Sponsors(ctx context.Context) ([]domain.SponsorBalance, error)
	Purchase(ctx context.Context, sponsorID int64, items []domain.CartItem) (domain.PurchaseResult, error)
}

// PendingCart abstracts the subset of cart operations used during checkout.
type PendingCart interface {
	Items() []domain.CartItem
	Clear() error
}
