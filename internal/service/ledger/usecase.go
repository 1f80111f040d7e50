package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bennett-mcdowell/F25-Team03/internal/apperr"
	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
	"github.com/bennett-mcdowell/F25-Team03/internal/logx"
	"github.com/bennett-mcdowell/F25-Team03/internal/ports/ledgertx"
)

// PurchaseItem is one product line submitted at checkout. Price is in
// currency units; the ledger converts it to points on its side.
type PurchaseItem struct {
	ProductID int64
	Price     float64
	Quantity  int
}

// Service - the authoritative points ledger. Balances are scoped per
// (driver, sponsor) and every mutation happens inside one transaction.
type Service struct {
	repo             ledgerRepository
	operationTimeout time.Duration
	logger           logx.Logger

	purchases   *prometheus.CounterVec
	pointsSpent prometheus.Counter
}

// NewService - creates a new ledger Service.
func NewService(r ledgerRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		logger:           logger,
	}
}

// WithMetrics attaches purchase counters. Both may be nil.
func (s *Service) WithMetrics(purchases *prometheus.CounterVec, pointsSpent prometheus.Counter) *Service {
	s.purchases = purchases
	s.pointsSpent = pointsSpent
	return s
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) countPurchase(outcome string) {
	if s.purchases != nil {
		s.purchases.WithLabelValues(outcome).Inc()
	}
}

// Sponsors returns the driver's balance for every active sponsor.
func (s *Service) Sponsors(ctx context.Context, driverID int64) ([]domain.SponsorBalance, error) {
	if driverID <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListSponsorBalances(ctx, driverID)
}

// Purchase debits the driver's balance with one sponsor and records a PENDING
// order. The balance row is locked for the whole transaction, so the
// non-negative invariant holds under concurrent purchases.
func (s *Service) Purchase(ctx context.Context, driverID, sponsorID int64, items []PurchaseItem) (domain.PurchaseResult, error) {
	if driverID <= 0 || sponsorID <= 0 || len(items) == 0 {
		return domain.PurchaseResult{}, apperr.ErrInvalid
	}

	total := int64(0)
	units := 0
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		if it.ProductID <= 0 || it.Quantity < 1 || it.Price < 0 {
			return domain.PurchaseResult{}, apperr.ErrInvalid
		}
		ppi := domain.Points(it.Price)
		total += ppi * int64(it.Quantity)
		units += it.Quantity
		orderItems = append(orderItems, domain.OrderItem{
			ProductID:     it.ProductID,
			Quantity:      it.Quantity,
			PointsPerItem: ppi,
		})
	}
	if total <= 0 {
		return domain.PurchaseResult{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.PurchaseResult
	err := s.repo.WithTx(ctx, func(tx ledgertx.Repository) error {
		balance, err := tx.GetBalanceForUpdate(ctx, driverID, sponsorID)
		if err != nil {
			return err
		}
		if balance < total {
			return &apperr.InsufficientBalanceError{
				SponsorID: sponsorID,
				Required:  total,
				Available: balance,
			}
		}

		if err := tx.UpdateBalance(ctx, driverID, sponsorID, balance-total); err != nil {
			return err
		}

		o := &domain.Order{
			DriverID:    driverID,
			SponsorID:   sponsorID,
			TotalPoints: total,
			Status:      domain.StatusPending,
		}
		if err := tx.InsertOrder(ctx, o); err != nil {
			return err
		}
		if err := tx.InsertOrderItems(ctx, o.ID, orderItems); err != nil {
			return err
		}

		if err := tx.InsertBalanceChange(ctx, &domain.BalanceChange{
			DriverID:  driverID,
			SponsorID: sponsorID,
			Amount:    -total,
			Reason:    domain.ChangeReasonPurchase,
			OrderID:   &o.ID,
		}); err != nil {
			return err
		}

		result = domain.PurchaseResult{
			OrderID:         o.ID,
			ItemsPurchased:  units,
			TotalSpent:      total,
			PreviousBalance: balance,
			NewBalance:      balance - total,
		}
		return nil
	})
	if err != nil {
		if _, ok := apperr.AsInsufficientBalance(err); ok {
			s.countPurchase("rejected")
		}
		return domain.PurchaseResult{}, err
	}

	s.countPurchase("accepted")
	if s.pointsSpent != nil {
		s.pointsSpent.Add(float64(result.TotalSpent))
	}

	s.logger.Info("purchase accepted",
		logx.String("event", "purchase_accepted"),
		logx.Int64("order_id", result.OrderID),
		logx.Int64("driver_id", driverID),
		logx.Int64("sponsor_id", sponsorID),
		logx.Int64("total_spent", result.TotalSpent),
	)

	return result, nil
}

// Cancel cancels the driver's own PENDING order and refunds exactly its
// total_points to the sponsor balance it was debited from. Cancelling an
// already cancelled order is a conflict, never a double refund.
func (s *Service) Cancel(ctx context.Context, driverID, orderID int64) (domain.CancelResult, error) {
	if driverID <= 0 || orderID <= 0 {
		return domain.CancelResult{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.CancelResult
	err := s.repo.WithTx(ctx, func(tx ledgertx.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o.DriverID != driverID {
			return apperr.ErrNotFound
		}
		if !o.Status.Cancellable() {
			return apperr.ErrConflict
		}

		newBalance, err := s.refund(ctx, tx, o)
		if err != nil {
			return err
		}

		result = domain.CancelResult{
			OrderID:        o.ID,
			RefundedPoints: o.TotalPoints,
			NewBalance:     newBalance,
		}
		return nil
	})
	if err != nil {
		return domain.CancelResult{}, err
	}

	s.logger.Info("order cancelled",
		logx.String("event", "order_cancelled"),
		logx.Int64("order_id", result.OrderID),
		logx.Int64("driver_id", driverID),
		logx.Int64("refunded_points", result.RefundedPoints),
	)

	return result, nil
}

// refund credits the order's total back, marks it CANCELLED and records the
// audit entries. Caller holds the order row lock.
func (s *Service) refund(ctx context.Context, tx ledgertx.Repository, o *domain.Order) (int64, error) {
	balance, err := tx.GetBalanceForUpdate(ctx, o.DriverID, o.SponsorID)
	if err != nil {
		return 0, err
	}
	newBalance := balance + o.TotalPoints

	if err := tx.UpdateBalance(ctx, o.DriverID, o.SponsorID, newBalance); err != nil {
		return 0, err
	}
	if err := tx.UpdateOrderStatus(ctx, o.ID, domain.StatusCancelled); err != nil {
		return 0, err
	}
	if err := tx.InsertBalanceChange(ctx, &domain.BalanceChange{
		DriverID:  o.DriverID,
		SponsorID: o.SponsorID,
		Amount:    o.TotalPoints,
		Reason:    domain.ChangeReasonRefund,
		OrderID:   &o.ID,
	}); err != nil {
		return 0, err
	}
	msg := fmt.Sprintf("order %d cancelled, %d points refunded", o.ID, o.TotalPoints)
	if err := tx.InsertAlert(ctx, o.DriverID, msg); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// UpdateStatus moves an order along the lifecycle. A transition to CANCELLED
// goes through the same refund path as a driver cancel. The updated order is
// returned without items.
func (s *Service) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	if orderID <= 0 || !status.Valid() {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var updated *domain.Order
	err := s.repo.WithTx(ctx, func(tx ledgertx.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if !o.Status.CanTransitionTo(status) {
			return apperr.ErrConflict
		}

		if status == domain.StatusCancelled {
			if _, err := s.refund(ctx, tx, o); err != nil {
				return err
			}
		} else {
			if err := tx.UpdateOrderStatus(ctx, o.ID, status); err != nil {
				return err
			}
			if msg := statusAlert(o.ID, status); msg != "" {
				if err := tx.InsertAlert(ctx, o.DriverID, msg); err != nil {
					return err
				}
			}
		}

		o.Status = status
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status updated",
		logx.String("event", "order_status_updated"),
		logx.Int64("order_id", updated.ID),
		logx.String("status", string(updated.Status)),
	)

	return updated, nil
}

func statusAlert(orderID int64, status domain.OrderStatus) string {
	switch status {
	case domain.StatusProcessing:
		return fmt.Sprintf("order %d is being processed", orderID)
	case domain.StatusShipped:
		return fmt.Sprintf("order %d shipped", orderID)
	case domain.StatusDelivered:
		return fmt.Sprintf("order %d delivered", orderID)
	default:
		return ""
	}
}

// Order returns one order with its items.
func (s *Service) Order(ctx context.Context, id int64) (*domain.Order, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.GetOrder(ctx, id)
}

// Orders returns orders matching the filter, newest first.
func (s *Service) Orders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	if f.Status != nil && !f.Status.Valid() {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListOrders(ctx, f)
}

// Alerts returns the driver's newest notifications.
func (s *Service) Alerts(ctx context.Context, driverID int64, limit int) ([]domain.Alert, error) {
	if driverID <= 0 {
		return nil, apperr.ErrInvalid
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListAlerts(ctx, driverID, limit)
}
