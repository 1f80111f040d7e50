package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bennett-mcdowell/F25-Team03/internal/apperr"
	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
	"github.com/bennett-mcdowell/F25-Team03/internal/ports/ledgertx"
)

// LedgerRepo represents the points ledger repository.
type LedgerRepo struct {
	db *pgxpool.Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(db *pgxpool.Pool) *LedgerRepo {
	return &LedgerRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *LedgerRepo) WithTx(ctx context.Context, fn func(tx ledgertx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// ListSponsorBalances returns the driver's balance for every active sponsor,
// ordered by sponsor id.
func (r *LedgerRepo) ListSponsorBalances(ctx context.Context, driverID int64) ([]domain.SponsorBalance, error) {
	rows, err := r.db.Query(ctx, `
        SELECT s.id, s.name, s.allowed_categories, b.points
        FROM balances b
        JOIN sponsors s ON s.id = b.sponsor_id
        WHERE b.driver_id = $1 AND s.active
        ORDER BY s.id
    `, driverID)
	if err != nil {
		return nil, fmt.Errorf("list sponsor balances for driver %d: %w", driverID, err)
	}
	defer rows.Close()

	out := make([]domain.SponsorBalance, 0)
	for rows.Next() {
		var b domain.SponsorBalance
		if err := rows.Scan(&b.SponsorID, &b.Name, &b.AllowedCategories, &b.Balance); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetOrder returns an order with its items.
func (r *LedgerRepo) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRow(ctx, `
        SELECT id, driver_id, sponsor_id, total_points, status, tracking_number, notes, created_at, updated_at
        FROM orders
        WHERE id = $1
    `, id).Scan(&o.ID, &o.DriverID, &o.SponsorID, &o.TotalPoints, &o.Status,
		&o.TrackingNumber, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}

	rows, err := r.db.Query(ctx, `
        SELECT product_id, quantity, points_per_item
        FROM order_items
        WHERE order_id = $1
        ORDER BY id
    `, id)
	if err != nil {
		return nil, fmt.Errorf("get order %d items: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ProductID, &it.Quantity, &it.PointsPerItem); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders returns orders matching the filter, newest first. Items are not
// loaded; use GetOrder for the full record.
func (r *LedgerRepo) ListOrders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	q := `SELECT id, driver_id, sponsor_id, total_points, status, tracking_number, notes, created_at, updated_at FROM orders`
	args := make([]any, 0, 3)
	where := ""
	appendCond := func(cond string, v any) {
		args = append(args, v)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(args))
	}
	if f.DriverID != nil {
		appendCond("driver_id = $%d", *f.DriverID)
	}
	if f.SponsorID != nil {
		appendCond("sponsor_id = $%d", *f.SponsorID)
	}
	if f.Status != nil {
		appendCond("status = $%d", string(*f.Status))
	}
	q += where + " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.DriverID, &o.SponsorID, &o.TotalPoints, &o.Status,
			&o.TrackingNumber, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// ListAlerts returns the newest alerts for a driver.
func (r *LedgerRepo) ListAlerts(ctx context.Context, driverID int64, limit int) ([]domain.Alert, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, driver_id, message, created_at
        FROM driver_alerts
        WHERE driver_id = $1
        ORDER BY id DESC
        LIMIT $2
    `, driverID, limit)
	if err != nil {
		return nil, fmt.Errorf("list alerts for driver %d: %w", driverID, err)
	}
	defer rows.Close()

	out := make([]domain.Alert, 0, limit)
	for rows.Next() {
		var a domain.Alert
		if err := rows.Scan(&a.ID, &a.DriverID, &a.Message, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// GetBalanceForUpdate locks the driver's balance row for one sponsor and
// returns the current points. apperr.ErrNotFound when the driver has no
// relationship with the sponsor.
func (r *TxRepo) GetBalanceForUpdate(ctx context.Context, driverID, sponsorID int64) (int64, error) {
	var points int64
	err := r.tx.QueryRow(ctx, `
        SELECT points
        FROM balances
        WHERE driver_id = $1 AND sponsor_id = $2
        FOR UPDATE
    `, driverID, sponsorID).Scan(&points)
	if err != nil {
		if IsNotFound(err) {
			return 0, apperr.ErrNotFound
		}
		return 0, fmt.Errorf("get balance driver %d sponsor %d: %w", driverID, sponsorID, err)
	}
	return points, nil
}

// UpdateBalance sets the driver's balance for one sponsor.
func (r *TxRepo) UpdateBalance(ctx context.Context, driverID, sponsorID, points int64) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE balances
        SET points = $3, updated_at = now()
        WHERE driver_id = $1 AND sponsor_id = $2
    `, driverID, sponsorID, points)
	if err != nil {
		return fmt.Errorf("update balance driver %d sponsor %d: %w", driverID, sponsorID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// InsertOrder - insert a new order.
func (r *TxRepo) InsertOrder(ctx context.Context, o *domain.Order) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO orders (driver_id, sponsor_id, total_points, status, tracking_number, notes)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at
    `, o.DriverID, o.SponsorID, o.TotalPoints, string(o.Status), o.TrackingNumber, o.Notes).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// InsertOrderItems - insert the item lines of an order.
func (r *TxRepo) InsertOrderItems(ctx context.Context, orderID int64, items []domain.OrderItem) error {
	for _, it := range items {
		_, err := r.tx.Exec(ctx, `
            INSERT INTO order_items (order_id, product_id, quantity, points_per_item)
            VALUES ($1, $2, $3, $4)
        `, orderID, it.ProductID, it.Quantity, it.PointsPerItem)
		if err != nil {
			return fmt.Errorf("insert order %d item %d: %w", orderID, it.ProductID, err)
		}
	}
	return nil
}

// GetOrderForUpdate locks and returns an order row, without items.
func (r *TxRepo) GetOrderForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.tx.QueryRow(ctx, `
        SELECT id, driver_id, sponsor_id, total_points, status, tracking_number, notes, created_at, updated_at
        FROM orders
        WHERE id = $1
        FOR UPDATE
    `, id).Scan(&o.ID, &o.DriverID, &o.SponsorID, &o.TotalPoints, &o.Status,
		&o.TrackingNumber, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("get order %d for update: %w", id, err)
	}
	return &o, nil
}

// UpdateOrderStatus - update order status.
func (r *TxRepo) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE orders
        SET status = $2, updated_at = now()
        WHERE id = $1
    `, id, string(status))
	if err != nil {
		return fmt.Errorf("update order %d status: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// InsertBalanceChange appends one audit-log entry.
func (r *TxRepo) InsertBalanceChange(ctx context.Context, ch *domain.BalanceChange) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO balance_changes (driver_id, sponsor_id, amount, reason, order_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `, ch.DriverID, ch.SponsorID, ch.Amount, ch.Reason, ch.OrderID).
		Scan(&ch.ID, &ch.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert balance change: %w", err)
	}
	return nil
}

// InsertAlert queues a notification for a driver.
func (r *TxRepo) InsertAlert(ctx context.Context, driverID int64, message string) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO driver_alerts (driver_id, message)
        VALUES ($1, $2)
    `, driverID, message)
	if err != nil {
		return fmt.Errorf("insert alert for driver %d: %w", driverID, err)
	}
	return nil
}
