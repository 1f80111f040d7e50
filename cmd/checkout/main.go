package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/bennett-mcdowell/F25-Team03/internal/apperr"
	"github.com/bennett-mcdowell/F25-Team03/internal/cart"
	"github.com/bennett-mcdowell/F25-Team03/internal/checkout"
	"github.com/bennett-mcdowell/F25-Team03/internal/config"
	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
	ledgergw "github.com/bennett-mcdowell/F25-Team03/internal/gateway/ledger"
	"github.com/bennett-mcdowell/F25-Team03/internal/logx"
	"github.com/bennett-mcdowell/F25-Team03/internal/metrics"
)

const usage = `usage: checkout <command> [args]

commands:
  sponsors                                      show per-sponsor balances
  list                                          show the cart and checkout partitions
  add <product> <sponsor> <title> <price> <qty> add an item (sponsor 0 = none)
  remove <product> [sponsor]                    remove an item
  qty <product> <sponsor> <qty>                 change an item quantity
  clear                                         empty the cart
  submit                                        check out every sponsor partition
  cancel <order>                                cancel a pending order
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// diagnostics go to stderr so command output stays pipeable
	logger := logx.NewSlogAdapter(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	pending, err := cart.New(cart.NewFileStore(cfg.Cart.File, logger))
	if err != nil {
		log.Fatalf("load cart: %v", err)
	}

	client := ledgergw.NewClient(cfg.Ledger.BaseURL, cfg.Cart.DriverID, cfg.Ledger.Timeout)
	gw := ledgergw.NewRetryingGateway(client, logger, metrics.NewGatewayRetriesTotal(), ledgergw.RetryConfig{
		MaxAttempts: cfg.Ledger.MaxAttempts,
		BaseDelay:   cfg.Ledger.BaseDelay,
		MaxDelay:    cfg.Ledger.MaxDelay,
	})
	orch := checkout.NewOrchestrator(gw, pending, logger, 0)

	args := pflag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := dispatch(ctx, args, pending, orch, gw); err != nil {
		fmt.Fprintf(os.Stderr, "checkout: %v\n", err)
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, args []string, pending *cart.Cart, orch *checkout.Orchestrator, gw *ledgergw.RetryingGateway) error {
	switch cmd := args[0]; cmd {
	case "sponsors":
		return showSponsors(ctx, gw)
	case "list":
		return showCart(ctx, pending, orch)
	case "add":
		return addItem(pending, args[1:])
	case "remove":
		return removeItem(pending, args[1:])
	case "qty":
		return changeQty(pending, args[1:])
	case "clear":
		return pending.Clear()
	case "submit":
		return submit(ctx, orch)
	case "cancel":
		return cancelOrder(ctx, gw, args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func showSponsors(ctx context.Context, gw *ledgergw.RetryingGateway) error {
	sponsors, err := gw.Sponsors(ctx)
	if err != nil {
		return err
	}
	var total int64
	for _, s := range sponsors {
		fmt.Printf("%d\t%s\t%d pts\n", s.SponsorID, s.Name, s.Balance)
		total += s.Balance
	}
	fmt.Printf("total\t%d pts\n", total)
	return nil
}

func showCart(ctx context.Context, pending *cart.Cart, orch *checkout.Orchestrator) error {
	items := pending.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return nil
	}
	for _, it := range items {
		sponsor := "-"
		if it.SponsorID != nil {
			sponsor = strconv.FormatInt(*it.SponsorID, 10)
		}
		fmt.Printf("%d\t%s\tsponsor %s\t%.2f x%d\n", it.ProductID, it.Title, sponsor, it.Price, it.Quantity)
	}

	groups, err := orch.Checkouts(ctx)
	if err != nil {
		return err
	}
	for _, g := range groups {
		state := "ok"
		if !g.Sufficient {
			state = fmt.Sprintf("short %d pts", g.Shortfall())
		}
		fmt.Printf("sponsor %d: %d pts of %d available (%s)\n", g.SponsorID, g.TotalPoints, g.Available, state)
	}
	return nil
}

func addItem(pending *cart.Cart, args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("add needs <product> <sponsor> <title> <price> <qty>")
	}
	productID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad product id: %w", err)
	}
	sponsorID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("bad sponsor id: %w", err)
	}
	price, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("bad price: %w", err)
	}
	qty, err := strconv.Atoi(args[4])
	if err != nil {
		return fmt.Errorf("bad quantity: %w", err)
	}
	item := domain.CartItem{
		ProductID: productID,
		Title:     args[2],
		Price:     price,
		Quantity:  qty,
	}
	if sponsorID > 0 {
		item.SponsorID = &sponsorID
	}
	return pending.Add(item)
}

func removeItem(pending *cart.Cart, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("remove needs <product> [sponsor]")
	}
	productID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad product id: %w", err)
	}
	var sponsorID *int64
	if len(args) == 2 {
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("bad sponsor id: %w", err)
		}
		sponsorID = &id
	}
	return pending.Remove(productID, sponsorID)
}

func changeQty(pending *cart.Cart, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("qty needs <product> <sponsor> <qty>")
	}
	productID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad product id: %w", err)
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("bad sponsor id: %w", err)
	}
	qty, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("bad quantity: %w", err)
	}
	var sponsorID *int64
	if id > 0 {
		sponsorID = &id
	}
	return pending.UpdateQuantity(productID, sponsorID, qty)
}

func submit(ctx context.Context, orch *checkout.Orchestrator) error {
	result, err := orch.Submit(ctx)
	if ib, ok := apperr.AsInsufficientBalance(err); ok {
		return fmt.Errorf("sponsor %d balance too low: need %d, have %d (short %d)",
			ib.SponsorID, ib.Required, ib.Available, ib.Shortfall())
	}
	for _, a := range result.Accepted {
		fmt.Printf("order %d: %d items, %d pts, balance %d -> %d\n",
			a.OrderID, a.ItemsPurchased, a.TotalSpent, a.PreviousBalance, a.NewBalance)
	}
	for _, f := range result.Failures {
		fmt.Fprintf(os.Stderr, "sponsor %d rejected: %v\n", f.SponsorID, f.Err)
	}
	if err != nil {
		return err
	}
	fmt.Printf("checkout committed: %d items, %d pts total\n", result.ItemsPurchased, result.TotalSpent)
	for sponsorID, balance := range result.Balances {
		fmt.Printf("sponsor %d balance: %d pts\n", sponsorID, balance)
	}
	return nil
}

func cancelOrder(ctx context.Context, gw *ledgergw.RetryingGateway, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("cancel needs <order>")
	}
	orderID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad order id: %w", err)
	}
	res, err := gw.CancelOrder(ctx, orderID)
	if err != nil {
		return err
	}
	fmt.Printf("order %d cancelled, %d pts refunded, balance %d\n", res.OrderID, res.RefundedPoints, res.NewBalance)
	return nil
}
