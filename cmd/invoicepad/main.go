// Command invoicepad exercises the local data service from the terminal:
// seed demo data, list what the substrate holds, print metrics, or keep a
// background janitor sweeping the TTL window.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/invoicepad/invoicepad/internal/auth"
	"github.com/invoicepad/invoicepad/internal/calculator"
	"github.com/invoicepad/invoicepad/internal/config"
	"github.com/invoicepad/invoicepad/internal/janitor"
	"github.com/invoicepad/invoicepad/internal/models"
	"github.com/invoicepad/invoicepad/internal/service"
	"github.com/invoicepad/invoicepad/internal/storage"
	"github.com/invoicepad/invoicepad/internal/storage/memory"
	"github.com/invoicepad/invoicepad/internal/storage/sqlite"
	"github.com/invoicepad/invoicepad/pkg/logging"
)

func main() {
	logging.Setup()

	app := &cli.App{
		Name:  "invoicepad",
		Usage: "local invoicing data service demo",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "mem",
				Usage: "use the in-memory substrate instead of SQLite",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "log in, seed a client and an invoice, print the computed totals",
				Action: runDemo,
			},
			{
				Name:   "list",
				Usage:  "list the demo user's clients and invoices",
				Action: runList,
			},
			{
				Name:   "stats",
				Usage:  "print the service metrics",
				Action: runStats,
			},
			{
				Name:   "run",
				Usage:  "keep the TTL janitor sweeping until interrupted",
				Action: runJanitor,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// setup loads config and wires a Service over the chosen substrate.
func setup(c *cli.Context) (*service.Service, config.App, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, nil, fmt.Errorf("failed to load config: %w", err)
	}

	var store storage.Store
	if c.Bool("mem") || cfg.DBPath == "" {
		store = memory.New()
		slog.Info("Substrate initialized", "backend", "memory")
	} else {
		store, err = sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, cfg, nil, err
		}
		slog.Info("Substrate initialized", "backend", "sqlite", "path", cfg.DBPath)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenDuration())
	svc := service.New(store, tokens, service.Options{
		TTL:          cfg.TTL(),
		Latency:      cfg.Latency(),
		DemoEmail:    cfg.DemoEmail,
		DemoPassword: cfg.DemoPassword,
	})

	cleanup := func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close substrate", "error", err)
		}
	}
	return svc, cfg, cleanup, nil
}

func runDemo(c *cli.Context) error {
	svc, cfg, cleanup, err := setup(c)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := c.Context

	user, _, err := svc.Auth.Login(ctx, cfg.DemoEmail, cfg.DemoPassword)
	if err != nil {
		return err
	}

	client, err := svc.Clients.Create(ctx, models.Client{
		UserID: user.ID,
		Name:   "Acme Corp",
		Email:  "billing@acme.example",
		Phone:  "+1 555 0100",
	})
	if err != nil {
		return err
	}

	items := []models.InvoiceItem{
		{ID: "item-1", Description: "Design work", Quantity: 2, Price: 50},
		{ID: "item-2", Description: "Hosting", Quantity: 1, Price: 25},
	}
	taxRate := 10.0
	totals := calculator.Compute(items, taxRate)

	invoice, err := svc.Invoices.Create(ctx, models.Invoice{
		UserID:        user.ID,
		ClientID:      client.ID,
		InvoiceNumber: "INV-0001",
		Date:          "2026-08-30",
		DueDate:       "2026-09-29",
		Items:         items,
		TotalAmount:   totals.Total,
		Status:        models.StatusDraft,
		TaxRate:       taxRate,
	})
	if err != nil {
		return err
	}

	fmt.Printf("client   %s  %s\n", client.ID, client.Name)
	fmt.Printf("invoice  %s  %s\n", invoice.ID, invoice.InvoiceNumber)
	fmt.Printf("subtotal %.2f  tax %.2f  total %.2f\n", totals.Subtotal, totals.Tax, totals.Total)
	return nil
}

func runList(c *cli.Context) error {
	svc, _, cleanup, err := setup(c)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := c.Context

	user, err := svc.Auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("no session: run the demo command first")
	}

	clients, err := svc.Clients.List(ctx, user.ID)
	if err != nil {
		return err
	}
	invoices, err := svc.Invoices.List(ctx, user.ID)
	if err != nil {
		return err
	}

	fmt.Printf("session user %s <%s>\n", user.Name, user.Email)
	for _, cl := range clients {
		fmt.Printf("client   %s  %s <%s>\n", cl.ID, cl.Name, cl.Email)
	}
	for _, inv := range invoices {
		fmt.Printf("invoice  %s  %s  %s  %.2f\n", inv.ID, inv.InvoiceNumber, inv.Status, inv.TotalAmount)
	}
	return nil
}

func runStats(c *cli.Context) error {
	svc, _, cleanup, err := setup(c)
	if err != nil {
		return err
	}
	defer cleanup()

	// Run one guarded check so counters reflect the current substrate state.
	if _, err := svc.Guard().CheckAndReset(c.Context); err != nil {
		return err
	}

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "invoicepad_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			var labels string
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf(" %s=%s", lp.GetName(), lp.GetValue())
			}
			fmt.Printf("%s%s %v\n", mf.GetName(), labels, m.GetCounter().GetValue())
		}
	}
	return nil
}

func runJanitor(c *cli.Context) error {
	svc, cfg, cleanup, err := setup(c)
	if err != nil {
		return err
	}
	defer cleanup()

	j, err := janitor.New(svc.Guard(), cfg.SweepInterval())
	if err != nil {
		return err
	}
	j.Start()
	defer j.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	return nil
}
