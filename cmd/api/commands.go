package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"rental_portal/internal/adapter/http/dto/response"
	"rental_portal/internal/adapter/http/routes"
	"rental_portal/internal/adapter/persistence/repository"
	"rental_portal/internal/config"
	"rental_portal/internal/infrastructure/database"
	"rental_portal/internal/usecase"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if a.cfg.Production() {
				gin.SetMode(gin.ReleaseMode)
			}
			if addr == "" {
				addr = a.cfg.HTTPAddr
			}
			return routes.Run(ctx, addr, routes.NewRouter(a.deps), a.logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to HTTP_ADDR)")
	return cmd
}

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "sweep [rent-due-soon|rent-overdue|lease-expiring]",
		Short:     "Run one scheduled sweep once and print its summary",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{usecase.SweepRentDueSoon, usecase.SweepRentOverdue, usecase.SweepLeaseExpiring},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			res, err := a.deps.Sweeps.Run(cmd.Context(), args[0])
			a.metrics.SweepCompleted(args[0], res.Notified, res.Failed, res.Transitioned, err)
			if err != nil {
				return err
			}
			a.logger.Info("[sweep][cli] completed",
				zap.String("sweep", res.Sweep),
				zap.Int("processed", res.Processed),
				zap.Int("notified", res.Notified),
				zap.Int("failed", res.Failed),
				zap.Int("transitioned", res.Transitioned))
			return printJSON(cmd, response.FromSweep(res))
		},
	}
}

func invoicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Rent invoice maintenance",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Create next month's rent invoices for every active tenant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			run, err := a.deps.Payments.GenerateMonthlyInvoices(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, response.FromInvoiceRun(run))
		},
	})
	return cmd
}

func tablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "DynamoDB table management",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Create the missing DynamoDB tables and wait until they are active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			if cfg.StorageDriver != config.StorageDynamoDB {
				return fmt.Errorf("tables create needs STORAGE_DRIVER=%s, got %s", config.StorageDynamoDB, cfg.StorageDriver)
			}

			ctx := cmd.Context()
			ddb, err := database.ConnectDynamoDB(ctx, dynamoOptions(cfg))
			if err != nil {
				return err
			}
			created, err := database.EnsureTables(ctx, ddb, repository.Schema(repository.TableNamesFromEnv()), cfg.TableWait, log)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string][]string{"created": created})
		},
	})
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
