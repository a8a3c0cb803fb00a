package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"salon-booking/cmd/bootstrap"
	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// Never expose debug output because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           salon-booking
// @version         1.0
// @description     Appointments, catalog, gallery and WhatsApp reminders for a single salon.

// @BasePath  /api
// @schemes http https
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			listenAddr := ":" + cfg.Server.Port
			logger.Info("Starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("Server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Stopping server")
			return nil
		},
	})
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "salon-booking",
		Short:        "Salon appointment booking backend",
		SilenceUsage: true,
		RunE:         func(cmd *cobra.Command, _ []string) error { return serve(cmd.Context()) },
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(remindCmd())
	rootCmd.AddCommand(cleanupCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	app := fx.New(
		bootstrap.Module,
		bootstrap.HTTPModule,
		bootstrap.FxLogger,
		fx.Invoke(startServer),
	)

	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to start application", "error", err)
		return err
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("Failed to stop application", "error", err)
	}

	slog.Info("Application stopped")
	return nil
}

func remindCmd() *cobra.Command {
	var date string
	var onlyConfirmed bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Send WhatsApp reminders for one day and print the summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := reqdto.SendRemindersRequest{OnlyConfirmed: &onlyConfirmed}
			if date != "" {
				req.Date = &date
			}
			return runOnce(cmd.Context(), func(ctx context.Context, r commands.ReminderCommands) (any, error) {
				summary, err := r.SendWhatsAppReminders(ctx, req)
				if err != nil {
					return nil, err
				}
				return resdto.FromReminderSummary(summary), nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "target day as YYYY-MM-DD (default: today in SALON_TIMEZONE)")
	cmd.Flags().BoolVar(&onlyConfirmed, "only-confirmed", false, "skip appointments that are not confirmed")
	return cmd
}

func cleanupCmd() *cobra.Command {
	var before string

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete appointments dated before a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := reqdto.CleanupAppointmentsRequest{Before: before}
			return runOnce(cmd.Context(), func(ctx context.Context, a commands.AppointmentCommands) (any, error) {
				result, err := a.Cleanup(ctx, req)
				if err != nil {
					return nil, err
				}
				return resdto.FromCleanupResult(result), nil
			})
		},
	}
	cmd.Flags().StringVar(&before, "before", "", "cutoff day as YYYY-MM-DD; earlier appointments are removed")
	_ = cmd.MarkFlagRequired("before")
	return cmd
}

// runOnce builds the non-HTTP graph, runs fn with the requested usecase and
// prints its result as JSON.
func runOnce[T any](ctx context.Context, fn func(ctx context.Context, uc T) (any, error)) error {
	var uc T
	app := fx.New(
		bootstrap.Module,
		fx.NopLogger,
		fx.Populate(&uc),
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Error("Failed to stop application", "error", err)
		}
	}()

	out, err := fn(ctx, uc)
	if err != nil {
		slog.Error("Command failed", "error", err)
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
