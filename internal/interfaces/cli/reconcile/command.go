package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"togetherly/internal/application/subscription/usecases"
	"togetherly/internal/infrastructure/billing"
	"togetherly/internal/infrastructure/database"
	"togetherly/internal/infrastructure/repository"
	"togetherly/internal/interfaces/cli"
)

var (
	env     string
	timeout time.Duration
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Sync local subscriptions with the billing provider once",
		Long: `Run one synchronous reconcile pass over every subscription that has a
provider id, print the result as JSON and exit non-zero when any row failed.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Upper bound for the pass (default: billing.reconcile_timeout_seconds)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := cli.Bootstrap(env)
	if err != nil {
		return err
	}
	if !cfg.Billing.Configured() {
		return fmt.Errorf("billing is not configured: set billing.secret_key")
	}

	if err := database.Init(&cfg.Database, log); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	passTimeout := timeout
	if passTimeout <= 0 {
		passTimeout = cfg.Billing.ReconcileTimeout()
	}

	uc := usecases.NewReconcileSubscriptionsUseCase(
		repository.NewSubscriptionRepository(db, log),
		repository.NewUserRepository(db, log),
		repository.NewReconcileJobRepository(db, log),
		billing.NewStripeProvider(cfg.Billing, log),
		nil,
		passTimeout,
		log,
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), passTimeout)
	defer cancel()

	result, err := uc.RunOnce(ctx, usecases.TriggerCLI)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if !result.OK {
		return fmt.Errorf("reconcile finished with %d failed subscriptions", result.Failed)
	}
	return nil
}
