package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/estimatecheck/marketplace/internal/repository/snapshot"
	"github.com/estimatecheck/marketplace/internal/seed"
)

// SeedCmd writes the sample marketplace into the configured store.
func SeedCmd(opts *Options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the store with sample data",
		Long: "Writes the sample vendors, products and reviews into an empty store. " +
			"With --force the stored marketplace is replaced.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), cmd.OutOrStdout(), opts, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace existing data")

	return cmd
}

func runSeed(ctx context.Context, w io.Writer, opts *Options, force bool) error {
	a, err := newApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	// Seed even when the config skips seeding on startup.
	repo := snapshot.New(a.store, a.cfg.Store.KeyPrefix, seed.Snapshot)

	load := repo.Load
	if force {
		load = repo.Reset
	}
	snap, err := load(ctx)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	a.logger.Info("seed complete",
		zap.Bool("force", force),
		zap.Int("vendors", len(snap.Vendors)),
		zap.Int("products", len(snap.Products)),
		zap.Int("reviews", len(snap.Reviews)),
	)
	_, err = fmt.Fprintf(w, "Store holds %d vendors, %d products, %d reviews\n",
		len(snap.Vendors), len(snap.Products), len(snap.Reviews))
	return err
}
