package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Medofathi/hadrempro/internal/catalog"
	"github.com/Medofathi/hadrempro/internal/checkout"
	"github.com/Medofathi/hadrempro/internal/shop"
	"github.com/Medofathi/hadrempro/internal/store"
)

// ShopOptions holds flags for the shop command.
type ShopOptions struct {
	*RootOptions
	Database string
}

// NewShopCommand creates the shop command.
func NewShopCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShopOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Start an interactive shopping session",
		Long: `Start an interactive shopping session.

The catalog is read from the SQLite database given with --db. If the
database cannot be opened or holds no products, a built-in fallback
catalog is served instead, so the shop always opens.

The cart lives for the session only; quitting discards it.

Example:
  hadrempro shop --db ./shop.db
  hadrempro shop --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShop(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite catalog database (optional)")

	return cmd
}

func runShop(opts *ShopOptions, cmd *cobra.Command) error {
	logger := newLogger(opts.Verbose)
	ctx := cmd.Context()

	products := loadCatalog(opts.Database, logger, cmd)

	session := shop.NewSession(products, checkout.NewProcessor(), logger)
	if err := session.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return WrapExitError(ExitCommandError, "shopping session failed", err)
	}
	return nil
}

// loadCatalog resolves the catalog provider from the --db flag.
// Any failure degrades to the fallback list; the shop never refuses
// to open.
func loadCatalog(dbPath string, logger *slog.Logger, cmd *cobra.Command) []catalog.Product {
	ctx := cmd.Context()

	if dbPath == "" {
		logger.Info("no catalog database given, using fallback list")
		return catalog.Fallback()
	}

	db, err := store.Open(dbPath)
	if err != nil {
		logger.Warn("opening catalog database failed, using fallback list", "db", dbPath, "error", err)
		return catalog.Fallback()
	}
	defer db.Close()

	products := catalog.Load(ctx, db, logger)
	if len(products) == 0 {
		logger.Warn("catalog database is empty, using fallback list", "db", dbPath)
		return catalog.Fallback()
	}
	return products
}

// newLogger configures slog for CLI use: info by default, debug when
// verbose, always to stderr so it never mixes with view output.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
