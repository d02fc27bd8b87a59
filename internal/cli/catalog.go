package cli

import (
	"github.com/spf13/cobra"

	"github.com/Medofathi/hadrempro/internal/catalog"
	"github.com/Medofathi/hadrempro/internal/render"
	"github.com/Medofathi/hadrempro/internal/store"
)

// CatalogOptions holds flags for the catalog command.
type CatalogOptions struct {
	*RootOptions
	Database string
	Search   string
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the product catalog",
		Long: `Print the product catalog.

Reads from the SQLite database given with --db, falling back to the
built-in list when no database is available. With --search, only
products whose name or category contains the query (case-insensitive)
are shown.

Example:
  hadrempro catalog --db ./shop.db
  hadrempro catalog --search apparel --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite catalog database (optional)")
	cmd.Flags().StringVar(&opts.Search, "search", "", "filter by name or category substring")

	return cmd
}

func runCatalog(opts *CatalogOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var products []catalog.Product
	if opts.Database == "" {
		formatter.VerboseLog("no catalog database given, using fallback list")
		products = catalog.Fallback()
	} else {
		db, err := store.Open(opts.Database)
		if err != nil {
			formatter.VerboseLog("opening %s failed (%v), using fallback list", opts.Database, err)
			products = catalog.Fallback()
		} else {
			defer db.Close()
			products = catalog.Load(cmd.Context(), db, newLogger(opts.Verbose))
		}
	}

	products = catalog.Filter(products, opts.Search)

	if opts.Format == "json" {
		return formatter.Success(products)
	}
	return formatter.Success(render.Catalog(products))
}
