package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Medofathi/hadrempro/internal/store"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	Database string
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed <catalog.yaml>",
		Short: "Load a YAML catalog file into the database",
		Long: `Load a YAML catalog file into the SQLite database.

The file is validated against the product schema before anything is
written; an invalid file leaves the database untouched. Seeding
replaces the existing catalog in a single transaction.

Example:
  hadrempro seed ./catalog.yaml --db ./shop.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite catalog database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runSeed(opts *SeedOptions, catalogPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	products, err := LoadCatalogFile(catalogPath)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			if loadErr.Code == ErrCodeInvalid {
				return NewExitError(ExitFailure, loadErr.Message)
			}
			return NewExitError(ExitCommandError, loadErr.Message)
		}
		return WrapExitError(ExitCommandError, "loading catalog", err)
	}
	formatter.VerboseLog("loaded %d product(s) from %s", len(products), catalogPath)

	db, err := store.Open(opts.Database)
	if err != nil {
		_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening database", err)
	}
	defer db.Close()

	if err := db.SeedProducts(cmd.Context(), products); err != nil {
		_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitCommandError, "seeding catalog", err)
	}

	return formatter.Success(fmt.Sprintf("Seeded %d product(s) into %s", len(products), opts.Database))
}
