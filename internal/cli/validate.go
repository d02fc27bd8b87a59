package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ValidationResult holds validation results for JSON output.
type ValidationResult struct {
	Valid    bool   `json:"valid"`
	Products int    `json:"products,omitempty"`
	Error    string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <catalog.yaml>",
		Short: "Validate a catalog file without seeding",
		Long: `Validate a YAML catalog file against the product schema without
writing anything.

Checks every record (id >= 1, non-negative price, required fields) and
rejects duplicate product ids. Faster feedback than a full seed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, catalogPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	products, err := LoadCatalogFile(catalogPath)
	if err != nil {
		var loadErr *LoadError
		code, msg := ErrCodeGeneric, err.Error()
		if errors.As(err, &loadErr) {
			code, msg = loadErr.Code, loadErr.Message
		}
		if opts.Format == "json" {
			_ = formatter.Success(ValidationResult{Valid: false, Error: msg})
		} else {
			_ = formatter.Error(code, msg, nil)
		}
		if code == ErrCodeInvalid || code == ErrCodeParse {
			return NewExitError(ExitFailure, msg)
		}
		return NewExitError(ExitCommandError, msg)
	}

	if opts.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Products: len(products)})
	}
	return formatter.Success(fmt.Sprintf("%s: %d product(s), catalog is valid", catalogPath, len(products)))
}
