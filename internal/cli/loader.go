package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Medofathi/hadrempro/internal/catalog"
)

// Error codes used in CLI output and LoadError.
const (
	ErrCodeNotFound = "E_NOT_FOUND"
	ErrCodeParse    = "E_PARSE"
	ErrCodeInvalid  = "E_INVALID"
	ErrCodeDatabase = "E_DATABASE"
	ErrCodeGeneric  = "E_GENERIC"
)

// LoadError represents an error that occurred during catalog loading.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// catalogFile is the shape of a YAML catalog seed file.
type catalogFile struct {
	Products []catalog.Product `yaml:"products"`
}

// LoadCatalogFile reads a YAML catalog file and validates every record
// against the product schema. The returned products are safe to seed or
// serve as-is.
func LoadCatalogFile(path string) ([]catalog.Product, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("catalog file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("reading catalog file: %v", err)}
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("parsing %s: %v", path, err)}
	}
	if len(f.Products) == 0 {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("no products in %s", path)}
	}

	if err := catalog.Validate(f.Products); err != nil {
		return nil, &LoadError{Code: ErrCodeInvalid, Message: err.Error()}
	}

	return f.Products, nil
}
