package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand_ValidCatalog(t *testing.T) {
	path := writeCatalog(t, validCatalogYAML)

	out, err := execute(t, "validate", path)

	require.NoError(t, err)
	assert.Contains(t, out, "catalog is valid")
	assert.Contains(t, out, "2 product(s)")
}

func TestValidateCommand_InvalidCatalogFails(t *testing.T) {
	path := writeCatalog(t, `products:
  - id: 1
    name: Overdraft
    description: negative price
    price: -3.00
    category: Test
    imageUrl: https://example.com/x.png
`)

	out, err := execute(t, "validate", path)

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "E_INVALID")
}

func TestValidateCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "validate", "does-not-exist.yaml")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestValidateCommand_JSONOutput(t *testing.T) {
	path := writeCatalog(t, validCatalogYAML)

	out, err := execute(t, "validate", path, "--format", "json")

	require.NoError(t, err)
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}
