package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/archforge/archforge/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffoldCommand_WritesFiles(t *testing.T) {
	tmpDir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"scaffold", "Order",
		"--props", "CustomerName:string, Total:decimal",
		"--path", tmpDir})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Scaffolded Order")

	data, err := os.ReadFile(filepath.Join(tmpDir, "src", "Domain", "Entities", "Order.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "public partial class Order")
}

func TestScaffoldCommand_DryRun(t *testing.T) {
	tmpDir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"scaffold", "Order",
		"--props", "Total:decimal",
		"--dry-run",
		"--path", tmpDir})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Would scaffold Order")

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry run must not write files")
}

func TestScaffoldCommand_JSON(t *testing.T) {
	tmpDir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"scaffold", "Order",
		"--props", "Total:decimal",
		"--dry-run", "--json",
		"--path", tmpDir})
	require.NoError(t, cmd.Execute())

	var artifacts []map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &artifacts)
	require.NoError(t, err, "output should be valid JSON")
	require.NotEmpty(t, artifacts)
	assert.Contains(t, artifacts[0], "path")
	assert.Contains(t, artifacts[0], "content")
}

func TestScaffoldCommand_LayerSubset(t *testing.T) {
	tmpDir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"scaffold", "Order",
		"--props", "Total:decimal",
		"--layers", "domain",
		"--path", tmpDir})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(filepath.Join(tmpDir, "src", "Infrastructure"))
	assert.True(t, os.IsNotExist(err), "infrastructure layer should be skipped")
}

func TestScaffoldCommand_UnknownLayer(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"scaffold", "Order", "--layers", "controller", "--path", t.TempDir()})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown layer")
}

func TestScaffoldCommand_MalformedProps(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"scaffold", "Order", "--props", "Total decimal", "--path", t.TempDir()})
	assert.Error(t, cmd.Execute())
}

func TestScaffoldCommand_RequiresEntityArg(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"scaffold"})
	assert.Error(t, cmd.Execute())
}

func TestScaffoldCommand_Relationships(t *testing.T) {
	tmpDir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"scaffold", "Order",
		"--props", "Total:decimal",
		"--relations", "OrderItem:one-to-many",
		"--known", "OrderItem",
		"--path", tmpDir})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, "src", "Domain", "Entities", "Order.Relationships.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "ICollection<OrderItem>")
}
