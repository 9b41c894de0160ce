// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadpath/loader"
)

func sample(name string) string {
	return filepath.Join("..", "..", "loader", "testdata", name)
}

// run executes the command tree and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&globalOpts{})
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	t.Cleanup(func() { SetVersion("dev", "", "") })

	if version != "1.0.0" || commit != "abc123" || date != "2024-01-01" {
		t.Errorf("SetVersion did not update build info: %q %q %q", version, commit, date)
	}
}

func TestSolve(t *testing.T) {
	out, _, err := run(t, "solve", "--cost", sample("diamond.xml"), sample("unreachable.xml"), sample("chain.xml"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "diamond.xml: ")
	assert.Contains(t, lines[0], "1, 4, 2, 3")
	assert.Contains(t, lines[0], "cost 3")
	assert.Contains(t, lines[1], "No path found")
	assert.Contains(t, lines[2], "1, 2, 3")
}

func TestSolve_FailureIsReportedAndReturned(t *testing.T) {
	out, _, err := run(t, "solve", "--workers", "1", sample("chain.xml"), sample("node_without_id_1.xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "1, 2, 3")
	assert.Contains(t, out, "Node without ID")
}

func TestSolve_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "roadpath.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("separator = \" > \"\nno_path_text = \"none\"\n"), 0o600))

	out, _, err := run(t, "solve", "--config", cfgPath, sample("chain.xml"), sample("crashed_middle.xml"))
	require.NoError(t, err)
	assert.Contains(t, out, "1 > 2 > 3")
	assert.Contains(t, out, "none")
}

func TestSolve_InvalidFlags(t *testing.T) {
	_, _, err := run(t, "solve", "--workers", "0", sample("chain.xml"))
	assert.Error(t, err)

	_, _, err = run(t, "solve")
	assert.Error(t, err)
}

func TestSolve_VerboseLogsToStderr(t *testing.T) {
	_, stderr, err := run(t, "solve", "-v", sample("chain.xml"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "path found")
	assert.Contains(t, stderr, "Solved 1 road systems")
}

func TestValidate(t *testing.T) {
	out, _, err := run(t, "validate", sample("diamond.xml"), sample("crashed_middle.xml"))
	require.NoError(t, err)
	assert.Contains(t, out, "diamond.xml: valid, finish reachable")
	assert.Contains(t, out, "crashed_middle.xml: valid, finish unreachable")
	assert.Contains(t, out, "4 nodes")
	assert.Contains(t, out, "1 crashed")

	out, _, err = run(t, "validate", sample("link_to_non_exist.xml"))
	require.Error(t, err)
	assert.Contains(t, out, "Link points to non-existing node")
}

func TestGenerate_RoundTripsThroughSolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.xml")
	_, stderr, err := run(t, "generate", "--kind", "grid", "--rows", "4", "--cols", "5", "--seed", "9", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, path)

	g, err := loader.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 20, g.NodeCount())
	assert.Equal(t, 4*4+3*5, g.EdgeCount())

	out, _, err := run(t, "solve", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(stripANSI(out)), "✓ grid.xml: 1, "))
}

func TestGenerate_Stdout(t *testing.T) {
	out, _, err := run(t, "generate", "--kind", "chain", "-n", "3", "--crashed", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `<node id="2" status="crashed">`)

	g, err := loader.LoadFromText(out)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())

	_, _, err = run(t, "generate", "--kind", "ring")
	assert.Error(t, err)

	_, _, err = run(t, "generate", "--kind", "random", "--nodes", "1")
	assert.Error(t, err)
}

func TestGenerate_OutputErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-dir", "out.xml")
	_, stderr, err := run(t, "generate", "--kind", "chain", "-n", "3", "-o", missing)
	require.Error(t, err)
	assert.NotContains(t, stderr, missing)

	_, err = os.Stat(missing)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFile(t *testing.T) {
	g, err := loader.LoadFromPath(sample("diamond.xml"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "copy.xml")
	require.NoError(t, writeFile(path, g))
	back, err := loader.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())

	require.Error(t, writeFile(filepath.Join(t.TempDir(), "missing", "x.xml"), g))
	require.Error(t, writeFile(path, nil))
}

// stripANSI removes terminal escape sequences lipgloss may emit.
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
