package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// writeMaps stores name→content pairs in a fresh directory and returns it.
func writeMaps(t *testing.T, maps map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range maps {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

// execute runs the root command with stdin and args, returning stdout, stderr and the error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{
		"GRIDPATH_MAPS_DIR", "GRIDPATH_LOG_LEVEL", "GRIDPATH_LOG_FORMAT",
		"GRIDPATH_METRICS_FILE", "GRIDPATH_ALGORITHMS", "GRIDPATH_OVERLAY", "GRIDPATH_PARALLEL",
	} {
		t.Setenv(k, "")
	}
	var out, errOut strings.Builder
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

const centreWall = "S..\n.#.\n..G\n"

func TestRun_Prompt(t *testing.T) {
	dir := writeMaps(t, map[string]string{"map1.txt": centreWall})

	out, _, err := execute(t, "map1.txt\n", "--maps-dir", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Map name (e.g. map2.txt): "), out)
	assert.Contains(t, out, "--- BFS ---\nMinimal steps: 4\nMoves: DDRR\nNodes expanded: 8\nPeak frontier: 2\n")
	assert.Contains(t, out, "--- A* ---\nMinimal steps: 4\nMoves: RRDD\nS**\n.#*\n..G\nNodes expanded: 8\n")
	assert.Less(t, strings.Index(out, "--- BFS ---"), strings.Index(out, "--- A* ---"))
}

func TestRun_PromptEmpty(t *testing.T) {
	_, _, err := execute(t, "\n")
	assert.ErrorIs(t, err, errNoMapName)
}

func TestRun_Args(t *testing.T) {
	dir := writeMaps(t, map[string]string{
		"a.txt": centreWall,
		"b.txt": "S#G\n",
	})

	out, _, err := execute(t, "", "--maps-dir", dir, "--parallel", "2", "a.txt", "b.txt")
	require.NoError(t, err)
	assert.NotContains(t, out, "Map name")
	ia, ib := strings.Index(out, "=== a.txt ==="), strings.Index(out, "=== b.txt ===")
	require.GreaterOrEqual(t, ia, 0, out)
	require.Greater(t, ib, ia, out)
	assert.Equal(t, 2, strings.Count(out[ib:], "No solution."), out)
}

func TestRun_AbsolutePath(t *testing.T) {
	dir := writeMaps(t, map[string]string{"m.txt": "SG\n"})

	out, _, err := execute(t, "", "--algorithms", "astar", filepath.Join(dir, "m.txt"))
	require.NoError(t, err)
	assert.NotContains(t, out, "--- BFS ---")
	assert.Contains(t, out, "--- A* ---\nMinimal steps: 1\nMoves: R\nSG\n")
}

func TestRun_InvalidMap(t *testing.T) {
	dir := writeMaps(t, map[string]string{"bad.txt": "...\n..G\n"})

	_, errOut, err := execute(t, "", "--maps-dir", dir, "bad.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, grid.ErrInvalidMap)
	assert.Contains(t, errOut, "Error:")
}

func TestRun_MissingMap(t *testing.T) {
	_, _, err := execute(t, "", "--maps-dir", t.TempDir(), "nope.txt")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_BadFlag(t *testing.T) {
	_, _, err := execute(t, "", "--parallel", "0", "x.txt")
	assert.Error(t, err)
	_, _, err = execute(t, "", "--algorithms", "dfs", "x.txt")
	assert.Error(t, err)
}

func TestRun_MetricsAndLogs(t *testing.T) {
	dir := writeMaps(t, map[string]string{"m.txt": centreWall})
	metricsFile := filepath.Join(t.TempDir(), "gridpath.prom")

	_, errOut, err := execute(t, "", "--maps-dir", dir, "--metrics-file", metricsFile,
		"--log-level", "info", "--log-format", "json", "m.txt")
	require.NoError(t, err)

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gridpath_searches_total{algorithm="BFS",outcome="found"} 1`)
	assert.Contains(t, errOut, `"msg":"search finished"`)
	assert.Contains(t, errOut, `"algorithm":"A*"`)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "gridpath version "+versionString()+"\n", out)
}

func TestMapPath(t *testing.T) {
	assert.Equal(t, filepath.Join("maps", "m.txt"), mapPath("maps", "m.txt"))
	abs := filepath.Join(t.TempDir(), "m.txt")
	assert.Equal(t, abs, mapPath("maps", abs))
}

// TestRun_SampleMaps solves the maps shipped in the repository.
func TestRun_SampleMaps(t *testing.T) {
	out, _, err := execute(t, "", "--maps-dir", filepath.Join("..", "..", "maps"),
		"map1.txt", "map2.txt", "map3.txt")
	require.NoError(t, err)

	i2, i3 := strings.Index(out, "=== map2.txt ==="), strings.Index(out, "=== map3.txt ===")
	require.Positive(t, i2, out)
	require.Greater(t, i3, i2, out)
	assert.Equal(t, 2, strings.Count(out[i2:i3], "Minimal steps: 17\n"), out)
	assert.Equal(t, 2, strings.Count(out[i3:], "No solution.\n"), out)
}
