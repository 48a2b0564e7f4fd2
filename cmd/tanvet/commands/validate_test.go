package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDataset lays out a consistent six-pair dataset on disk.
func writeDataset(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "wz"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "codm"), 0o755))

	mapping := "wz,codm\n"

	for i := 1; i <= 6; i++ {
		wzPath := filepath.Join(dir, "wz", fmt.Sprintf("%d.txt", i))
		codmPath := filepath.Join(dir, "codm", fmt.Sprintf("c%d.txt", i))
		require.NoError(t, os.WriteFile(wzPath, []byte("RYB\nBPS\n"), 0o644))
		require.NoError(t, os.WriteFile(codmPath, []byte("RYB\nBSP\n"), 0o644))
		mapping += fmt.Sprintf("%d,c%d\n", i, i)
	}

	mappingPath := filepath.Join(dir, "mapping.csv")
	require.NoError(t, os.WriteFile(mappingPath, []byte(mapping), 0o644))

	return dir
}

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		dataDirFlag = ""
		configFlag = ""
		outDirFlag = ""
		planFileFlag = ""
	})
}

func TestRunValidate(t *testing.T) {
	dir := writeDataset(t)
	t.Chdir(t.TempDir())
	resetFlags(t)

	dataDirFlag = dir
	assert.NoError(t, runValidate(ValidateCmd, nil))
}

func TestRunValidate_BadPair(t *testing.T) {
	dir := writeDataset(t)
	// Same arrows on both sides of pair 3.
	path := filepath.Join(dir, "codm", "c3.txt")
	require.NoError(t, os.WriteFile(path, []byte("RYBBPS"), 0o644))

	t.Chdir(t.TempDir())
	resetFlags(t)

	dataDirFlag = dir
	err := runValidate(ValidateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad pair 3/c3")
	assert.Contains(t, err.Error(), "non-matching arrows, index 4")
}

func TestRunRender(t *testing.T) {
	dir := writeDataset(t)
	out := filepath.Join(t.TempDir(), "out")
	t.Chdir(t.TempDir())
	resetFlags(t)

	dataDirFlag = dir
	outDirFlag = out
	require.NoError(t, runRender(RenderCmd, nil))

	for _, name := range []string{
		"reference.png",
		"translated_reference.png",
		"grid_6_by_6_striped.png",
		"grid_6_by_6_sequential.png",
		"grid_18_by_2_striped.png",
		"grid_18_by_2_sequential.png",
	} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, "expected %s", name)
	}
}

func TestRunDump(t *testing.T) {
	dir := writeDataset(t)
	t.Chdir(t.TempDir())
	resetFlags(t)

	dataDirFlag = dir
	assert.NoError(t, runDump(DumpCmd, nil))
}
