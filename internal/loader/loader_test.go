package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestReadTangramFile_StripsWhitespace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "1.txt")
	writeFile(t, path, "RYB\nBPS\n")

	enc, err := ReadTangramFile(path)
	require.NoError(t, err)
	assert.EqualValues(t, "RYBBPS", enc)
}

func TestReadTangramFile_MissingFile(t *testing.T) {
	_, err := ReadTangramFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")
}

func TestLoadSet_NumericOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "10.txt"), "RYBBPS")
	writeFile(t, filepath.Join(dir, "2.txt"), "RYBBPS")
	writeFile(t, filepath.Join(dir, "1.txt"), "RYBBPS")

	set, err := LoadSet(dir, WzSet)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "10"}, set.Names())
	assert.Equal(t, WzSet, set.Name())
}

func TestLoadSet_LexicographicFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bravo.txt"), "RYBBPS")
	writeFile(t, filepath.Join(dir, "alpha.txt"), "RYBBPS")
	writeFile(t, filepath.Join(dir, "10.txt"), "RYBBPS")

	set, err := LoadSet(dir, CodmSet)
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "alpha", "bravo"}, set.Names())
}

func TestLoadSet_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "1.txt"), "RYBBPS")
	writeFile(t, filepath.Join(dir, "notes.md"), "not a tangram")

	set, err := LoadSet(dir, WzSet)
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
}

func TestLoadMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.csv")
	writeFile(t, path, "wz,codm\n3,C\n1,\n2,B\n,ignored\n")

	m, err := LoadMapping(path)
	require.NoError(t, err)

	require.Equal(t, 3, m.Len())
	pairs := m.Pairs()
	assert.Equal(t, "3", pairs[0].Source)
	assert.Equal(t, "C", pairs[0].Target)
	assert.Equal(t, "1", pairs[1].Source)
	assert.Equal(t, "", pairs[1].Target, "empty target survives as empty string")
	assert.Equal(t, "2", pairs[2].Source)
}

func TestLoadMapping_SingleColumnRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.csv")
	writeFile(t, path, "wz,codm\n1\n")

	m, err := LoadMapping(path)
	require.NoError(t, err)

	target, ok := m.Target("1")
	require.True(t, ok)
	assert.Equal(t, "", target)
}

func TestLoadDataset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "wz", "1.txt"), "RYB\nBPS")
	writeFile(t, filepath.Join(dir, "codm", "A.txt"), "RYB\nBSP")
	writeFile(t, filepath.Join(dir, "mapping.csv"), "wz,codm\n1,A\n")

	wz, codm, m, err := LoadDataset(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, wz.Len())
	assert.Equal(t, 1, codm.Len())
	assert.Equal(t, 1, m.Len())

	enc, ok := wz.Get("1")
	require.True(t, ok)
	assert.EqualValues(t, "RYBBPS", enc)
}

func TestLoadDataset_MissingMapping(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "wz", "1.txt"), "RYBBPS")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "codm"), 0o755))

	_, _, _, err := LoadDataset(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping.csv")
}
