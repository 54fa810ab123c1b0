package ingest

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "analytic2024220.json", []byte("[]"))
	writeFile(t, dir, "analytic2024115.json", []byte("[]"))
	writeFile(t, dir, "notes.txt", []byte("ignore me"))
	writeFile(t, dir, filepath.Join("2023", "analytic2023101.json"), []byte("[]"))
	writeFile(t, dir, filepath.Join("2023", "deep", "analytic20231231.json"), []byte("[]"))
	return dir
}

func TestDiscover_TopLevelOnly(t *testing.T) {
	dir := scanFixture(t)

	scan, err := Discover(Source{Dir: dir, Pattern: "analytic*"})
	require.NoError(t, err)

	assert.Equal(t, []string{dir}, scan.Dirs)
	assert.Equal(t, []string{
		filepath.Join(dir, "analytic2024115.json"),
		filepath.Join(dir, "analytic2024220.json"),
	}, scan.Files)
}

func TestDiscover_Recursive(t *testing.T) {
	dir := scanFixture(t)

	scan, err := Discover(Source{Dir: dir, Recursive: true, Pattern: "analytic*"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		dir,
		filepath.Join(dir, "2023"),
		filepath.Join(dir, "2023", "deep"),
	}, scan.Dirs)
	assert.Equal(t, []string{
		filepath.Join(dir, "2023", "analytic2023101.json"),
		filepath.Join(dir, "2023", "deep", "analytic20231231.json"),
		filepath.Join(dir, "analytic2024115.json"),
		filepath.Join(dir, "analytic2024220.json"),
	}, scan.Files)
}

func TestDiscover_EmptyPatternMatchesEverything(t *testing.T) {
	dir := scanFixture(t)

	scan, err := Discover(Source{Dir: dir})
	require.NoError(t, err)
	assert.Len(t, scan.Files, 3)
}

func TestDiscover_Errors(t *testing.T) {
	dir := scanFixture(t)

	_, err := Discover(Source{Dir: filepath.Join(dir, "missing"), Pattern: "*"})
	assert.True(t, errors.Is(err, ErrNoSource))

	_, err = Discover(Source{Dir: filepath.Join(dir, "notes.txt"), Pattern: "*"})
	assert.True(t, errors.Is(err, ErrNoSource))

	_, err = Discover(Source{Dir: dir, Pattern: "analytic[2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file pattern")
}
