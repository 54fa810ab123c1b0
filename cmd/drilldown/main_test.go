package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	for _, key := range []string{"DRILLDOWN_DIR", "DRILLDOWN_RECURSIVE", "DRILLDOWN_THEME", "DRILLDOWN_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func eventDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"analytic2024115.json": `[{"Event":"login_1","DateTime":"2024-11-05T09:00:00"},{"Event":"login_2","DateTime":"2024-11-05T09:30:00"}]`,
		"analytic2024220.json": `[{"Event":"share_1","DateTime":"2024-02-20T14:00:00"},{"Event":"x","DateTime":"2024-02-20T15:00:00"}]`,
		filepath.Join("2023", "analytic20231231.json"): `[{"Event":"logout_1","DateTime":"2023-12-31T23:00:00"}]`,
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	}
	return dir
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "drilldown dev\n", out)
}

func TestSummaryCommand_Table(t *testing.T) {
	isolate(t)
	dir := eventDir(t)

	out, errOut, err := execute(t, "summary", dir)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Analytics for all time\n"), out)
	assert.Contains(t, out, "Analytics for the year 2024")
	assert.Contains(t, out, "login")
	assert.NotContains(t, out, "logout", "top level only without --recursive")
	assert.Contains(t, errOut, "Loaded 2 days")
	assert.Contains(t, errOut, "Skipped 1 record")
}

func TestSummaryCommand_RecursiveMonths(t *testing.T) {
	isolate(t)
	dir := eventDir(t)

	out, _, err := execute(t, "summary", "--recursive", "--months", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Analytics for the year 2023")
	assert.Contains(t, out, "Analytics for December of 2023")
	assert.Contains(t, out, "Analytics for November of 2024")
	assert.Contains(t, out, "logout")
}

func TestSummaryCommand_ConfigSuppliesDir(t *testing.T) {
	isolate(t)
	dir := eventDir(t)
	configPath := filepath.Join(t.TempDir(), "drilldown.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("source:\n  dir: "+dir+"\n  recursive: true\n"), 0644))

	out, _, err := execute(t, "summary", "--config", configPath, "--year", "2023")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Analytics for the year 2023\n"), out)
}

func TestSummaryCommand_Errors(t *testing.T) {
	isolate(t)
	dir := eventDir(t)

	_, _, err := execute(t, "summary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no source directory")

	_, _, err = execute(t, "summary", "--format", "csv", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")

	_, _, err = execute(t, "summary", "--theme", "neon", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "analytic_bad.json"), []byte("[]"), 0644))
	_, _, err = execute(t, "summary", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analytic_bad")
}

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	assert.NoError(t, validateDir(dir))
	assert.EqualError(t, validateDir(""), "Please enter a directory")
	assert.EqualError(t, validateDir(file), "Directory does not exist")
	assert.EqualError(t, validateDir(filepath.Join(dir, "missing")), "Directory does not exist")
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 day", plural(1, "day"))
	assert.Equal(t, "0 files", plural(0, "file"))
	assert.Equal(t, "12,345 records", plural(12345, "record"))
}

func TestPrinter_PlainOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	p := &Printer{out: &out, err: &errOut}

	p.Info("reading %s", "logs")
	p.Success("done")
	p.Warning("careful")
	p.Error("failed: %d", 3)

	assert.Equal(t, "reading logs\n[OK] done\n", out.String())
	assert.Equal(t, "[WARN] careful\n[ERROR] failed: 3\n", errOut.String())
}
