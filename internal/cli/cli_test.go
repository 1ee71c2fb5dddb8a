package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../etl/testdata/lists.json"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"SEED_SCHEMA", "SEED_OUTPUT_DIR", "SQL_CONNECTION_STRING", "MONGO_CONNECTION_STRING"} {
		t.Setenv(key, "")
	}

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootRequiresExactlyOneArgument(t *testing.T) {
	for _, args := range [][]string{{}, {"a.json", "b.json"}} {
		stdout, stderr, err := execute(t, args...)
		require.Error(t, err)
		assert.Contains(t, stderr, "Error: accepts 1 arg(s)")
		assert.Contains(t, stdout+stderr, "Usage:")
		assert.Contains(t, stdout+stderr, "seedgen <json_file_path>")
	}
}

func TestRootWritesTimestampedFile(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, fixture, "--output-dir", dir)
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "seed_data_*.sql"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	blocks := strings.Split(string(data), "\n\n")
	require.Len(t, blocks, 2)
	assert.Len(t, strings.Split(blocks[0], "\n"), 12)
	assert.Len(t, strings.Split(strings.TrimSuffix(blocks[1], "\n"), "\n"), 13)
}

func TestRootStdoutWithSchema(t *testing.T) {
	stdout, _, err := execute(t, fixture, "--stdout", "--schema", "Catalog")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "INSERT INTO Catalog.Category "))
	assert.Contains(t, stdout, "INSERT INTO Catalog.Course_List (course_id, list_id) VALUES (12, 2);\n")
	assert.NotContains(t, stdout, "INFO:")
}

func TestRootDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, fixture, "--dry-run", "--output-dir", dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRootMissingInputFile(t *testing.T) {
	dir := t.TempDir()
	stdout, stderr, err := execute(t, filepath.Join(dir, "missing.json"), "--output-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read JSON file")
	assert.NotContains(t, stdout+stderr, "Usage:")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMongoRequiresConnectionString(t *testing.T) {
	_, _, err := execute(t, "mongo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_CONNECTION_STRING")
}

func TestApplyRequiresConnectionString(t *testing.T) {
	_, _, err := execute(t, "apply", "seed.sql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SQL_CONNECTION_STRING")
}

func TestApplyToSQLite(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "seed.sql")
	require.NoError(t, os.WriteFile(script, []byte("CREATE TABLE topic (id INTEGER PRIMARY KEY, title TEXT);\n\nINSERT INTO topic (id, title) VALUES (1, 'Go');\n"), 0o644))

	_, _, err := execute(t, "apply", script, "--driver", "sqlite", "--dsn", filepath.Join(dir, "seed.db"))
	require.NoError(t, err)

	_, _, err = execute(t, "apply", script, "--driver", "sqlite", "--dsn", filepath.Join(dir, "seed.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statement 1 failed")
}
