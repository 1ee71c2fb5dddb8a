package etl

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BartekS5/seedgen/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleScript = &Script{
	Entities: []string{"INSERT INTO Student.List (id, title, description) VALUES (1, 'a', null);", "INSERT INTO Student.Topic (id, title, url) VALUES (2, 'b', null);"},
	Joins:    []string{"INSERT INTO Student.Course_List (course_id, list_id) VALUES (3, 1);"},
}

const sampleOutput = "INSERT INTO Student.List (id, title, description) VALUES (1, 'a', null);\n" +
	"INSERT INTO Student.Topic (id, title, url) VALUES (2, 'b', null);\n" +
	"\n" +
	"INSERT INTO Student.Course_List (course_id, list_id) VALUES (3, 1);\n"

func TestOutputPath(t *testing.T) {
	now := time.Unix(1700000000, 0)
	assert.Equal(t, filepath.Join("out", "seed_data_1700000000.sql"), OutputPath("out", now))
	assert.Equal(t, "seed_data_1700000000.sql", OutputPath(".", now))
}

func TestStreamWriterLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewStreamWriter(&buf).Write(sampleScript))
	assert.Equal(t, sampleOutput, buf.String())
}

func TestStreamWriterEmptyScript(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewStreamWriter(&buf).Write(&Script{}))
	assert.Equal(t, "\n\n\n", buf.String())
}

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.sql")
	require.NoError(t, os.WriteFile(path, []byte("stale content that must go away"), 0o644))

	require.NoError(t, NewFileWriter(path).Write(sampleScript))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleOutput, string(data))
}

func TestFileWriterBadDirectory(t *testing.T) {
	err := NewFileWriter(filepath.Join(t.TempDir(), "missing", "seed.sql")).Write(sampleScript)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create SQL file")
}

// failingWriter rejects the write with index failAt and accepts the rest.
type failingWriter struct {
	buf    bytes.Buffer
	calls  int
	failAt int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	defer func() { f.calls++ }()
	if f.calls == f.failAt {
		return 0, errors.New("disk full")
	}
	return f.buf.Write(p)
}

func TestWriteBlocksReportsEachFailedStage(t *testing.T) {
	var stderr bytes.Buffer
	logger.SetOutput(&bytes.Buffer{}, &stderr)
	t.Cleanup(logger.Init)

	w := &failingWriter{failAt: 0}
	err := NewStreamWriter(w).Write(sampleScript)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write entities: disk full")
	assert.Contains(t, stderr.String(), "Error writing entities to SQL output: disk full")

	// Later stages still ran; the entity block is simply missing.
	assert.Equal(t, "\n\nINSERT INTO Student.Course_List (course_id, list_id) VALUES (3, 1);\n", w.buf.String())
}
