package etl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BartekS5/seedgen/pkg/logger"
)

// OutputPath derives a file name from the Unix time so runs never
// overwrite each other.
func OutputPath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("seed_data_%d.sql", now.Unix()))
}

// StreamWriter writes a script to any io.Writer, for example stdout.
type StreamWriter struct {
	W io.Writer
}

func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{W: w}
}

func (s *StreamWriter) Write(script *Script) error {
	return writeBlocks(s.W, script)
}

// FileWriter creates (or truncates) Path and writes the script to it.
type FileWriter struct {
	Path string
}

func NewFileWriter(path string) *FileWriter {
	return &FileWriter{Path: path}
}

func (f *FileWriter) Write(script *Script) (err error) {
	file, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("failed to create SQL file '%s': %w", f.Path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close SQL file '%s': %w", f.Path, cerr)
		}
	}()

	if err := writeBlocks(file, script); err != nil {
		return err
	}
	logger.Infof("SQL insert statements have been generated and saved to %s", f.Path)
	return nil
}

// writeBlocks writes the entity block, a blank-line separator and the join
// block, in that order, each stage after the previous one returned. A
// failing stage is reported and the remaining stages are still attempted;
// nothing already written is undone.
func writeBlocks(w io.Writer, script *Script) error {
	stages := []struct {
		name string
		text string
	}{
		{"entities", strings.Join(script.Entities, "\n")},
		{"separator", "\n\n"},
		{"joins", strings.Join(script.Joins, "\n") + "\n"},
	}

	var errs []error
	for _, stage := range stages {
		if _, err := io.WriteString(w, stage.text); err != nil {
			logger.Errorf("Error writing %s to SQL output: %v", stage.name, err)
			errs = append(errs, fmt.Errorf("write %s: %w", stage.name, err))
		}
	}
	return errors.Join(errs...)
}
