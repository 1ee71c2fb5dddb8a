package etl

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/BartekS5/seedgen/pkg/logger"
)

// ReadScript returns the statements of a generated seed file.
func ReadScript(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read SQL file '%s': %w", path, err)
	}
	return SplitStatements(string(data)), nil
}

// SplitStatements splits a script at every ';' that ends a line outside a
// quoted string literal. Inside quotes a doubled '' is an escaped quote, so
// string values may span lines and contain "; " freely. Whitespace between
// statements is dropped; a trailing statement without ';' is kept.
func SplitStatements(script string) []string {
	var statements []string
	emit := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			statements = append(statements, s)
		}
	}

	inQuote := false
	start := 0
	for i := 0; i < len(script); i++ {
		switch c := script[i]; {
		case c == '\'' && inQuote && i+1 < len(script) && script[i+1] == '\'':
			i++
		case c == '\'':
			inQuote = !inQuote
		case c == ';' && !inQuote && endsLine(script[i+1:]):
			emit(script[start : i+1])
			start = i + 1
		}
	}
	emit(script[start:])
	return statements
}

// endsLine reports whether rest is empty or starts with optional horizontal
// whitespace followed by a line break.
func endsLine(rest string) bool {
	trimmed := strings.TrimLeft(rest, " \t\r")
	return trimmed == "" || trimmed[0] == '\n'
}

// SQLApplier executes seed statements against a database, one at a time.
type SQLApplier struct {
	DB *sql.DB
}

// Apply runs statements in order and stops at the first failure. There is
// no surrounding transaction: statements applied before the failure stay.
// It returns how many statements succeeded.
func (a *SQLApplier) Apply(ctx context.Context, statements []string) (int, error) {
	logger.Infof("SQL Applier: Processing %d statements...", len(statements))

	for i, stmt := range statements {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if _, err := a.DB.ExecContext(ctx, stmt); err != nil {
			return i, fmt.Errorf("statement %d failed: %w", i+1, err)
		}
	}

	logger.Infof("SQL Applier: Applied %d statements", len(statements))
	return len(statements), nil
}
