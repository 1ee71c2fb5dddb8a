package etl

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/BartekS5/seedgen/pkg/models"
)

// JSONFileExtractor reads a list export from a JSON file on disk.
type JSONFileExtractor struct {
	Path string
}

func (e *JSONFileExtractor) Extract(_ context.Context) ([]models.List, error) {
	data, err := os.ReadFile(e.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file '%s': %w", e.Path, err)
	}
	return ParseLists(data, e.Path)
}

// ParseLists decodes an export document; source only labels errors.
func ParseLists(data []byte, source string) ([]models.List, error) {
	var lists []models.List
	if err := json.Unmarshal(data, &lists); err != nil {
		return nil, fmt.Errorf("failed to parse JSON file '%s': %w", source, err)
	}
	return lists, nil
}
