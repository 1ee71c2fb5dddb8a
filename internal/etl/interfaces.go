package etl

import (
	"context"

	"github.com/BartekS5/seedgen/pkg/models"
)

// Extractor produces the full, parsed list export.
type Extractor interface {
	Extract(ctx context.Context) ([]models.List, error)
}

// Writer persists a post-processed Script.
type Writer interface {
	Write(script *Script) error
}
