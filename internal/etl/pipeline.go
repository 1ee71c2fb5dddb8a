package etl

import (
	"context"
	"time"

	"github.com/BartekS5/seedgen/pkg/logger"
)

// Result summarizes a pipeline run.
type Result struct {
	Script   *Script
	Lists    int
	Duration time.Duration
	DryRun   bool
}

type Pipeline struct {
	Extractor   Extractor
	Transformer *Transformer
	Writer      Writer
	DryRun      bool
}

func NewPipeline(ext Extractor, transformer *Transformer, writer Writer, dryRun bool) *Pipeline {
	return &Pipeline{
		Extractor:   ext,
		Transformer: transformer,
		Writer:      writer,
		DryRun:      dryRun,
	}
}

// Run extracts, transforms and writes. Every stage is fatal on error; a
// partially written output is not cleaned up.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	startTime := time.Now()
	logger.Infof("Starting seed generation. Schema: %s, DryRun: %v", p.Transformer.Schema, p.DryRun)

	lists, err := p.Extractor.Extract(ctx)
	if err != nil {
		logger.Errorf("Extraction failed: %v", err)
		return nil, err
	}

	script, err := p.Transformer.Transform(lists)
	if err != nil {
		logger.Errorf("Transform failed: %v", err)
		return nil, err
	}
	logger.Infof("Transformed %d lists into %d entity and %d join statements",
		len(lists), len(script.Entities), len(script.Joins))

	if !p.DryRun {
		if err := p.Writer.Write(script); err != nil {
			return nil, err
		}
	} else {
		logger.Infof("[DRY RUN] Would write %d statements", len(script.Entities)+len(script.Joins))
	}

	res := &Result{
		Script:   script,
		Lists:    len(lists),
		Duration: time.Since(startTime),
		DryRun:   p.DryRun,
	}
	logger.Infof("Seed generation finished in %s.", res.Duration.Round(time.Millisecond))
	return res, nil
}
