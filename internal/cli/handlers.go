package cli

import (
	"time"

	"github.com/BartekS5/seedgen/internal/config"
	"github.com/BartekS5/seedgen/internal/etl"
	"github.com/BartekS5/seedgen/pkg/logger"
	"github.com/spf13/cobra"
)

// GenerateOptions control where and how a script is produced.
type GenerateOptions struct {
	Schema    string
	OutputDir string
	Stdout    bool
	DryRun    bool
}

func newGenerateOptions(cfg *config.Config) *GenerateOptions {
	return &GenerateOptions{
		Schema:    cfg.Schema,
		OutputDir: cfg.OutputDir,
	}
}

func (o *GenerateOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Schema, "schema", "s", o.Schema, "Schema name used in every INSERT")
	cmd.Flags().StringVarP(&o.OutputDir, "output-dir", "o", o.OutputDir, "Directory for the generated seed_data_<timestamp>.sql")
	cmd.Flags().BoolVar(&o.Stdout, "stdout", false, "Write the script to stdout instead of a file")
	cmd.Flags().BoolVar(&o.DryRun, "dry-run", false, "Transform and report counts without writing anything")
}

func runGenerate(cmd *cobra.Command, ext etl.Extractor, opts *GenerateOptions) error {
	var writer etl.Writer
	if opts.Stdout {
		defer logger.ConsoleToStderr()()
		writer = etl.NewStreamWriter(cmd.OutOrStdout())
	} else {
		writer = etl.NewFileWriter(etl.OutputPath(opts.OutputDir, time.Now()))
	}

	pipeline := etl.NewPipeline(ext, etl.NewTransformer(opts.Schema), writer, opts.DryRun)
	_, err := pipeline.Run(cmd.Context())
	return err
}
