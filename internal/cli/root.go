// Package cli wires the seed generator into cobra commands.
package cli

import (
	"github.com/BartekS5/seedgen/internal/config"
	"github.com/BartekS5/seedgen/internal/etl"
	"github.com/BartekS5/seedgen/pkg/logger"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cfg := config.LoadConfig()
	opts := newGenerateOptions(cfg)
	var logFile string

	rootCmd := &cobra.Command{
		Use:   "seedgen <json_file_path>",
		Short: "seedgen - generate SQL seed data from a curated course list export",
		Long: `seedgen reads a JSON export of curated lists and their courses, instructors,
categories, subcategories and topics, and writes a deterministic, deduplicated and
sorted script of INSERT statements to seed_data_<unix timestamp>.sql.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logFile == "" {
				return nil
			}
			return logger.InitLogger(logFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runGenerate(cmd, &etl.JSONFileExtractor{Path: args[0]}, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also append log output to this file")
	opts.addFlags(rootCmd)

	rootCmd.AddCommand(NewMongoCmd(cfg), NewApplyCmd(cfg))

	return rootCmd
}
