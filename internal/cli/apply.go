package cli

import (
	"github.com/BartekS5/seedgen/internal/config"
	"github.com/BartekS5/seedgen/internal/etl"
	"github.com/BartekS5/seedgen/pkg/database"
	"github.com/BartekS5/seedgen/pkg/logger"
	"github.com/spf13/cobra"
)

type ApplyOptions struct {
	Driver string
	DSN    string
}

func NewApplyCmd(cfg *config.Config) *cobra.Command {
	opts := &ApplyOptions{
		Driver: cfg.SQLDriver,
		DSN:    cfg.SQLConnString,
	}

	cmd := &cobra.Command{
		Use:   "apply <sql_file_path>",
		Short: "Execute a generated seed script against a SQL database",
		Long: `apply runs every statement of a generated seed script in file order, one at a
time and without a transaction. The target schema and tables must already exist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			c.SilenceUsage = true
			return runApply(c, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Driver, "driver", opts.Driver, "SQL driver: sqlserver, pgx or sqlite")
	cmd.Flags().StringVar(&opts.DSN, "dsn", opts.DSN, "Connection string (default $SQL_CONNECTION_STRING)")

	return cmd
}

func runApply(cmd *cobra.Command, path string, opts *ApplyOptions) error {
	cfg := &config.Config{SQLDriver: opts.Driver, SQLConnString: opts.DSN}
	if err := cfg.RequireSQL(); err != nil {
		return err
	}

	statements, err := etl.ReadScript(path)
	if err != nil {
		return err
	}

	db, err := database.ConnectSQL(cmd.Context(), cfg.SQLDriver, cfg.SQLConnString)
	if err != nil {
		return err
	}
	defer db.Close()

	applier := &etl.SQLApplier{DB: db}
	n, err := applier.Apply(cmd.Context(), statements)
	if err != nil {
		logger.Errorf("Applied %d of %d statements before failure", n, len(statements))
		return err
	}
	return nil
}
