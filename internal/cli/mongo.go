package cli

import (
	"context"
	"time"

	"github.com/BartekS5/seedgen/internal/config"
	"github.com/BartekS5/seedgen/internal/etl"
	"github.com/BartekS5/seedgen/pkg/database"
	"github.com/BartekS5/seedgen/pkg/logger"
	"github.com/spf13/cobra"
)

type MongoOptions struct {
	URI        string
	Database   string
	Collection string
}

func NewMongoCmd(cfg *config.Config) *cobra.Command {
	opts := &MongoOptions{
		URI:        cfg.MongoConnString,
		Database:   cfg.MongoDatabase,
		Collection: cfg.MongoCollection,
	}
	genOpts := newGenerateOptions(cfg)

	cmd := &cobra.Command{
		Use:   "mongo",
		Short: "Generate the seed script from list documents stored in MongoDB",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			c.SilenceUsage = true
			return runMongo(c, opts, genOpts)
		},
	}

	cmd.Flags().StringVar(&opts.URI, "uri", opts.URI, "MongoDB connection string (default $MONGO_CONNECTION_STRING)")
	cmd.Flags().StringVarP(&opts.Database, "database", "d", opts.Database, "MongoDB database")
	cmd.Flags().StringVarP(&opts.Collection, "collection", "c", opts.Collection, "Collection holding one document per list")
	genOpts.addFlags(cmd)

	return cmd
}

func runMongo(cmd *cobra.Command, opts *MongoOptions, genOpts *GenerateOptions) error {
	cfg := &config.Config{MongoConnString: opts.URI}
	if err := cfg.RequireMongo(); err != nil {
		return err
	}

	client, err := database.ConnectMongo(cmd.Context(), opts.URI)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Warnf("MongoDB disconnect: %v", err)
		}
	}()

	logger.Infof("Reading lists from %s.%s", opts.Database, opts.Collection)
	ext := etl.NewMongoExtractor(client, opts.Database, opts.Collection)
	return runGenerate(cmd, ext, genOpts)
}
