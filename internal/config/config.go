// Package config handles loading application settings from the
// environment, which main.go populates from an optional .env file.
package config

import (
	"errors"
	"os"
)

// Config holds all configuration for the application.
type Config struct {
	// Schema qualifies every generated INSERT (INSERT INTO <Schema>.<Table>).
	Schema    string
	OutputDir string

	SQLDriver     string
	SQLConnString string

	MongoConnString string
	MongoDatabase   string
	MongoCollection string
}

// LoadConfig reads settings from environment variables, falling back to
// defaults. Connection strings are only checked by the commands that need
// them, see RequireSQL and RequireMongo.
func LoadConfig() *Config {
	return &Config{
		Schema:          getEnv("SEED_SCHEMA", "Student"),
		OutputDir:       getEnv("SEED_OUTPUT_DIR", "."),
		SQLDriver:       getEnv("SQL_DRIVER", "sqlserver"),
		SQLConnString:   os.Getenv("SQL_CONNECTION_STRING"),
		MongoConnString: os.Getenv("MONGO_CONNECTION_STRING"),
		MongoDatabase:   getEnv("MONGO_DATABASE", "mydb"),
		MongoCollection: getEnv("MONGO_COLLECTION", "lists"),
	}
}

func (c *Config) RequireSQL() error {
	if c.SQLConnString == "" {
		return errors.New("SQL_CONNECTION_STRING environment variable not set")
	}
	return nil
}

func (c *Config) RequireMongo() error {
	if c.MongoConnString == "" {
		return errors.New("MONGO_CONNECTION_STRING environment variable not set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
