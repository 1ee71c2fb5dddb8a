package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "github.com/microsoft/go-mssqldb"
	_ "modernc.org/sqlite"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Drivers that a generated seed script can be applied through.
const (
	DriverSQLServer = "sqlserver"
	DriverPostgres  = "pgx"
	DriverSQLite    = "sqlite"
)

// SupportedDriver reports whether driver is one of the registered SQL drivers.
func SupportedDriver(driver string) bool {
	switch driver {
	case DriverSQLServer, DriverPostgres, DriverSQLite:
		return true
	}
	return false
}

// ConnectSQL opens driver with connString and verifies the connection.
func ConnectSQL(ctx context.Context, driver, connString string) (*sql.DB, error) {
	if !SupportedDriver(driver) {
		return nil, fmt.Errorf("unsupported SQL driver %q", driver)
	}

	db, err := sql.Open(driver, connString)
	if err != nil {
		return nil, fmt.Errorf("error opening SQL database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to SQL database (ping failed): %w", err)
	}

	return db, nil
}

func ConnectMongo(ctx context.Context, connString string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(connString))
	if err != nil {
		return nil, fmt.Errorf("error creating MongoDB client: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)

		return nil, fmt.Errorf("error connecting to MongoDB (ping failed): %w", err)
	}

	return client, nil
}
